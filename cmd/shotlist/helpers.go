package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nhle/shotlist/internal/envelope"
	"github.com/nhle/shotlist/internal/logging"
	"github.com/nhle/shotlist/internal/model"
	"github.com/nhle/shotlist/internal/store"
)

// commandContext carries lazily resolved configuration shared by all
// subcommands.
type commandContext struct {
	configFlag *string
	cfg        *model.AppConfig
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

// ensureConfig loads the config file once, honoring the --config flag.
func (c *commandContext) ensureConfig() (*model.AppConfig, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := *c.configFlag
	if path == "" {
		path = model.DefaultConfigPath()
	}
	cfg, err := model.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

// openLogger opens the file logger under the data directory.
func (c *commandContext) openLogger(cfg *model.AppConfig) (*slog.Logger, io.Closer, error) {
	return logging.New(cfg.Log.Level, filepath.Join(model.DefaultDataDir(), "shotlist.log"))
}

// openStore opens the app database holding recents and the recovery slot.
func (c *commandContext) openStore() (*store.SQLiteStore, error) {
	dataDir := model.DefaultDataDir()
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return store.NewSQLiteStore(filepath.Join(dataDir, "shotlist.db"))
}

// parseEnvelope decodes a saved project file.
func parseEnvelope(data []byte) (*model.Project, error) {
	return envelope.Unmarshal(data)
}
