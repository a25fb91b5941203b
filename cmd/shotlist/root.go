package main

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nhle/shotlist/internal/app"
	"github.com/nhle/shotlist/internal/document"
	"github.com/nhle/shotlist/internal/export"
	"github.com/nhle/shotlist/internal/gateway"
	"github.com/nhle/shotlist/internal/model"
	"github.com/nhle/shotlist/internal/recovery"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "shotlist [file]",
		Short:         "Terminal storyboard and shot list editor",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			openPath := ""
			if len(args) == 1 {
				openPath = args[0]
			}
			return runTUI(ctx, openPath)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newExportCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newRecentCommand(ctx))

	return rootCmd
}

// runTUI wires the document store, persistence, and exporter together
// and hands control to Bubble Tea.
func runTUI(cc *commandContext, openPath string) error {
	cfg, err := cc.ensureConfig()
	if err != nil {
		return err
	}

	log, closer, err := cc.openLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	db, err := cc.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	doc := document.New(model.NewProject(), log)
	gw := gateway.NewOSGateway(db, cfg.RecentLimit)
	saver := recovery.NewSaver(doc, db, log)
	exporter := export.New(export.PNGRenderer{}, log)

	recents, err := gw.ListRecent(context.Background())
	if err != nil {
		log.Warn("loading recent projects failed", "error", err)
	}

	// Offer to restore the autosave snapshot only when not opening a
	// file directly.
	var pending *recovery.Snapshot
	if openPath == "" {
		pending, err = recovery.Pending(context.Background(), db)
		if err != nil {
			log.Warn("recovery slot unreadable, discarding", "error", err)
			_ = db.ClearRecovery(context.Background())
		}
	}

	m := app.New(app.Options{
		Doc:      doc,
		Gateway:  gw,
		Saver:    saver,
		Slot:     db,
		Exporter: exporter,
		Config:   cfg,
		Pending:  pending,
		Recents:  recents,
		Log:      log,
		OpenPath: openPath,
	})

	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

// loadProject reads and parses a project file without the TUI, for the
// headless subcommands.
func loadProject(path string) (*model.Project, error) {
	gw := gateway.NewOSGateway(nil, 0)
	result, err := gw.Open(context.Background(), path)
	if err != nil {
		return nil, err
	}
	project, err := parseEnvelope(result.Data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	project.Name = result.Name
	return project, nil
}
