package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS recent_projects (
	path        TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	last_opened DATETIME NOT NULL
);

-- Single-row recovery slot. The fixed id keeps writes as plain upserts.
CREATE TABLE IF NOT EXISTS recovery_slot (
	id       INTEGER PRIMARY KEY CHECK (id = 1),
	envelope TEXT NOT NULL,
	saved_at TEXT NOT NULL
);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
