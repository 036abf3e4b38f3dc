package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/tahcohcat/cluequest/internal/logger"
)

type DB struct {
	*sqlx.DB
}

// NewDB opens the verdict ledger. The default DSN is an in-memory database,
// so nothing outlives the process.
func NewDB(dsn string) (*DB, error) {
	if dsn == "" {
		dsn = "file:cluequest?mode=memory&cache=shared"
	}

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// An in-memory database disappears with its last connection.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	dbWrapper := &DB{DB: db}

	// Initialize database schema
	if err := dbWrapper.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	logger.New().Debug("verdict ledger ready")
	return dbWrapper, nil
}

// createTables creates the necessary database tables
func (db *DB) createTables() error {
	verdictsTable := `
	CREATE TABLE IF NOT EXISTS verdicts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT UNIQUE NOT NULL,
		case_id TEXT NOT NULL,
		accused TEXT NOT NULL,
		clue_count INTEGER NOT NULL,
		clues_found INTEGER NOT NULL,
		verdict TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_verdicts_case_id ON verdicts(case_id);`,
		`CREATE INDEX IF NOT EXISTS idx_verdicts_accused ON verdicts(accused);`,
	}

	if _, err := db.Exec(verdictsTable); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	for _, index := range indexes {
		if _, err := db.Exec(index); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
