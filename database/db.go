package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas in the DSN apply to every pooled connection
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Migrate() error {
	queries := []string{
		// Organizations table
		`CREATE TABLE IF NOT EXISTS organizations (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			industry TEXT,
			size TEXT,
			country TEXT,
			subscribed_assessments TEXT NOT NULL DEFAULT 'OCAI,BALDRIGE',
			primary_color TEXT NOT NULL DEFAULT '#3B82F6',
			consent_version TEXT NOT NULL DEFAULT '1.0',
			is_active INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Access keys table
		`CREATE TABLE IF NOT EXISTS access_keys (
			id TEXT PRIMARY KEY,
			key TEXT UNIQUE NOT NULL,
			organization_id TEXT NOT NULL,
			assessment_types TEXT NOT NULL DEFAULT 'OCAI,BALDRIGE',
			max_uses INTEGER,
			usage_count INTEGER NOT NULL DEFAULT 0,
			expires_at DATETIME,
			description TEXT,
			created_by TEXT,
			is_active INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (organization_id) REFERENCES organizations(id) ON DELETE CASCADE
		)`,

		// Surveys table
		`CREATE TABLE IF NOT EXISTS surveys (
			id TEXT PRIMARY KEY,
			organization_id TEXT NOT NULL,
			title TEXT NOT NULL,
			assessment_type TEXT NOT NULL DEFAULT 'OCAI',
			status TEXT NOT NULL DEFAULT 'DRAFT',
			open_at DATETIME,
			close_at DATETIME,
			allow_anonymous INTEGER NOT NULL DEFAULT 1,
			eligible_count INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (organization_id) REFERENCES organizations(id) ON DELETE CASCADE
		)`,

		// Responses table. Score sets and demographics are JSON documents.
		`CREATE TABLE IF NOT EXISTS responses (
			id TEXT PRIMARY KEY,
			survey_id TEXT NOT NULL,
			user_id TEXT,
			demographics TEXT NOT NULL DEFAULT '{}',
			now_scores TEXT NOT NULL,
			preferred_scores TEXT NOT NULL,
			ip_hash TEXT,
			consent_given INTEGER NOT NULL DEFAULT 0,
			consent_timestamp DATETIME,
			consent_version TEXT NOT NULL DEFAULT '1.0',
			submitted_at DATETIME NOT NULL,
			FOREIGN KEY (survey_id) REFERENCES surveys(id) ON DELETE CASCADE
		)`,

		// Indexes for performance
		`CREATE INDEX IF NOT EXISTS idx_access_keys_org ON access_keys(organization_id)`,
		`CREATE INDEX IF NOT EXISTS idx_surveys_org ON surveys(organization_id)`,
		`CREATE INDEX IF NOT EXISTS idx_surveys_status ON surveys(status)`,
		`CREATE INDEX IF NOT EXISTS idx_responses_survey ON responses(survey_id, submitted_at)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
