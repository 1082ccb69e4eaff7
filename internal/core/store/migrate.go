package store

import (
	"context"
	"errors"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS characters (
		char TEXT PRIMARY KEY,
		pinyin TEXT NOT NULL,
		tone INTEGER NOT NULL,
		strokes INTEGER NOT NULL,
		classical_strokes INTEGER NOT NULL,
		element TEXT NOT NULL,
		meaning_quality INTEGER NOT NULL,
		gender TEXT NOT NULL,
		style TEXT NOT NULL,
		source TEXT NOT NULL,
		meaning TEXT,
		source_note TEXT,
		updated_at INTEGER NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_characters_element ON characters(element);`,
	`CREATE INDEX IF NOT EXISTS idx_characters_source ON characters(source);`,
	`CREATE TABLE IF NOT EXISTS dictionary_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`,
}

// Migrate ensures the dictionary tables exist.
func (s *Store) Migrate(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	for _, stmt := range schemaStatements {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store migration failed: %w", err)
		}
	}

	return nil
}
