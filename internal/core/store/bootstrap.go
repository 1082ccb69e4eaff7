package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// seedVersion bumps when the embedded dictionary changes; Bootstrap reseeds
// only when the stored version differs.
const seedVersion = "2026-08"

// Bootstrap seeds the dictionary tables from the embedded reference data.
// Seeding is idempotent and skipped when the store already carries the
// current seed version.
func (s *Store) Bootstrap(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if err := s.Migrate(ctx); err != nil {
		return err
	}

	current, err := s.metaValue(ctx, "seed_version")
	if err != nil {
		return err
	}
	if current == seedVersion {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Unix()
	for _, info := range Seed() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO characters (char, pinyin, tone, strokes, classical_strokes, element,
				meaning_quality, gender, style, source, meaning, source_note, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(char) DO UPDATE SET
				pinyin = excluded.pinyin,
				tone = excluded.tone,
				strokes = excluded.strokes,
				classical_strokes = excluded.classical_strokes,
				element = excluded.element,
				meaning_quality = excluded.meaning_quality,
				gender = excluded.gender,
				style = excluded.style,
				source = excluded.source,
				meaning = excluded.meaning,
				source_note = excluded.source_note,
				updated_at = excluded.updated_at
		`, info.Char, info.Pinyin, info.Tone, info.Strokes, info.ClassicalStrokes,
			string(info.Element), info.MeaningQuality, string(info.Gender),
			string(info.Style), string(info.Source), info.Meaning, info.SourceNote, now)
		if err != nil {
			return fmt.Errorf("seed character %s: %w", info.Char, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO dictionary_meta (key, value) VALUES ('seed_version', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, seedVersion); err != nil {
		return fmt.Errorf("record seed version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}

func (s *Store) metaValue(ctx context.Context, key string) (string, error) {
	var value string
	row := s.DB.QueryRowContext(ctx, `SELECT value FROM dictionary_meta WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("read dictionary meta: %w", err)
	}
	return value, nil
}
