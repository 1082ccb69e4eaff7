package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/qiminglab/qiming/internal/core"
)

const characterColumns = `char, pinyin, tone, strokes, classical_strokes, element,
	meaning_quality, gender, style, source, meaning, source_note`

// Lookup returns the dictionary entry for one character, or (nil, nil) when
// the character is not covered by the reference data.
func (s *Store) Lookup(ctx context.Context, char string) (*core.CharacterInfo, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	char = strings.TrimSpace(char)
	if char == "" {
		return nil, errors.New("character is required")
	}

	row := s.DB.QueryRowContext(ctx, `
		SELECT `+characterColumns+`
		FROM characters
		WHERE char = ?
	`, char)

	info, err := scanCharacter(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup character: %w", err)
	}
	return info, nil
}

// Candidates returns dictionary entries matching the filter. Gender "any"
// entries satisfy every gender constraint; the same holds for style and
// source tags.
func (s *Store) Candidates(ctx context.Context, filter core.CandidateFilter) ([]*core.CharacterInfo, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	query := `SELECT ` + characterColumns + ` FROM characters WHERE 1=1`
	args := make([]any, 0, 8)

	if len(filter.Elements) > 0 {
		placeholders := make([]string, len(filter.Elements))
		for i, element := range filter.Elements {
			placeholders[i] = "?"
			args = append(args, string(element))
		}
		query += ` AND element IN (` + strings.Join(placeholders, ", ") + `)`
	}
	if filter.Gender != "" && filter.Gender != core.GenderAny {
		query += ` AND gender IN ('any', ?)`
		args = append(args, string(filter.Gender))
	}
	if filter.Style != "" && filter.Style != core.StyleAny {
		query += ` AND style IN ('any', ?)`
		args = append(args, string(filter.Style))
	}
	if filter.Source != "" && filter.Source != core.SourceAny {
		query += ` AND source = ?`
		args = append(args, string(filter.Source))
	}

	query += ` ORDER BY meaning_quality DESC, char ASC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var infos []*core.CharacterInfo
	for rows.Next() {
		info, err := scanCharacter(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidates: %w", err)
	}
	return infos, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCharacter(row rowScanner) (*core.CharacterInfo, error) {
	var (
		info       core.CharacterInfo
		element    string
		gender     string
		style      string
		source     string
		meaning    sql.NullString
		sourceNote sql.NullString
	)

	err := row.Scan(&info.Char, &info.Pinyin, &info.Tone, &info.Strokes,
		&info.ClassicalStrokes, &element, &info.MeaningQuality,
		&gender, &style, &source, &meaning, &sourceNote)
	if err != nil {
		return nil, err
	}

	info.Element = core.Element(element)
	info.Gender = core.Gender(gender)
	info.Style = core.Style(style)
	info.Source = core.Source(source)
	info.Meaning = meaning.String
	info.SourceNote = sourceNote.String
	return &info, nil
}
