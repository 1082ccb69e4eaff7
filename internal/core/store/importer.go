package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/qiminglab/qiming/internal/core"
)

// characterFile is the on-disk dictionary extension format.
type characterFile struct {
	Characters []characterRecord `yaml:"characters"`
}

type characterRecord struct {
	Char             string `yaml:"char"`
	Pinyin           string `yaml:"pinyin"`
	Tone             int    `yaml:"tone"`
	Strokes          int    `yaml:"strokes"`
	ClassicalStrokes int    `yaml:"classical_strokes"`
	Element          string `yaml:"element"`
	MeaningQuality   int    `yaml:"meaning_quality"`
	Gender           string `yaml:"gender"`
	Style            string `yaml:"style"`
	Source           string `yaml:"source"`
	Meaning          string `yaml:"meaning"`
	SourceNote       string `yaml:"source_note"`
}

// LoadCharacterFile parses a YAML dictionary file into validated entries.
// Optional enum fields default to "any"; classical strokes default to the
// simplified count.
func LoadCharacterFile(path string) ([]*core.CharacterInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary file: %w", err)
	}

	var file characterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse dictionary file: %w", err)
	}
	if len(file.Characters) == 0 {
		return nil, fmt.Errorf("dictionary file %s has no characters", path)
	}

	infos := make([]*core.CharacterInfo, 0, len(file.Characters))
	for i, record := range file.Characters {
		info, err := record.info()
		if err != nil {
			return nil, fmt.Errorf("dictionary file entry %d: %w", i+1, err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (r characterRecord) info() (*core.CharacterInfo, error) {
	if r.Char == "" {
		return nil, errors.New("char is required")
	}
	if r.Pinyin == "" {
		return nil, fmt.Errorf("character %s: pinyin is required", r.Char)
	}
	if r.Tone < 1 || r.Tone > 4 {
		return nil, fmt.Errorf("character %s: tone must be 1-4, got %d", r.Char, r.Tone)
	}
	if r.Strokes <= 0 {
		return nil, fmt.Errorf("character %s: strokes must be positive", r.Char)
	}
	if r.MeaningQuality < 0 || r.MeaningQuality > 100 {
		return nil, fmt.Errorf("character %s: meaning_quality must be 0-100", r.Char)
	}

	element, ok := core.ParseElement(r.Element)
	if !ok {
		return nil, fmt.Errorf("character %s: unknown element %q", r.Char, r.Element)
	}

	classical := r.ClassicalStrokes
	if classical == 0 {
		classical = r.Strokes
	}

	gender := core.Gender(orAny(r.Gender))
	switch gender {
	case core.GenderAny, core.GenderMale, core.GenderFemale:
	default:
		return nil, fmt.Errorf("character %s: unknown gender %q", r.Char, r.Gender)
	}

	style := core.Style(orAny(r.Style))
	switch style {
	case core.StyleAny, core.StyleClassic, core.StyleModern, core.StyleElegant:
	default:
		return nil, fmt.Errorf("character %s: unknown style %q", r.Char, r.Style)
	}

	source := core.Source(orAny(r.Source))
	switch source {
	case core.SourceAny, core.SourcePoetry, core.SourceIdiom:
	default:
		return nil, fmt.Errorf("character %s: unknown source %q", r.Char, r.Source)
	}

	return &core.CharacterInfo{
		Char:             r.Char,
		Pinyin:           r.Pinyin,
		Tone:             r.Tone,
		Strokes:          r.Strokes,
		ClassicalStrokes: classical,
		Element:          element,
		MeaningQuality:   r.MeaningQuality,
		Gender:           gender,
		Style:            style,
		Source:           source,
		Meaning:          r.Meaning,
		SourceNote:       r.SourceNote,
	}, nil
}

func orAny(value string) string {
	if value == "" {
		return "any"
	}
	return value
}

// ImportCharacters upserts entries into the dictionary. Existing rows for
// the same character are overwritten.
func (s *Store) ImportCharacters(ctx context.Context, infos []*core.CharacterInfo) (int, error) {
	if s == nil || s.DB == nil {
		return 0, errors.New("store is not initialized")
	}
	if len(infos) == 0 {
		return 0, nil
	}

	if ctx == nil {
		ctx = context.Background()
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Unix()
	for _, info := range infos {
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
			return 0, fmt.Errorf("import character %s: %w", info.Char, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import transaction: %w", err)
	}
	return len(infos), nil
}
