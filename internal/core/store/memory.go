package store

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/qiminglab/qiming/internal/core"
)

// MemoryRepository serves the embedded dictionary without a database. Used
// by tests and by CLI runs that do not configure a store.
type MemoryRepository struct {
	byChar  map[string]*core.CharacterInfo
	ordered []*core.CharacterInfo
}

// NewMemoryRepository builds a repository over the given entries; nil means
// the embedded seed.
func NewMemoryRepository(entries []*core.CharacterInfo) *MemoryRepository {
	if entries == nil {
		entries = Seed()
	}

	byChar := make(map[string]*core.CharacterInfo, len(entries))
	ordered := make([]*core.CharacterInfo, 0, len(entries))
	for _, info := range entries {
		byChar[info.Char] = info
		ordered = append(ordered, info)
	}

	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].MeaningQuality != ordered[j].MeaningQuality {
			return ordered[i].MeaningQuality > ordered[j].MeaningQuality
		}
		return ordered[i].Char < ordered[j].Char
	})

	return &MemoryRepository{byChar: byChar, ordered: ordered}
}

// Lookup returns the entry for char, or (nil, nil) when absent.
func (r *MemoryRepository) Lookup(ctx context.Context, char string) (*core.CharacterInfo, error) {
	char = strings.TrimSpace(char)
	if char == "" {
		return nil, errors.New("character is required")
	}
	return r.byChar[char], nil
}

// Candidates filters the dictionary the same way the libsql store does.
func (r *MemoryRepository) Candidates(ctx context.Context, filter core.CandidateFilter) ([]*core.CharacterInfo, error) {
	elementSet := map[core.Element]bool{}
	for _, element := range filter.Elements {
		elementSet[element] = true
	}

	var infos []*core.CharacterInfo
	for _, info := range r.ordered {
		if len(elementSet) > 0 && !elementSet[info.Element] {
			continue
		}
		if filter.Gender != "" && filter.Gender != core.GenderAny &&
			info.Gender != core.GenderAny && info.Gender != filter.Gender {
			continue
		}
		if filter.Style != "" && filter.Style != core.StyleAny &&
			info.Style != core.StyleAny && info.Style != filter.Style {
			continue
		}
		if filter.Source != "" && filter.Source != core.SourceAny && info.Source != filter.Source {
			continue
		}
		infos = append(infos, info)
		if filter.Limit > 0 && len(infos) >= filter.Limit {
			break
		}
	}
	return infos, nil
}
