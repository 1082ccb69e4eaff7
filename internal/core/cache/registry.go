package cache

import (
	"time"

	"github.com/qiminglab/qiming/internal/core"
	"github.com/qiminglab/qiming/internal/core/bazi"
	"github.com/qiminglab/qiming/internal/core/phonetic"
	"github.com/qiminglab/qiming/internal/core/wuge"
)

// Kind names one per-computation cache instance.
type Kind string

const (
	KindChart     Kind = "chart"
	KindGrid      Kind = "grid"
	KindPhonetic  Kind = "phonetic"
	KindScore     Kind = "score"
	KindCharacter Kind = "character"
)

// Settings bound one cache instance.
type Settings struct {
	MaxSize int           `mapstructure:"max_size"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// RegistryConfig sizes each per-kind instance.
type RegistryConfig struct {
	Chart     Settings `mapstructure:"chart"`
	Grid      Settings `mapstructure:"grid"`
	Phonetic  Settings `mapstructure:"phonetic"`
	Score     Settings `mapstructure:"score"`
	Character Settings `mapstructure:"character"`
}

// DefaultRegistryConfig returns the production cache bounds.
func DefaultRegistryConfig() RegistryConfig {
	return RegistryConfig{
		Chart:     Settings{MaxSize: 512, TTL: time.Hour},
		Grid:      Settings{MaxSize: 2048, TTL: 30 * time.Minute},
		Phonetic:  Settings{MaxSize: 2048, TTL: 30 * time.Minute},
		Score:     Settings{MaxSize: 4096, TTL: 15 * time.Minute},
		Character: Settings{MaxSize: 8192, TTL: 2 * time.Hour},
	}
}

// Registry holds one cache instance per computation kind so eviction
// pressure in one kind cannot starve another. Construct one per engine;
// tests construct isolated instances.
type Registry struct {
	Charts     *Cache[string, *bazi.Chart]
	Grids      *Cache[string, *wuge.Analysis]
	Phonetics  *Cache[string, *phonetic.Analysis]
	Scores     *Cache[string, *core.NameScore]
	Characters *Cache[string, *core.CharacterInfo]
}

// NewRegistry builds a registry from the given bounds. Zero settings fall
// back to defaults per kind.
func NewRegistry(cfg RegistryConfig) *Registry {
	defaults := DefaultRegistryConfig()
	chart := pick(cfg.Chart, defaults.Chart)
	grid := pick(cfg.Grid, defaults.Grid)
	phon := pick(cfg.Phonetic, defaults.Phonetic)
	score := pick(cfg.Score, defaults.Score)
	character := pick(cfg.Character, defaults.Character)
	return &Registry{
		Charts:     New[string, *bazi.Chart](chart.MaxSize, chart.TTL),
		Grids:      New[string, *wuge.Analysis](grid.MaxSize, grid.TTL),
		Phonetics:  New[string, *phonetic.Analysis](phon.MaxSize, phon.TTL),
		Scores:     New[string, *core.NameScore](score.MaxSize, score.TTL),
		Characters: New[string, *core.CharacterInfo](character.MaxSize, character.TTL),
	}
}

// StatsByKind snapshots every instance for health reporting.
func (r *Registry) StatsByKind() map[Kind]Stats {
	return map[Kind]Stats{
		KindChart:     r.Charts.Stats(),
		KindGrid:      r.Grids.Stats(),
		KindPhonetic:  r.Phonetics.Stats(),
		KindScore:     r.Scores.Stats(),
		KindCharacter: r.Characters.Stats(),
	}
}

// HealthByKind reports utilization status per instance.
func (r *Registry) HealthByKind() map[Kind]Health {
	return map[Kind]Health{
		KindChart:     r.Charts.Health(),
		KindGrid:      r.Grids.Health(),
		KindPhonetic:  r.Phonetics.Health(),
		KindScore:     r.Scores.Health(),
		KindCharacter: r.Characters.Health(),
	}
}

func pick(settings, fallback Settings) Settings {
	if settings.MaxSize <= 0 {
		settings.MaxSize = fallback.MaxSize
	}
	if settings.TTL <= 0 {
		settings.TTL = fallback.TTL
	}
	return settings
}
