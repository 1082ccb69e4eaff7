// Package engine wires the analyzers, scorer, generator, dictionary, and
// cache registry into the public scoring surface.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/qiminglab/qiming/internal/core"
	"github.com/qiminglab/qiming/internal/core/bazi"
	"github.com/qiminglab/qiming/internal/core/cache"
	"github.com/qiminglab/qiming/internal/core/generator"
	"github.com/qiminglab/qiming/internal/core/phonetic"
	"github.com/qiminglab/qiming/internal/core/scorer"
	"github.com/qiminglab/qiming/internal/core/wuge"
)

// Config collects the policy tunables for every analyzer. Zero values fall
// back to per-package defaults.
type Config struct {
	Chart     bazi.Policy        `mapstructure:"chart"`
	Grid      wuge.Policy        `mapstructure:"grid"`
	Phonetic  phonetic.Policy    `mapstructure:"phonetic"`
	Weights   scorer.Weights     `mapstructure:"weights"`
	Bands     scorer.RatingBands `mapstructure:"bands"`
	Generator generator.Policy   `mapstructure:"generator"`
}

// ErrBadName marks an explicit name the dictionary cannot fully cover.
var ErrBadName = errors.New("invalid name")

// Engine is the name scoring and generation engine. It owns its cache
// registry; construct one per process (or per test) rather than sharing
// global state.
type Engine struct {
	repo      core.CharacterRepository
	converter bazi.Converter
	caches    *cache.Registry

	chartAnalyzer *bazi.Analyzer
	scorer        *scorer.Scorer
	generator     *generator.Generator
}

// New wires an engine from its collaborators.
func New(repo core.CharacterRepository, converter bazi.Converter, caches *cache.Registry, cfg Config) *Engine {
	if caches == nil {
		caches = cache.NewRegistry(cache.RegistryConfig{})
	}
	if converter == nil {
		converter = bazi.NewConverter()
	}

	chartAnalyzer := bazi.NewAnalyzer(cfg.Chart)
	gridAnalyzer := &cachedGrid{inner: wuge.NewAnalyzer(cfg.Grid), cache: caches.Grids}
	phoneticAnalyzer := &cachedPhonetic{inner: phonetic.NewAnalyzer(cfg.Phonetic), cache: caches.Phonetics}

	e := &Engine{
		repo:          repo,
		converter:     converter,
		caches:        caches,
		chartAnalyzer: chartAnalyzer,
		scorer:        scorer.New(chartAnalyzer, gridAnalyzer, phoneticAnalyzer, cfg.Weights, cfg.Bands),
	}
	e.generator = generator.New(repo, e.scoreInfos, cfg.Generator)
	return e
}

// Caches exposes the registry for stats and health reporting.
func (e *Engine) Caches() *cache.Registry {
	return e.caches
}

// ResolveChart maps a birth moment to its four-pillar chart, invoking the
// calendar converter at most once per distinct (date, hour) input.
func (e *Engine) ResolveChart(ctx context.Context, birth *core.BirthMoment) (*bazi.Chart, error) {
	if birth == nil {
		return nil, nil
	}

	key := fmt.Sprintf("%04d-%02d-%02d@%02d", birth.Year, birth.Month, birth.Day, birth.Hour)
	return e.caches.Charts.GetOrSet(key, 0, func() (*bazi.Chart, error) {
		return e.converter.ResolveChart(birth.Year, birth.Month, birth.Day, birth.Hour)
	})
}

// Lookup returns the dictionary entry for one character through the
// character-lookup cache. Absent characters return (nil, nil).
func (e *Engine) Lookup(ctx context.Context, char string) (*core.CharacterInfo, error) {
	return e.caches.Characters.GetOrSet(char, 0, func() (*core.CharacterInfo, error) {
		return e.repo.Lookup(ctx, char)
	})
}

// Score rates one explicit full name. Every character must be covered by
// the dictionary; an unknown character in an explicit name is an
// invalid-input error, unlike the generator's skip-on-gap behavior. A nil
// birth moment scores the chart signal at its neutral default.
func (e *Engine) Score(ctx context.Context, surname, given string, birth *core.BirthMoment) (*core.NameScore, error) {
	surnameInfos, err := e.lookupAll(ctx, surname, "surname")
	if err != nil {
		return nil, err
	}
	givenInfos, err := e.lookupAll(ctx, given, "given name")
	if err != nil {
		return nil, err
	}

	chart, err := e.ResolveChart(ctx, birth)
	if err != nil {
		return nil, err
	}

	return e.scoreInfos(ctx, surnameInfos, givenInfos, chart)
}

// Generate runs the bounded candidate search for the request, resolving the
// chart first when a birth moment is supplied. Element preferences default
// to the chart's favorable elements; explicit preferences win.
func (e *Engine) Generate(ctx context.Context, req *core.GenerationRequest) ([]*core.GeneratedName, error) {
	var chart *bazi.Chart
	if req != nil && req.Birth != nil {
		resolved, err := e.ResolveChart(ctx, req.Birth)
		if err != nil {
			return nil, err
		}
		chart = resolved
	}

	if chart != nil && len(req.PreferredElements) == 0 {
		favorable, _, err := e.chartAnalyzer.FavorableUnfavorable(chart)
		if err != nil {
			return nil, err
		}
		avoided := map[core.Element]bool{}
		for _, element := range req.AvoidedElements {
			avoided[element] = true
		}
		derived := *req
		derived.PreferredElements = nil
		for _, element := range favorable {
			if !avoided[element] {
				derived.PreferredElements = append(derived.PreferredElements, element)
			}
		}
		req = &derived
	}

	return e.generator.Generate(ctx, req, chart)
}

// GeneratorState reports the phase the last generation reached.
func (e *Engine) GeneratorState() generator.State {
	return e.generator.State()
}

// scoreInfos is the cache-backed composite scoring path shared by Score and
// the generator.
func (e *Engine) scoreInfos(ctx context.Context, surname, given []*core.CharacterInfo, chart *bazi.Chart) (*core.NameScore, error) {
	key := scoreKey(surname, given, chart)
	return e.caches.Scores.GetOrSet(key, 0, func() (*core.NameScore, error) {
		return e.scorer.Score(surname, given, chart)
	})
}

func (e *Engine) lookupAll(ctx context.Context, name, label string) ([]*core.CharacterInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: %s is required", ErrBadName, label)
	}

	var infos []*core.CharacterInfo
	for _, r := range name {
		info, err := e.Lookup(ctx, string(r))
		if err != nil {
			return nil, err
		}
		if info == nil {
			return nil, fmt.Errorf("%w: %s character %q not in dictionary", ErrBadName, label, string(r))
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// scoreKey is the exact input tuple: the full name plus whether and which
// chart was supplied.
func scoreKey(surname, given []*core.CharacterInfo, chart *bazi.Chart) string {
	var b strings.Builder
	for _, info := range surname {
		b.WriteString(info.Char)
	}
	b.WriteString("|")
	for _, info := range given {
		b.WriteString(info.Char)
	}
	b.WriteString("|")
	if chart == nil {
		b.WriteString("no-chart")
	} else {
		b.WriteString(chart.Year.String())
		b.WriteString(",")
		b.WriteString(chart.Month.String())
		b.WriteString(",")
		b.WriteString(chart.Day.String())
		b.WriteString(",")
		b.WriteString(chart.Hour.String())
	}
	return b.String()
}

// cachedGrid decorates the grid analyzer with the grid cache.
type cachedGrid struct {
	inner *wuge.Analyzer
	cache *cache.Cache[string, *wuge.Analysis]
}

func (c *cachedGrid) Analyze(surnameStrokes, givenStrokes []int) (*wuge.Analysis, error) {
	return c.cache.GetOrSet(strokeKey(surnameStrokes, givenStrokes), 0, func() (*wuge.Analysis, error) {
		return c.inner.Analyze(surnameStrokes, givenStrokes)
	})
}

// cachedPhonetic decorates the phonetic analyzer with the phonetic cache.
type cachedPhonetic struct {
	inner *phonetic.Analyzer
	cache *cache.Cache[string, *phonetic.Analysis]
}

func (c *cachedPhonetic) Analyze(tones []int, reading string) (*phonetic.Analysis, error) {
	key := fmt.Sprintf("%v|%s", tones, reading)
	return c.cache.GetOrSet(key, 0, func() (*phonetic.Analysis, error) {
		return c.inner.Analyze(tones, reading)
	})
}

func strokeKey(surnameStrokes, givenStrokes []int) string {
	return fmt.Sprintf("%v|%v", surnameStrokes, givenStrokes)
}
