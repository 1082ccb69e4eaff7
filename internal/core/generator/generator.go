// Package generator searches the character dictionary for ranked name
// suggestions under user constraints and fixed work caps.
package generator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/qiminglab/qiming/internal/core"
	"github.com/qiminglab/qiming/internal/core/bazi"
)

// State tracks the per-request search phases.
type State string

const (
	StateInit      State = "init"
	StateEnumerate State = "enumerate"
	StateScore     State = "score"
	StateRank      State = "rank"
	StateDone      State = "done"
	StateAborted   State = "aborted"
)

// ErrInvalidRequest marks a generation request violating the caller
// contract.
var ErrInvalidRequest = errors.New("invalid generation request")

// Policy bounds the search. The pool and pair caps trade completeness for
// latency; they are inherited behavior and deliberately kept.
type Policy struct {
	PoolCap           int `mapstructure:"pool_cap"`
	PairMultiple      int `mapstructure:"pair_multiple"`
	ScoreFloor        int `mapstructure:"score_floor"`
	DefaultMaxResults int `mapstructure:"default_max_results"`
	MaxResultsCap     int `mapstructure:"max_results_cap"`
	Workers           int `mapstructure:"workers"`
}

// DefaultPolicy returns the production search bounds.
func DefaultPolicy() Policy {
	return Policy{
		PoolCap:           200,
		PairMultiple:      8,
		ScoreFloor:        55,
		DefaultMaxResults: 10,
		MaxResultsCap:     50,
		Workers:           8,
	}
}

// ScoreFunc rates one candidate name. The engine supplies a cache-backed
// implementation.
type ScoreFunc func(ctx context.Context, surname, given []*core.CharacterInfo, chart *bazi.Chart) (*core.NameScore, error)

// Generator runs the bounded candidate search. One generator serves
// concurrent requests; the state field is read and written without a
// lock, so it is kept atomic.
type Generator struct {
	repo   core.CharacterRepository
	score  ScoreFunc
	policy Policy
	state  atomic.Value // State
}

// New builds a generator. A zero policy falls back to defaults.
func New(repo core.CharacterRepository, score ScoreFunc, policy Policy) *Generator {
	if policy == (Policy{}) {
		policy = DefaultPolicy()
	}
	g := &Generator{repo: repo, score: score, policy: policy}
	g.state.Store(StateInit)
	return g
}

// State returns the phase the last Generate call reached.
func (g *Generator) State() State {
	return g.state.Load().(State)
}

func (g *Generator) setState(s State) {
	g.state.Store(s)
}

// normalized holds the request after constraint normalization.
type normalized struct {
	surnameChars []*core.CharacterInfo
	preferred    []core.Element
	avoided      []core.Element
	gender       core.Gender
	style        core.Style
	source       core.Source
	givenChars   int
	maxResults   int
}

// Generate runs the full Init → Enumerate → Score → Rank → Done search.
// An empty pool after filtering yields an empty list; fewer qualifying
// candidates than requested is success, not an error.
func (g *Generator) Generate(ctx context.Context, req *core.GenerationRequest, chart *bazi.Chart) ([]*core.GeneratedName, error) {
	g.setState(StateInit)
	norm, err := g.normalize(ctx, req)
	if err != nil {
		return nil, err
	}

	g.setState(StateEnumerate)
	pool, err := g.enumerate(ctx, norm)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		g.setState(StateDone)
		return []*core.GeneratedName{}, nil
	}

	candidates := g.combine(pool, norm)

	g.setState(StateScore)
	scored, err := g.scoreAll(ctx, norm, candidates, chart)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			g.setState(StateAborted)
		}
		return nil, err
	}

	g.setState(StateRank)
	ranked := rank(scored)

	g.setState(StateDone)
	if len(ranked) > norm.maxResults {
		ranked = ranked[:norm.maxResults]
	}
	return ranked, nil
}

func (g *Generator) normalize(ctx context.Context, req *core.GenerationRequest) (*normalized, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", ErrInvalidRequest)
	}

	surname := strings.TrimSpace(req.Surname)
	if surname == "" {
		return nil, fmt.Errorf("%w: surname is required", ErrInvalidRequest)
	}

	var surnameChars []*core.CharacterInfo
	for _, r := range surname {
		info, err := g.repo.Lookup(ctx, string(r))
		if err != nil {
			return nil, err
		}
		if info == nil {
			return nil, fmt.Errorf("%w: surname character %q not in dictionary", ErrInvalidRequest, string(r))
		}
		surnameChars = append(surnameChars, info)
	}

	preferred := dedupeElements(req.PreferredElements)
	avoided := dedupeElements(req.AvoidedElements)
	// Preferred takes precedence over avoided.
	preferredSet := map[core.Element]bool{}
	for _, element := range preferred {
		preferredSet[element] = true
	}
	kept := avoided[:0]
	for _, element := range avoided {
		if !preferredSet[element] {
			kept = append(kept, element)
		}
	}
	avoided = kept

	givenChars := req.GivenNameChars
	if givenChars == 0 {
		givenChars = 2
	}
	if givenChars != 1 && givenChars != 2 {
		return nil, fmt.Errorf("%w: given-name character count must be 1 or 2", ErrInvalidRequest)
	}

	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = g.policy.DefaultMaxResults
	}
	if maxResults > g.policy.MaxResultsCap {
		maxResults = g.policy.MaxResultsCap
	}

	return &normalized{
		surnameChars: surnameChars,
		preferred:    preferred,
		avoided:      avoided,
		gender:       req.Gender,
		style:        req.Style,
		source:       req.Source,
		givenChars:   givenChars,
		maxResults:   maxResults,
	}, nil
}

func (g *Generator) enumerate(ctx context.Context, norm *normalized) ([]*core.CharacterInfo, error) {
	filter := core.CandidateFilter{
		Elements: norm.preferred,
		Gender:   norm.gender,
		Style:    norm.style,
		Source:   norm.source,
		Limit:    g.policy.PoolCap,
	}

	pool, err := g.repo.Candidates(ctx, filter)
	if err != nil {
		return nil, err
	}

	if len(norm.avoided) == 0 {
		return pool, nil
	}

	avoidSet := map[core.Element]bool{}
	for _, element := range norm.avoided {
		avoidSet[element] = true
	}
	filtered := pool[:0]
	for _, info := range pool {
		if !avoidSet[info.Element] {
			filtered = append(filtered, info)
		}
	}
	return filtered, nil
}

// combine builds the candidate given-name character sequences. Two-character
// names sample pairs in pool order up to a fixed multiple of maxResults
// instead of evaluating the full cross product.
func (g *Generator) combine(pool []*core.CharacterInfo, norm *normalized) [][]*core.CharacterInfo {
	if norm.givenChars == 1 {
		candidates := make([][]*core.CharacterInfo, 0, len(pool))
		for _, info := range pool {
			candidates = append(candidates, []*core.CharacterInfo{info})
		}
		return candidates
	}

	pairBudget := g.policy.PairMultiple * norm.maxResults
	candidates := make([][]*core.CharacterInfo, 0, pairBudget)
	for _, first := range pool {
		for _, second := range pool {
			if first.Char == second.Char {
				continue
			}
			candidates = append(candidates, []*core.CharacterInfo{first, second})
			if len(candidates) >= pairBudget {
				return candidates
			}
		}
	}
	return candidates
}

func (g *Generator) scoreAll(ctx context.Context, norm *normalized, candidates [][]*core.CharacterInfo, chart *bazi.Chart) ([]*core.GeneratedName, error) {
	results := make([]*core.GeneratedName, len(candidates))

	group, groupCtx := errgroup.WithContext(ctx)
	workers := g.policy.Workers
	if workers <= 0 {
		workers = 1
	}
	group.SetLimit(workers)

	for i, given := range candidates {
		group.Go(func() error {
			score, err := g.score(groupCtx, norm.surnameChars, given, chart)
			if err != nil {
				return err
			}
			if score.Overall < g.policy.ScoreFloor {
				return nil
			}
			results[i] = buildResult(norm.surnameChars, given, score)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	qualified := make([]*core.GeneratedName, 0, len(results))
	for _, result := range results {
		if result != nil {
			qualified = append(qualified, result)
		}
	}
	return qualified, nil
}

func rank(names []*core.GeneratedName) []*core.GeneratedName {
	sort.Slice(names, func(i, j int) bool {
		if names[i].Score.Overall != names[j].Score.Overall {
			return names[i].Score.Overall > names[j].Score.Overall
		}
		return names[i].FullName < names[j].FullName
	})

	seen := map[string]bool{}
	deduped := names[:0]
	for _, name := range names {
		if seen[name.FullName] {
			continue
		}
		seen[name.FullName] = true
		deduped = append(deduped, name)
	}
	return deduped
}

func buildResult(surname, given []*core.CharacterInfo, score *core.NameScore) *core.GeneratedName {
	var fullName strings.Builder
	for _, info := range surname {
		fullName.WriteString(info.Char)
	}

	chars := make([]string, 0, len(given))
	var meanings []string
	var notes []string
	for _, info := range given {
		fullName.WriteString(info.Char)
		chars = append(chars, info.Char)
		if info.Meaning != "" {
			meanings = append(meanings, info.Char+": "+info.Meaning)
		}
		if info.SourceNote != "" {
			notes = append(notes, info.SourceNote)
		}
	}

	explanation := fmt.Sprintf("rated %s (%d/100)", score.Rating, score.Overall)
	if len(meanings) > 0 {
		explanation += "; " + strings.Join(meanings, ", ")
	}

	return &core.GeneratedName{
		FullName:    fullName.String(),
		Characters:  chars,
		Score:       score,
		SourceNote:  strings.Join(notes, "; "),
		Explanation: explanation,
	}
}

func dedupeElements(elements []core.Element) []core.Element {
	seen := map[core.Element]bool{}
	var deduped []core.Element
	for _, element := range elements {
		if element == "" || seen[element] {
			continue
		}
		seen[element] = true
		deduped = append(deduped, element)
	}
	return deduped
}
