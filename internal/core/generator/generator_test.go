package generator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qiminglab/qiming/internal/core"
	"github.com/qiminglab/qiming/internal/core/bazi"
)

// fakeRepo serves a fixed pool and records the last candidate filter.
type fakeRepo struct {
	chars map[string]*core.CharacterInfo
	pool  []*core.CharacterInfo
	err   error

	mu         sync.Mutex
	lastFilter core.CandidateFilter
}

func (f *fakeRepo) Lookup(ctx context.Context, char string) (*core.CharacterInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.chars[char], nil
}

func (f *fakeRepo) Candidates(ctx context.Context, filter core.CandidateFilter) ([]*core.CharacterInfo, error) {
	f.mu.Lock()
	f.lastFilter = filter
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	allowed := map[core.Element]bool{}
	for _, element := range filter.Elements {
		allowed[element] = true
	}
	var matched []*core.CharacterInfo
	for _, info := range f.pool {
		if len(allowed) > 0 && !allowed[info.Element] {
			continue
		}
		matched = append(matched, info)
		if filter.Limit > 0 && len(matched) >= filter.Limit {
			break
		}
	}
	return matched, nil
}

func poolChar(char string, element core.Element, quality int) *core.CharacterInfo {
	return &core.CharacterInfo{
		Char:           char,
		Strokes:        8,
		Tone:           2,
		Pinyin:         "test",
		Element:        element,
		MeaningQuality: quality,
	}
}

// newTestRepo builds a surname dictionary plus n pool characters whose
// quality descends from 90.
func newTestRepo(n int) *fakeRepo {
	repo := &fakeRepo{
		chars: map[string]*core.CharacterInfo{
			"王": poolChar("王", core.ElementEarth, 70),
		},
	}
	elements := []core.Element{core.ElementWood, core.ElementFire, core.ElementEarth, core.ElementMetal, core.ElementWater}
	for i := 0; i < n; i++ {
		char := string(rune('A' + i))
		info := poolChar(char, elements[i%len(elements)], 90-i)
		repo.chars[char] = info
		repo.pool = append(repo.pool, info)
	}
	return repo
}

// qualityScore rates a candidate by the mean quality of its given
// characters.
func qualityScore(ctx context.Context, surname, given []*core.CharacterInfo, chart *bazi.Chart) (*core.NameScore, error) {
	total := 0
	for _, info := range given {
		total += info.MeaningQuality
	}
	overall := total / len(given)
	return &core.NameScore{Overall: overall, Rating: "test"}, nil
}

func singleCharRequest(max int) *core.GenerationRequest {
	return &core.GenerationRequest{Surname: "王", GivenNameChars: 1, MaxResults: max}
}

func TestGenerateRejectsBadRequests(t *testing.T) {
	g := New(newTestRepo(5), qualityScore, Policy{})
	ctx := context.Background()

	_, err := g.Generate(ctx, nil, nil)
	require.ErrorIs(t, err, ErrInvalidRequest)

	_, err = g.Generate(ctx, &core.GenerationRequest{Surname: "  "}, nil)
	require.ErrorIs(t, err, ErrInvalidRequest)

	_, err = g.Generate(ctx, &core.GenerationRequest{Surname: "龘"}, nil)
	require.ErrorIs(t, err, ErrInvalidRequest)

	_, err = g.Generate(ctx, &core.GenerationRequest{Surname: "王", GivenNameChars: 3}, nil)
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestGenerateDefaultsToTenResults(t *testing.T) {
	g := New(newTestRepo(30), qualityScore, Policy{})

	results, err := g.Generate(context.Background(), &core.GenerationRequest{Surname: "王", GivenNameChars: 1}, nil)
	require.NoError(t, err)
	require.Len(t, results, 10)
	require.Equal(t, StateDone, g.State())
}

func TestGenerateCapsMaxResults(t *testing.T) {
	repo := newTestRepo(80)
	// Qualities drop below the floor past index 35; lift them all.
	for _, info := range repo.pool {
		info.MeaningQuality = 90
	}
	g := New(repo, qualityScore, Policy{})

	results, err := g.Generate(context.Background(), singleCharRequest(500), nil)
	require.NoError(t, err)
	require.Len(t, results, 50)
}

func TestGenerateEmptyPoolIsSuccess(t *testing.T) {
	repo := &fakeRepo{chars: map[string]*core.CharacterInfo{"王": poolChar("王", core.ElementEarth, 70)}}
	g := New(repo, qualityScore, Policy{})

	results, err := g.Generate(context.Background(), singleCharRequest(10), nil)
	require.NoError(t, err)
	require.Empty(t, results)
	require.Equal(t, StateDone, g.State())
}

func TestGenerateFiltersBelowScoreFloor(t *testing.T) {
	repo := newTestRepo(0)
	repo.pool = []*core.CharacterInfo{
		poolChar("高", core.ElementWood, 80),
		poolChar("低", core.ElementFire, 40),
	}
	g := New(repo, qualityScore, Policy{})

	results, err := g.Generate(context.Background(), singleCharRequest(10), nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "王高", results[0].FullName)
}

func TestGenerateRanksByScoreThenName(t *testing.T) {
	repo := newTestRepo(0)
	repo.pool = []*core.CharacterInfo{
		poolChar("乙", core.ElementWood, 80),
		poolChar("丙", core.ElementFire, 95),
		poolChar("甲", core.ElementWater, 80),
	}
	g := New(repo, qualityScore, Policy{})

	results, err := g.Generate(context.Background(), singleCharRequest(10), nil)
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Equal(t, "王丙", results[0].FullName)
	// Tied scores fall back to lexical order of the full name.
	require.Equal(t, "王乙", results[1].FullName)
	require.Equal(t, "王甲", results[2].FullName)
	require.GreaterOrEqual(t, results[0].Score.Overall, results[1].Score.Overall)
}

func TestGeneratePreferredElementsWinOverAvoided(t *testing.T) {
	repo := newTestRepo(6)
	g := New(repo, qualityScore, Policy{})

	req := singleCharRequest(10)
	req.PreferredElements = []core.Element{core.ElementWood, core.ElementWood}
	req.AvoidedElements = []core.Element{core.ElementWood, core.ElementFire}

	results, err := g.Generate(context.Background(), req, nil)
	require.NoError(t, err)

	// The overlapping element stays preferred and drives the pool filter.
	require.Equal(t, []core.Element{core.ElementWood}, repo.lastFilter.Elements)
	require.NotEmpty(t, results)
	for _, result := range results {
		require.Equal(t, core.ElementWood, repo.chars[result.Characters[0]].Element)
	}
}

func TestGenerateDropsAvoidedElements(t *testing.T) {
	repo := newTestRepo(10)
	g := New(repo, qualityScore, Policy{})

	req := singleCharRequest(10)
	req.AvoidedElements = []core.Element{core.ElementFire}

	results, err := g.Generate(context.Background(), req, nil)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, result := range results {
		require.NotEqual(t, core.ElementFire, repo.chars[result.Characters[0]].Element)
	}
}

func TestGenerateTwoCharPairsAreDistinct(t *testing.T) {
	g := New(newTestRepo(12), qualityScore, Policy{})

	req := &core.GenerationRequest{Surname: "王", GivenNameChars: 2, MaxResults: 5}
	results, err := g.Generate(context.Background(), req, nil)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	seen := map[string]bool{}
	for _, result := range results {
		require.Len(t, result.Characters, 2)
		require.NotEqual(t, result.Characters[0], result.Characters[1])
		require.False(t, seen[result.FullName], "duplicate %s", result.FullName)
		seen[result.FullName] = true
	}
}

func TestGeneratePassesPoolCapToRepository(t *testing.T) {
	repo := newTestRepo(5)
	g := New(repo, qualityScore, Policy{})

	_, err := g.Generate(context.Background(), singleCharRequest(10), nil)
	require.NoError(t, err)
	require.Equal(t, 200, repo.lastFilter.Limit)
}

func TestGeneratePropagatesScoreErrors(t *testing.T) {
	boom := errors.New("scoring failed")
	failing := func(ctx context.Context, surname, given []*core.CharacterInfo, chart *bazi.Chart) (*core.NameScore, error) {
		return nil, boom
	}
	g := New(newTestRepo(5), failing, Policy{})

	_, err := g.Generate(context.Background(), singleCharRequest(10), nil)
	require.ErrorIs(t, err, boom)
}

func TestGenerateAbortsOnCancelledContext(t *testing.T) {
	blocking := func(ctx context.Context, surname, given []*core.CharacterInfo, chart *bazi.Chart) (*core.NameScore, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	g := New(newTestRepo(5), blocking, Policy{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx, singleCharRequest(10), nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, StateAborted, g.State())
}

func TestGenerateExplanationCarriesMeanings(t *testing.T) {
	repo := newTestRepo(0)
	info := poolChar("睿", core.ElementMetal, 88)
	info.Meaning = "astute"
	info.SourceNote = "analects"
	repo.pool = []*core.CharacterInfo{info}
	g := New(repo, qualityScore, Policy{})

	results, err := g.Generate(context.Background(), singleCharRequest(10), nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "rated test (88/100); 睿: astute", results[0].Explanation)
	require.Equal(t, "analects", results[0].SourceNote)
}

func TestRankDeduplicatesFullNames(t *testing.T) {
	names := []*core.GeneratedName{
		{FullName: "王安", Score: &core.NameScore{Overall: 80}},
		{FullName: "王安", Score: &core.NameScore{Overall: 75}},
		{FullName: "王宁", Score: &core.NameScore{Overall: 90}},
	}

	ranked := rank(names)
	require.Len(t, ranked, 2)
	require.Equal(t, "王宁", ranked[0].FullName)
	require.Equal(t, "王安", ranked[1].FullName)
	require.Equal(t, 80, ranked[1].Score.Overall)
}

func TestDefaultPolicyBounds(t *testing.T) {
	policy := DefaultPolicy()
	require.Equal(t, 200, policy.PoolCap)
	require.Equal(t, 8, policy.PairMultiple)
	require.Equal(t, 55, policy.ScoreFloor)
	require.Equal(t, 10, policy.DefaultMaxResults)
	require.Equal(t, 50, policy.MaxResultsCap)
	require.Equal(t, 8, policy.Workers)
}

// One generator instance serves every request, so Generate and State must
// be safe to call from concurrent goroutines.
func TestGenerateConcurrentRequestsShareOneGenerator(t *testing.T) {
	g := New(newTestRepo(30), qualityScore, Policy{})
	ctx := context.Background()

	valid := map[State]bool{
		StateInit: true, StateEnumerate: true, StateScore: true,
		StateRank: true, StateDone: true, StateAborted: true,
	}

	stop := make(chan struct{})
	var observer sync.WaitGroup
	observer.Add(1)
	go func() {
		defer observer.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			if state := g.State(); !valid[state] {
				t.Errorf("observed invalid state %q", state)
				return
			}
		}
	}()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				if _, err := g.Generate(ctx, singleCharRequest(5), nil); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(stop)
	observer.Wait()

	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, StateDone, g.State())
}

func TestStateStringValues(t *testing.T) {
	for _, state := range []State{StateInit, StateEnumerate, StateScore, StateRank, StateDone, StateAborted} {
		require.NotEmpty(t, string(state))
	}
	require.Equal(t, "done", fmt.Sprintf("%s", StateDone))
}
