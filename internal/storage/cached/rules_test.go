package cached

import (
	"card-rewards/internal/domain"
	"card-rewards/internal/metrics"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRules struct {
	mu    sync.Mutex
	calls [][]int64
	rules map[int64][]domain.RewardRule
	err   error
}

func (c *countingRules) GetRulesForCard(ctx context.Context, cardID int64) ([]domain.RewardRule, error) {
	m, err := c.GetRulesForCards(ctx, []int64{cardID})
	if err != nil {
		return nil, err
	}
	return m[cardID], nil
}

func (c *countingRules) GetRulesForCards(_ context.Context, cardIDs []int64) (map[int64][]domain.RewardRule, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, append([]int64(nil), cardIDs...))
	if c.err != nil {
		return nil, c.err
	}
	out := make(map[int64][]domain.RewardRule, len(cardIDs))
	for _, id := range cardIDs {
		out[id] = c.rules[id]
	}
	return out, nil
}

func (c *countingRules) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

func newInner() *countingRules {
	return &countingRules{rules: map[int64][]domain.RewardRule{
		1: {{ID: 10, CardID: 1, CategoryID: 1, TransactionType: domain.TxBoth}},
		2: {{ID: 20, CardID: 2, CategoryID: 1, TransactionType: domain.TxOnline}},
	}}
}

func TestRuleRepository_CachesPerCard(t *testing.T) {
	inner := newInner()
	m := metrics.NewMetrics()
	repo := NewRuleRepository(inner, time.Minute, m)
	defer repo.Close()

	ctx := context.Background()
	got, err := repo.GetRulesForCards(ctx, []int64{2, 1})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, int64(20), got[2][0].ID)
	require.Equal(t, 1, inner.callCount())
	assert.Equal(t, []int64{1, 2}, inner.calls[0])

	// повтор: всё из кэша
	got, err = repo.GetRulesForCards(ctx, []int64{1, 2})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, inner.callCount())

	rules, err := repo.GetRulesForCard(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), rules[0].ID)
	assert.Equal(t, 1, inner.callCount())

	expected := `
# HELP rewards_rule_cache_lookups_total Rule cache lookups by result.
# TYPE rewards_rule_cache_lookups_total counter
rewards_rule_cache_lookups_total{result="hit"} 3
rewards_rule_cache_lookups_total{result="miss"} 2
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected), "rewards_rule_cache_lookups_total"))
}

func TestRuleRepository_OnlyMissesGoToStore(t *testing.T) {
	inner := newInner()
	repo := NewRuleRepository(inner, time.Minute, nil)
	defer repo.Close()

	ctx := context.Background()
	_, err := repo.GetRulesForCards(ctx, []int64{1})
	require.NoError(t, err)
	_, err = repo.GetRulesForCards(ctx, []int64{1, 2, 2})
	require.NoError(t, err)

	require.Equal(t, 2, inner.callCount())
	assert.Equal(t, []int64{2}, inner.calls[1])
}

func TestRuleRepository_Invalidate(t *testing.T) {
	inner := newInner()
	repo := NewRuleRepository(inner, time.Minute, nil)
	defer repo.Close()

	ctx := context.Background()
	_, err := repo.GetRulesForCards(ctx, []int64{1, 2})
	require.NoError(t, err)

	inner.mu.Lock()
	inner.rules[1] = []domain.RewardRule{{ID: 11, CardID: 1, CategoryID: 1, TransactionType: domain.TxBoth}}
	inner.mu.Unlock()

	repo.Invalidate(1)
	rules, err := repo.GetRulesForCard(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(11), rules[0].ID)

	_, err = repo.GetRulesForCard(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.callCount())

	repo.InvalidateAll()
	_, err = repo.GetRulesForCard(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, inner.callCount())
}

func TestRuleRepository_NoCacheWhenTTLZero(t *testing.T) {
	inner := newInner()
	repo := NewRuleRepository(inner, 0, nil)
	defer repo.Close()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := repo.GetRulesForCard(ctx, 1)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, inner.callCount())
}

func TestRuleRepository_NotFoundPassesThrough(t *testing.T) {
	inner := newInner()
	inner.err = domain.NotFound("card", 99)
	repo := NewRuleRepository(inner, time.Minute, nil)
	defer repo.Close()

	_, err := repo.GetRulesForCards(context.Background(), []int64{99})
	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestRuleRepository_BreakerOpensOnTransientErrors(t *testing.T) {
	inner := newInner()
	inner.err = &domain.TransientError{Op: "query rules", Err: errors.New("connection refused")}
	repo := NewRuleRepository(inner, time.Minute, nil)
	defer repo.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := repo.GetRulesForCard(ctx, 1)
		require.Error(t, err)
	}
	calls := inner.callCount()
	require.Equal(t, 5, calls)

	_, err := repo.GetRulesForCard(ctx, 1)
	var te *domain.TransientError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "get rules", te.Op)
	assert.Equal(t, calls, inner.callCount())
}

// slowRules держит загрузку, пока тест не закроет release.
type slowRules struct {
	*countingRules
	started chan struct{}
	release chan struct{}
	once    sync.Once

	mu     sync.Mutex
	ctxErr error
}

func newSlowRules() *slowRules {
	return &slowRules{
		countingRules: newInner(),
		started:       make(chan struct{}),
		release:       make(chan struct{}),
	}
}

func (s *slowRules) GetRulesForCards(ctx context.Context, cardIDs []int64) (map[int64][]domain.RewardRule, error) {
	s.once.Do(func() { close(s.started) })
	<-s.release

	s.mu.Lock()
	s.ctxErr = ctx.Err()
	s.mu.Unlock()
	return s.countingRules.GetRulesForCards(ctx, cardIDs)
}

func TestRuleRepository_CanceledCallerDoesNotFailOthers(t *testing.T) {
	inner := newSlowRules()
	repo := NewRuleRepository(inner, time.Minute, nil)
	defer repo.Close()

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := repo.GetRulesForCards(ctxA, []int64{1})
		errA <- err
	}()
	<-inner.started

	cancelA()
	select {
	case err := <-errA:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("canceled caller is still waiting")
	}

	type result struct {
		rules map[int64][]domain.RewardRule
		err   error
	}
	resB := make(chan result, 1)
	go func() {
		rules, err := repo.GetRulesForCards(context.Background(), []int64{1})
		resB <- result{rules, err}
	}()
	time.Sleep(20 * time.Millisecond)
	close(inner.release)

	select {
	case res := <-resB:
		require.NoError(t, res.err)
		require.Len(t, res.rules[1], 1)
		assert.Equal(t, int64(10), res.rules[1][0].ID)
	case <-time.After(time.Second):
		t.Fatal("second caller did not get the rules")
	}

	inner.mu.Lock()
	defer inner.mu.Unlock()
	assert.NoError(t, inner.ctxErr)
}

func TestRuleRepository_InvalidateDuringFetchSkipsFill(t *testing.T) {
	inner := newSlowRules()
	repo := NewRuleRepository(inner, time.Minute, nil)
	defer repo.Close()

	done := make(chan error, 1)
	go func() {
		_, err := repo.GetRulesForCards(context.Background(), []int64{1})
		done <- err
	}()
	<-inner.started

	repo.Invalidate(1)
	close(inner.release)
	require.NoError(t, <-done)

	// загрузка началась до инвалидации, в кэш она не попала
	_, err := repo.GetRulesForCard(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.callCount())
}
