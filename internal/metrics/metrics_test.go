package metrics_test

import (
	"card-rewards/internal/metrics"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RankCounters(t *testing.T) {
	m := metrics.NewMetrics()

	m.ObserveRank("ok", 5*time.Millisecond)
	m.ObserveRank("ok", 5*time.Millisecond)
	m.ObserveRank("validation", time.Millisecond)

	expected := `
# HELP rewards_rank_requests_total Ranking requests by outcome.
# TYPE rewards_rank_requests_total counter
rewards_rank_requests_total{outcome="ok"} 2
rewards_rank_requests_total{outcome="validation"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected), "rewards_rank_requests_total"))
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a := metrics.NewMetrics()
	b := metrics.NewMetrics()

	a.IncrRuleCacheHit()

	countA, err := testutil.GatherAndCount(a.Registry, "rewards_rule_cache_lookups_total")
	require.NoError(t, err)
	countB, err := testutil.GatherAndCount(b.Registry, "rewards_rule_cache_lookups_total")
	require.NoError(t, err)

	assert.Equal(t, 1, countA)
	assert.Equal(t, 0, countB)
}
