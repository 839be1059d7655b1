// Package cached: кэширующая обёртка над RuleRepository.
package cached

import (
	"card-rewards/internal/cache"
	"card-rewards/internal/domain"
	"card-rewards/internal/metrics"
	"card-rewards/internal/resilience"
	"card-rewards/internal/storage"
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/sync/singleflight"
)

// fetchTimeout ограничивает общую загрузку, которая не зависит от отмены отдельного запроса.
const fetchTimeout = 5 * time.Second

// RuleRepository читает правила через TTL-кэш.
// Одинаковые промахи схлопываются singleflight'ом, обращения к хранилищу идут через circuit breaker.
// Возвращаемые срезы общие для всех запросов: вызывающие их не изменяют.
type RuleRepository struct {
	inner   storage.RuleRepository
	cache   *cache.InMemory[[]domain.RewardRule]
	group   singleflight.Group
	breaker *gobreaker.CircuitBreaker
	metrics *metrics.Metrics

	// растёт при каждой инвалидации; устаревшая загрузка не попадёт в кэш
	generation atomic.Uint64
}

// NewRuleRepository: ttl <= 0: без кэша, только breaker. m может быть nil.
func NewRuleRepository(inner storage.RuleRepository, ttl time.Duration, m *metrics.Metrics) *RuleRepository {
	r := &RuleRepository{
		inner:   inner,
		metrics: m,
		breaker: resilience.NewCircuitBreaker("rule-repository", isTransient),
	}
	if ttl > 0 {
		r.cache = cache.New[[]domain.RewardRule](ttl)
	}
	return r
}

func (r *RuleRepository) GetRulesForCard(ctx context.Context, cardID int64) ([]domain.RewardRule, error) {
	m, err := r.GetRulesForCards(ctx, []int64{cardID})
	if err != nil {
		return nil, err
	}
	return m[cardID], nil
}

func (r *RuleRepository) GetRulesForCards(ctx context.Context, cardIDs []int64) (map[int64][]domain.RewardRule, error) {
	out := make(map[int64][]domain.RewardRule, len(cardIDs))
	var misses []int64
	for _, id := range cardIDs {
		if _, dup := out[id]; dup {
			continue
		}
		if r.cache != nil {
			if rules, ok := r.cache.Get(cacheKey(id)); ok {
				r.hit()
				out[id] = rules
				continue
			}
		}
		r.miss()
		misses = append(misses, id)
	}
	if len(misses) == 0 {
		return out, nil
	}

	sort.Slice(misses, func(i, j int) bool { return misses[i] < misses[j] })

	// Загрузку делят все присоединившиеся запросы, поэтому отмена одного из них её не прерывает.
	// Каждый вызывающий ждёт результат только до отмены своего ctx.
	ch := r.group.DoChan(groupKey(misses), func() (interface{}, error) {
		gen := r.generation.Load()
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()
		v, err := r.breaker.Execute(func() (interface{}, error) {
			return r.inner.GetRulesForCards(fetchCtx, misses)
		})
		if err != nil {
			return nil, err
		}
		return fetchResult{rules: v.(map[int64][]domain.RewardRule), generation: gen}, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		if resilience.IsBreakerOpen(res.Err) {
			return nil, &domain.TransientError{Op: "get rules", Err: res.Err}
		}
		return nil, res.Err
	}

	fetched := res.Val.(fetchResult)
	fresh := func() bool { return r.generation.Load() == fetched.generation }
	for _, id := range misses {
		rules := fetched.rules[id]
		out[id] = rules
		if r.cache != nil {
			r.cache.SetIf(cacheKey(id), rules, fresh)
		}
	}
	return out, nil
}

// fetchResult: правила и поколение кэша на момент начала загрузки.
type fetchResult struct {
	rules      map[int64][]domain.RewardRule
	generation uint64
}

// Invalidate сбрасывает кэш правил указанных карт.
// Поколение растёт до удаления: загрузка, начатая раньше, уже не запишет старые правила.
func (r *RuleRepository) Invalidate(cardIDs ...int64) {
	r.generation.Add(1)
	if r.cache == nil {
		return
	}
	for _, id := range cardIDs {
		r.cache.Delete(cacheKey(id))
	}
}

func (r *RuleRepository) InvalidateAll() {
	r.generation.Add(1)
	if r.cache != nil {
		r.cache.Purge()
	}
}

func (r *RuleRepository) Close() {
	if r.cache != nil {
		r.cache.Close()
	}
}

func (r *RuleRepository) hit() {
	if r.metrics != nil {
		r.metrics.IncrRuleCacheHit()
	}
}

func (r *RuleRepository) miss() {
	if r.metrics != nil {
		r.metrics.IncrRuleCacheMiss()
	}
}

func isTransient(err error) bool {
	var te *domain.TransientError
	return errors.As(err, &te)
}

func cacheKey(cardID int64) string {
	return "rules:" + strconv.FormatInt(cardID, 10)
}

func groupKey(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
