package service

import (
	"card-rewards/internal/display"
	"card-rewards/internal/domain"
	"card-rewards/internal/metrics"
	"card-rewards/internal/rewards"
	"card-rewards/internal/storage"
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

type RankRequest struct {
	UserID          int64
	Amount          decimal.Decimal
	CategoryID      int64
	SubCategoryID   *int64
	TransactionType domain.TransactionType
}

// Recommendation: первая карта списка и весь отсортированный список.
type Recommendation struct {
	Recommended *domain.RankedResult  `json:"recommended"`
	Results     []domain.RankedResult `json:"results"`
}

type RankingService struct {
	catalog storage.CatalogRepository
	cards   storage.UserCardStorage
	users   storage.UserStorage
	ranker  *rewards.Ranker
	format  *display.Formatter
	metrics *metrics.Metrics
	tracer  trace.Tracer
	now     func() time.Time
}

func NewRankingService(
	catalog storage.CatalogRepository,
	cards storage.UserCardStorage,
	users storage.UserStorage,
	ranker *rewards.Ranker,
	format *display.Formatter,
	m *metrics.Metrics,
) *RankingService {
	return &RankingService{
		catalog: catalog,
		cards:   cards,
		users:   users,
		ranker:  ranker,
		format:  format,
		metrics: m,
		tracer:  otel.Tracer("card-rewards/service"),
		now:     time.Now,
	}
}

// Rank подбирает лучшую карту пользователя для покупки.
// Лимиты считаются за текущий календарный месяц, ничего не записывается.
func (s *RankingService) Rank(ctx context.Context, req RankRequest) (rec *Recommendation, err error) {
	start := s.now()
	ctx, span := s.tracer.Start(ctx, "RankingService.Rank", trace.WithAttributes(
		attribute.Int64("user_id", req.UserID),
		attribute.Int64("category_id", req.CategoryID),
		attribute.String("transaction_type", req.TransactionType.String()),
	))
	defer func() {
		outcome := Outcome(err)
		s.metrics.ObserveRank(outcome, s.now().Sub(start))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, outcome)
		}
		span.End()
	}()

	purchase := domain.Purchase{
		Amount:          req.Amount,
		CategoryID:      req.CategoryID,
		SubCategoryID:   req.SubCategoryID,
		TransactionType: req.TransactionType,
		Month:           domain.MonthStart(start),
	}
	if err := rewards.ValidatePurchase(purchase); err != nil {
		return nil, err
	}

	var (
		category  *domain.Category
		userCards []domain.UserCreditCard
	)
	g, gctx := errgroup.WithContext(ctx)
	// пользователь из токена мог быть удалён
	g.Go(func() error {
		_, err := s.users.GetUser(gctx, req.UserID)
		return err
	})
	g.Go(func() error {
		cat, err := s.catalog.GetCategory(gctx, req.CategoryID)
		if err != nil {
			return err
		}
		category = cat
		return nil
	})
	g.Go(func() error {
		list, err := s.cards.ListUserCards(gctx, req.UserID)
		if err != nil {
			return fmt.Errorf("list user cards: %w", err)
		}
		userCards = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := checkSubCategory(category, req.SubCategoryID); err != nil {
		return nil, err
	}

	cards := make([]domain.CreditCard, len(userCards))
	for i, uc := range userCards {
		cards[i] = uc.Card
	}

	results, err := s.ranker.Rank(ctx, req.UserID, purchase, cards)
	if err != nil {
		return nil, err
	}

	for i := range results {
		results[i].Display = s.format.Reward(results[i].RewardType, results[i].Reward)
		s.metrics.IncrFlag(results[i].Flag.String())
	}

	rec = &Recommendation{Results: results}
	if len(results) > 0 {
		rec.Recommended = &results[0]
		span.SetAttributes(attribute.Int64("recommended_card_id", results[0].CardID))
	}
	span.SetAttributes(attribute.Int("cards", len(results)))
	return rec, nil
}
