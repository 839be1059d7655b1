// Package events рассылает изменения правил между экземплярами сервиса через NATS,
// чтобы каждый экземпляр сбросил свой кэш правил.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const SubjectRulesChanged = "rewards.rules.changed"

// RuleChange: у этих карт изменились правила.
type RuleChange struct {
	CardIDs []int64 `json:"card_ids"`
	Origin  string  `json:"origin"`
}

type Bus struct {
	conn   *nats.Conn
	origin string
}

func Connect(url, token string) (*Bus, error) {
	opts := []nats.Option{
		nats.Name("card-rewards"),
		nats.MaxReconnects(-1),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &Bus{conn: conn, origin: uuid.NewString()}, nil
}

func (b *Bus) PublishRulesChanged(_ context.Context, cardIDs ...int64) error {
	payload, err := json.Marshal(RuleChange{CardIDs: cardIDs, Origin: b.origin})
	if err != nil {
		return fmt.Errorf("encode rule change: %w", err)
	}
	if err := b.conn.Publish(SubjectRulesChanged, payload); err != nil {
		return fmt.Errorf("publish rule change: %w", err)
	}
	return nil
}

// SubscribeRulesChanged вызывает fn на изменения от других экземпляров.
func (b *Bus) SubscribeRulesChanged(fn func(cardIDs []int64)) (*nats.Subscription, error) {
	sub, err := b.conn.Subscribe(SubjectRulesChanged, func(msg *nats.Msg) {
		handleRuleChange(b.origin, msg.Data, fn)
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", SubjectRulesChanged, err)
	}
	return sub, nil
}

func (b *Bus) Close() {
	if err := b.conn.Drain(); err != nil {
		b.conn.Close()
	}
}

func handleRuleChange(origin string, data []byte, fn func(cardIDs []int64)) {
	var change RuleChange
	if err := json.Unmarshal(data, &change); err != nil {
		slog.Warn("bad rule change message", "error", err)
		return
	}
	if change.Origin == origin {
		return
	}
	slog.Debug("rule change received", "card_ids", change.CardIDs, "origin", change.Origin)
	fn(change.CardIDs)
}

// Nop: когда NATS не настроен.
type Nop struct{}

func (Nop) PublishRulesChanged(context.Context, ...int64) error { return nil }
