// internal/domain/enums.go
package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TransactionType: где совершается покупка.
// Для правил допустим ещё TxBoth, для запросов только Online/Offline.
type TransactionType int

const (
	TxOnline TransactionType = iota + 1
	TxOffline
	TxBoth
)

func (t TransactionType) String() string {
	switch t {
	case TxOnline:
		return "ONLINE"
	case TxOffline:
		return "OFFLINE"
	case TxBoth:
		return "BOTH"
	}
	return fmt.Sprintf("TransactionType(%d)", int(t))
}

// ParseTransactionType принимает ONLINE, OFFLINE, BOTH в любом регистре.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ONLINE":
		return TxOnline, nil
	case "OFFLINE":
		return TxOffline, nil
	case "BOTH":
		return TxBoth, nil
	}
	return 0, fmt.Errorf("unknown transaction type %q", s)
}

// IsQueryType: покупка всегда либо онлайн, либо офлайн.
func (t TransactionType) IsQueryType() bool {
	return t == TxOnline || t == TxOffline
}

// Covers сообщает, применимо ли правило с этим scope к покупке типа q.
func (t TransactionType) Covers(q TransactionType) bool {
	switch t {
	case TxBoth:
		return q == TxOnline || q == TxOffline
	case TxOnline, TxOffline:
		return t == q
	}
	return false
}

func (t TransactionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TransactionType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseTransactionType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// RewardType: вид вознаграждения по правилу (и метка карты для отображения).
type RewardType int

const (
	RewardCashback RewardType = iota + 1
	RewardPoints
	RewardMiles
)

func (r RewardType) String() string {
	switch r {
	case RewardCashback:
		return "CASHBACK"
	case RewardPoints:
		return "POINTS"
	case RewardMiles:
		return "MILES"
	}
	return fmt.Sprintf("RewardType(%d)", int(r))
}

func ParseRewardType(s string) (RewardType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CASHBACK":
		return RewardCashback, nil
	case "POINTS":
		return RewardPoints, nil
	case "MILES":
		return RewardMiles, nil
	}
	return 0, fmt.Errorf("unknown reward type %q", s)
}

func (r RewardType) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *RewardType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseRewardType(s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Flag: какое ограничение сработало при расчёте.
type Flag int

const (
	FlagOK Flag = iota + 1
	FlagCapped
	FlagBelowMinimum
	FlagNoRule
)

func (f Flag) String() string {
	switch f {
	case FlagOK:
		return "OK"
	case FlagCapped:
		return "CAPPED"
	case FlagBelowMinimum:
		return "BELOW_MINIMUM"
	case FlagNoRule:
		return "NO_RULE"
	}
	return fmt.Sprintf("Flag(%d)", int(f))
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}
