package rewards

import (
	"card-rewards/internal/domain"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Calculation: итог по одному правилу.
// Exact хранится в полной точности (сравнение, учёт лимита), Rounded: для показа.
type Calculation struct {
	Exact   decimal.Decimal
	Rounded decimal.Decimal
	Flag    domain.Flag
}

// ValidateAmount: сумма покупки должна быть строго положительной.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &domain.ValidationError{Field: "amount", Message: "must be greater than 0"}
	}
	return nil
}

// Calculate считает вознаграждение по правилу.
// capUsed: сколько из месячного лимита правила уже израсходовано в этом месяце (0, если не ведём учёт).
func Calculate(rule *domain.RewardRule, amount, capUsed decimal.Decimal) Calculation {
	if rule == nil {
		return Calculation{Exact: decimal.Zero, Rounded: decimal.Zero, Flag: domain.FlagNoRule}
	}

	if rule.MinimumSpend.Valid && amount.LessThan(rule.MinimumSpend.Decimal) {
		return Calculation{Exact: decimal.Zero, Rounded: decimal.Zero, Flag: domain.FlagBelowMinimum}
	}

	raw := rawReward(rule.RewardType, rule.RewardValue, amount)
	reward, flag := raw, domain.FlagOK

	if rule.MonthlyCap.Valid {
		remaining := decimal.Max(decimal.Zero, rule.MonthlyCap.Decimal.Sub(capUsed))
		if raw.GreaterThan(remaining) {
			reward, flag = remaining, domain.FlagCapped
		}
	}

	return Calculation{Exact: reward, Rounded: Round(rule.RewardType, reward), Flag: flag}
}

func rawReward(kind domain.RewardType, value, amount decimal.Decimal) decimal.Decimal {
	switch kind {
	case domain.RewardCashback:
		return amount.Mul(value).Div(hundred)
	case domain.RewardPoints, domain.RewardMiles:
		return amount.Mul(value)
	}
	return decimal.Zero
}

// Round: кэшбэк до копеек, баллы и мили до целых (half-up).
func Round(kind domain.RewardType, v decimal.Decimal) decimal.Decimal {
	switch kind {
	case domain.RewardCashback:
		return v.Round(2)
	case domain.RewardPoints, domain.RewardMiles:
		return v.Round(0)
	}
	return v
}
