package rewards_test

import (
	"card-rewards/internal/domain"
	"card-rewards/internal/rewards"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v int64) *int64 { return &v }

func rule(id, card, category int64, sub *int64, tx domain.TransactionType) domain.RewardRule {
	return domain.RewardRule{
		ID:              id,
		CardID:          card,
		CategoryID:      category,
		SubCategoryID:   sub,
		TransactionType: tx,
		RewardType:      domain.RewardCashback,
		RewardValue:     decimal.NewFromInt(1),
	}
}

func TestMatch_SubCategoryBeatsCategoryWide(t *testing.T) {
	rules := []domain.RewardRule{
		rule(1, 10, 5, nil, domain.TxOnline),
		rule(2, 10, 5, ptr(7), domain.TxBoth),
	}

	got, err := rewards.Match(rules, rewards.Query{CardID: 10, CategoryID: 5, SubCategoryID: ptr(7), TransactionType: domain.TxOnline})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.ID)
}

func TestMatch_ExactTypeBeatsBoth(t *testing.T) {
	rules := []domain.RewardRule{
		rule(1, 10, 5, nil, domain.TxBoth),
		rule(2, 10, 5, nil, domain.TxOffline),
	}

	got, err := rewards.Match(rules, rewards.Query{CardID: 10, CategoryID: 5, TransactionType: domain.TxOffline})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.ID)

	got, err = rewards.Match(rules, rewards.Query{CardID: 10, CategoryID: 5, TransactionType: domain.TxOnline})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.ID, "BOTH still applies to ONLINE")
}

func TestMatch_OrderIndependent(t *testing.T) {
	a := rule(1, 10, 5, nil, domain.TxBoth)
	b := rule(2, 10, 5, ptr(7), domain.TxBoth)
	c := rule(3, 10, 5, ptr(7), domain.TxOnline)
	q := rewards.Query{CardID: 10, CategoryID: 5, SubCategoryID: ptr(7), TransactionType: domain.TxOnline}

	for _, rules := range [][]domain.RewardRule{{a, b, c}, {c, b, a}, {b, c, a}} {
		got, err := rewards.Match(rules, q)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, int64(3), got.ID)
	}
}

func TestMatch_NoSubCategoryOnlyCategoryWide(t *testing.T) {
	rules := []domain.RewardRule{
		rule(1, 10, 5, ptr(7), domain.TxBoth),
	}

	got, err := rewards.Match(rules, rewards.Query{CardID: 10, CategoryID: 5, TransactionType: domain.TxOnline})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMatch_ScopedTypeDoesNotCoverOther(t *testing.T) {
	rules := []domain.RewardRule{
		rule(1, 10, 5, nil, domain.TxOnline),
		rule(2, 10, 6, nil, domain.TxOffline),
	}

	got, err := rewards.Match(rules, rewards.Query{CardID: 10, CategoryID: 5, TransactionType: domain.TxOffline})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMatch_OtherSubCategoryIgnored(t *testing.T) {
	rules := []domain.RewardRule{
		rule(1, 10, 5, ptr(8), domain.TxOffline),
		rule(2, 10, 5, nil, domain.TxBoth),
	}

	got, err := rewards.Match(rules, rewards.Query{CardID: 10, CategoryID: 5, SubCategoryID: ptr(7), TransactionType: domain.TxOffline})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.ID)
}

func TestMatch_TieIsDataIntegrityError(t *testing.T) {
	rules := []domain.RewardRule{
		rule(4, 10, 5, nil, domain.TxBoth),
		rule(3, 10, 5, nil, domain.TxBoth),
	}

	got, err := rewards.Match(rules, rewards.Query{CardID: 10, CategoryID: 5, TransactionType: domain.TxOnline})
	assert.Nil(t, got)

	var integrity *domain.DataIntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Equal(t, int64(10), integrity.CardID)
	assert.Equal(t, []int64{3, 4}, integrity.RuleIDs)
}

func TestMatch_TieBelowWinnerIsIgnored(t *testing.T) {
	rules := []domain.RewardRule{
		rule(1, 10, 5, nil, domain.TxBoth),
		rule(2, 10, 5, nil, domain.TxBoth),
		rule(3, 10, 5, nil, domain.TxOnline),
	}

	got, err := rewards.Match(rules, rewards.Query{CardID: 10, CategoryID: 5, TransactionType: domain.TxOnline})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(3), got.ID)
}
