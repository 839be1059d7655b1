package bot

import (
	"card-rewards/internal/domain"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestFixEncoding(t *testing.T) {
	assert.Equal(t, "Продукты", fixEncoding("Продукты"))

	cp1251, err := charmap.Windows1251.NewEncoder().String("Продукты")
	require.NoError(t, err)
	assert.Equal(t, "Продукты", fixEncoding(cp1251))
}

func TestSplitCommand(t *testing.T) {
	cmd, args := splitCommand("/Best@rewards_bot  100   Taxi ")
	assert.Equal(t, "/best", cmd)
	assert.Equal(t, "100 Taxi", args)

	cmd, args = splitCommand("/cards")
	assert.Equal(t, "/cards", cmd)
	assert.Empty(t, args)
}

func TestParseBest(t *testing.T) {
	tests := []struct {
		name string
		args string
		want bestQuery
	}{
		{
			name: "defaults to offline",
			args: "100 Groceries",
			want: bestQuery{Amount: decimal.NewFromInt(100), Category: "Groceries", TransactionType: domain.TxOffline},
		},
		{
			name: "subcategory and type",
			args: "1250,50 Groceries/Supermarkets ONLINE",
			want: bestQuery{Amount: decimal.RequireFromString("1250.50"), Category: "Groceries", SubCategory: "Supermarkets", TransactionType: domain.TxOnline},
		},
		{
			name: "multi-word category",
			args: "40 Food Delivery offline",
			want: bestQuery{Amount: decimal.NewFromInt(40), Category: "Food Delivery", TransactionType: domain.TxOffline},
		},
		{
			name: "type word alone is a category",
			args: "40 online",
			want: bestQuery{Amount: decimal.NewFromInt(40), Category: "online", TransactionType: domain.TxOffline},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseBest(tt.args)
			require.NoError(t, err)
			assert.True(t, tt.want.Amount.Equal(got.Amount), "amount %s", got.Amount)
			assert.Equal(t, tt.want.Category, got.Category)
			assert.Equal(t, tt.want.SubCategory, got.SubCategory)
			assert.Equal(t, tt.want.TransactionType, got.TransactionType)
		})
	}
}

func TestParseBest_Errors(t *testing.T) {
	for _, args := range []string{"", "100", "abc Groceries", "100 /Supermarkets"} {
		_, err := parseBest(args)
		assert.Error(t, err, args)
	}
}

func TestParseAddCard(t *testing.T) {
	got, err := parseAddCard("3 4242 09/27")
	require.NoError(t, err)
	assert.Equal(t, addCardArgs{CardID: 3, Last4: "4242", ExpiryMonth: 9, ExpiryYear: 27}, got)

	for _, args := range []string{"3 4242", "x 4242 09/27", "3 4242 0927", "0 4242 09/27", "3 4242 aa/bb"} {
		_, err := parseAddCard(args)
		assert.Error(t, err, args)
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	_, err = parseID("-1")
	assert.Error(t, err)
}
