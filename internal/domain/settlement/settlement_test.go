package settlement

import (
	"testing"
	"time"

	"github.com/advance-ledger/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("links bill and funding record", func(t *testing.T) {
		amount, err := decimal.NewFromString("60.00")
		require.NoError(t, err)

		s, err := New(1, 10, amount)
		require.NoError(t, err)

		assert.Equal(t, int64(1), s.BillID)
		assert.Equal(t, int64(10), s.FundingID)
		assert.True(t, s.Amount.Equal(amount))
		assert.Equal(t, time.UTC, s.CreatedAt.Location())
		assert.WithinDuration(t, time.Now().UTC(), s.CreatedAt, time.Second)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := New(1, 10, decimal.Zero)
		assert.ErrorIs(t, err, shared.ErrInvalidAmount)

		_, err = New(1, 10, decimal.NewFromInt(-5))
		assert.ErrorIs(t, err, shared.ErrInvalidAmount)
	})
}
