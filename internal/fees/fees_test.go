package fees

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommission(t *testing.T) {
	s := DefaultSchedule()

	t.Run("minimum cap applies to small orders", func(t *testing.T) {
		// 5 shares * $0.0049 is way below the $4.95 floor
		fee := s.Commission(5, 45, false)
		assert.True(t, fee.Equal(decimal.NewFromFloat(4.95)), "got %s", fee)
	})

	t.Run("maximum cap applies to large orders", func(t *testing.T) {
		fee := s.Commission(5000, 10, false)
		assert.True(t, fee.Equal(decimal.NewFromFloat(9.95)), "got %s", fee)
	})

	t.Run("cdr orders are free", func(t *testing.T) {
		assert.True(t, s.Commission(5000, 10, true).IsZero())
	})

	t.Run("degenerate orders are free", func(t *testing.T) {
		assert.True(t, s.Commission(0, 45, false).IsZero())
		assert.True(t, s.Commission(5, 0, false).IsZero())
	})
}

func TestFeeDragPct(t *testing.T) {
	s := DefaultSchedule()

	// budget $250, entry $45 -> 5 shares, $225 invested, $4.95 flat fee
	drag, err := s.FeeDragPct(5, 45, false)
	require.NoError(t, err)
	assert.InDelta(t, 4.95/225.0, drag, 1e-9)

	drag, err = s.FeeDragPct(5, 45, true)
	require.NoError(t, err)
	assert.Zero(t, drag)

	_, err = s.FeeDragPct(0, 45, false)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestBreakevenPct(t *testing.T) {
	s := DefaultSchedule()

	be, err := s.BreakevenPct(5, 45, false)
	require.NoError(t, err)
	assert.InDelta(t, 9.90/225.0, be, 1e-9)

	be, err = s.BreakevenPct(5, 45, true)
	require.NoError(t, err)
	assert.Zero(t, be)

	_, err = s.BreakevenPct(0, 0, false)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestNetProfitAndLoss(t *testing.T) {
	s := DefaultSchedule()

	profit := s.NetProfitIfTP(100, 105, 10, false)
	assert.InDelta(t, 50-9.90, profit, 1e-9)

	loss := s.NetLossIfSL(100, 98, 10, false)
	assert.InDelta(t, 20+9.90, loss, 1e-9)

	// CDR keeps the raw move
	assert.InDelta(t, 50, s.NetProfitIfTP(100, 105, 10, true), 1e-9)
	assert.InDelta(t, 20, s.NetLossIfSL(100, 98, 10, true), 1e-9)
}

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultSchedule().Validate())

	bad := Schedule{
		PerShare: decimal.NewFromFloat(0.0049),
		MinFee:   decimal.NewFromFloat(9.95),
		MaxFee:   decimal.NewFromFloat(4.95),
	}
	assert.Error(t, bad.Validate())

	negative := Schedule{PerShare: decimal.NewFromFloat(-1)}
	assert.Error(t, negative.Validate())
}
