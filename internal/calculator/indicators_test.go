package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovingAverage(t *testing.T) {
	ma, err := MovingAverage([]float64{1, 2, 3, 4, 5, 6}, 3)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, ma, 1e-9)

	_, err = MovingAverage([]float64{1, 2}, 3)
	assert.Error(t, err)
}

func TestRSI(t *testing.T) {
	t.Run("all gains pins at 100", func(t *testing.T) {
		closes := make([]float64, 20)
		for i := range closes {
			closes[i] = 100 + float64(i)
		}
		rsi, err := RSI(closes, 14)
		require.NoError(t, err)
		assert.InDelta(t, 100, rsi, 1e-9)
	})

	t.Run("alternating moves stay near 50", func(t *testing.T) {
		closes := make([]float64, 30)
		for i := range closes {
			closes[i] = 100
			if i%2 == 1 {
				closes[i] = 101
			}
		}
		rsi, err := RSI(closes, 14)
		require.NoError(t, err)
		assert.Greater(t, rsi, 40.0)
		assert.Less(t, rsi, 60.0)
	})

	t.Run("not enough history", func(t *testing.T) {
		_, err := RSI([]float64{1, 2, 3}, 14)
		assert.Error(t, err)
	})
}

func TestPercentReturn(t *testing.T) {
	ret, err := PercentReturn([]float64{100, 101, 102, 103, 104, 110}, 5)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, ret, 1e-9)

	_, err = PercentReturn([]float64{100}, 5)
	assert.Error(t, err)
}

func TestStdev(t *testing.T) {
	sd, err := Stdev([]float64{10, 10, 10, 10}, 4)
	require.NoError(t, err)
	assert.InDelta(t, 0, sd, 1e-9)

	_, err = Stdev([]float64{10}, 4)
	assert.Error(t, err)
}
