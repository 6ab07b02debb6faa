package service

import (
	"daypicks/internal/db/models/postgres/public/model"
	"daypicks/internal/domain"
	"daypicks/internal/registry"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func strategyFor(t *testing.T, scanType registry.ScanType) registry.Strategy {
	t.Helper()
	st, err := registry.MustDefault().Get(scanType)
	require.NoError(t, err)
	return st
}

func Test_evaluateSignal(t *testing.T) {
	now := time.Now().UTC()
	sc := scanContext{now: now}

	t.Run("gap below threshold does not fire", func(t *testing.T) {
		snap := gapSnapshot("AAPL", 100, 99)
		_, ok := evaluateSignal(strategyFor(t, registry.ScanTypeGapScanner), snap, model.WatchlistTicker{}, sc)
		require.False(t, ok)
	})

	t.Run("gap down fires on magnitude", func(t *testing.T) {
		snap := gapSnapshot("AAPL", 96, 100)
		strength, ok := evaluateSignal(strategyFor(t, registry.ScanTypeGapScanner), snap, model.WatchlistTicker{}, sc)
		require.True(t, ok)
		require.Greater(t, strength, 0.0)
	})

	t.Run("volume surge fires above ratio threshold", func(t *testing.T) {
		snap := gapSnapshot("AAPL", 100, 100)
		snap.Volume = 2_000_000
		snap.AvgVolume20d = 1_000_000
		strength, ok := evaluateSignal(strategyFor(t, registry.ScanTypeVolumeScanner), snap, model.WatchlistTicker{}, sc)
		require.True(t, ok)
		require.InDelta(t, 0.5, strength, 1e-9)
	})

	t.Run("reversal needs oversold plus a bounce", func(t *testing.T) {
		snap := gapSnapshot("AAPL", 100, 99.5)
		snap.RSI14 = 25

		_, ok := evaluateSignal(strategyFor(t, registry.ScanTypeReversal), snap, model.WatchlistTicker{}, sc)
		require.True(t, ok)

		// oversold but still falling
		snap.Price = 99
		_, ok = evaluateSignal(strategyFor(t, registry.ScanTypeReversal), snap, model.WatchlistTicker{}, sc)
		require.False(t, ok)
	})

	t.Run("trend pullback needs an uptrend and a shallow dip", func(t *testing.T) {
		snap := &domain.Snapshot{Price: 101, MA20: 100, MA50: 95}
		strength, ok := evaluateSignal(strategyFor(t, registry.ScanTypeTrendPullback), snap, model.WatchlistTicker{}, sc)
		require.True(t, ok)
		require.Greater(t, strength, 0.0)

		// too far above the 20-day average
		snap.Price = 110
		_, ok = evaluateSignal(strategyFor(t, registry.ScanTypeTrendPullback), snap, model.WatchlistTicker{}, sc)
		require.False(t, ok)
	})

	t.Run("earnings fires only inside the lookahead window", func(t *testing.T) {
		st := strategyFor(t, registry.ScanTypeEarnings)
		snap := gapSnapshot("AAPL", 100, 100)

		_, ok := evaluateSignal(st, snap, model.WatchlistTicker{}, sc)
		require.False(t, ok)

		soon := now.Add(48 * time.Hour)
		snap.EarningsDate = &soon
		strength, ok := evaluateSignal(st, snap, model.WatchlistTicker{}, sc)
		require.True(t, ok)
		require.Greater(t, strength, 0.0)

		far := now.AddDate(0, 0, 30)
		snap.EarningsDate = &far
		_, ok = evaluateSignal(st, snap, model.WatchlistTicker{}, sc)
		require.False(t, ok)
	})

	t.Run("cdr filter fires only for cdr tickers", func(t *testing.T) {
		st := strategyFor(t, registry.ScanTypeCdrFilter)
		snap := gapSnapshot("AAPL", 100, 99)

		_, ok := evaluateSignal(st, snap, model.WatchlistTicker{IsCdr: false}, sc)
		require.False(t, ok)

		strength, ok := evaluateSignal(st, snap, model.WatchlistTicker{IsCdr: true}, sc)
		require.True(t, ok)
		require.Greater(t, strength, 0.0)
	})

	t.Run("sector scan fires for the top half of sectors", func(t *testing.T) {
		st := strategyFor(t, registry.ScanTypeSectorScan)
		snap := gapSnapshot("AAPL", 100, 100)
		ranked := scanContext{
			sectorRank: map[string]int{"Technology": 1, "Energy": 2, "Utilities": 3, "Materials": 4},
			numSectors: 4,
			now:        now,
		}

		_, ok := evaluateSignal(st, snap, model.WatchlistTicker{Sector: "Technology"}, ranked)
		require.True(t, ok)

		_, ok = evaluateSignal(st, snap, model.WatchlistTicker{Sector: "Materials"}, ranked)
		require.False(t, ok)
	})

	t.Run("zscore reversal fires past two deviations", func(t *testing.T) {
		st := strategyFor(t, registry.ScanTypeZScoreReversal)
		snap := &domain.Snapshot{Price: 95, MA20: 100, Stdev20: 2}

		strength, ok := evaluateSignal(st, snap, model.WatchlistTicker{}, sc)
		require.True(t, ok)
		require.Greater(t, strength, 0.0)

		snap.Price = 99
		_, ok = evaluateSignal(st, snap, model.WatchlistTicker{}, sc)
		require.False(t, ok)
	})
}

func Test_normalizeScore(t *testing.T) {
	gap := strategyFor(t, registry.ScanTypeGapScanner)
	cdr := strategyFor(t, registry.ScanTypeCdrFilter)

	t.Run("nil calibration is neutral", func(t *testing.T) {
		require.InDelta(t, 50.0, normalizeScore(gap, 0.5, nil), 1e-9)
	})

	t.Run("strategy adjustment scales the score", func(t *testing.T) {
		calibration := &domain.Calibration{
			StrategyAdjustments: map[string]float64{string(registry.ScanTypeGapScanner): 1.4},
		}
		require.InDelta(t, 70.0, normalizeScore(gap, 0.5, calibration), 1e-9)
	})

	t.Run("cdr filter gets the fee avoidance bonus", func(t *testing.T) {
		require.InDelta(t, 60.0, normalizeScore(cdr, 0.5, nil), 1e-9)
	})

	t.Run("score clamps to 100", func(t *testing.T) {
		calibration := &domain.Calibration{
			StrategyAdjustments: map[string]float64{string(registry.ScanTypeGapScanner): 1.5},
		}
		require.InDelta(t, 100.0, normalizeScore(gap, 0.9, calibration), 1e-9)
	})
}

func Test_confidenceForScore(t *testing.T) {
	require.Equal(t, model.PickConfidence_High, confidenceForScore(80))
	require.Equal(t, model.PickConfidence_Medium, confidenceForScore(50))
	require.Equal(t, model.PickConfidence_Medium, confidenceForScore(79.9))
	require.Equal(t, model.PickConfidence_Low, confidenceForScore(49.9))
	require.Equal(t, model.PickConfidence_Low, confidenceForScore(0))
}
