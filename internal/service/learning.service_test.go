package service

import (
	"context"
	"daypicks/internal/db/models/postgres/public/model"
	"daypicks/internal/domain"
	"daypicks/internal/registry"
	"daypicks/internal/repository"
	mock_repository "daypicks/internal/repository/mocks"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func resolvedPick(strategy string, outcome model.PickOutcome, entry, exit, score float64) model.Pick {
	exitPrice := decimal.NewFromFloat(exit)
	resolvedAt := time.Now().UTC()
	return model.Pick{
		PickID:          uuid.New(),
		Ticker:          "AAPL",
		Strategy:        strategy,
		EntryPrice:      decimal.NewFromFloat(entry),
		StopLossPrice:   decimal.NewFromFloat(entry * 0.98),
		TakeProfitPrice: decimal.NewFromFloat(entry * 1.05),
		Score:           score,
		Confidence:      confidenceForScore(score),
		ScanTime:        resolvedAt.Add(-48 * time.Hour),
		Outcome:         outcome,
		ResolvedAt:      &resolvedAt,
		ActualExitPrice: &exitPrice,
	}
}

func Test_Analyze(t *testing.T) {
	t.Run("score bands partition every resolved pick", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pickRepository := mock_repository.NewMockPickRepository(ctrl)
		calibrationRepository := mock_repository.NewMockCalibrationRepository(ctrl)

		handler := learningServiceHandler{
			PickRepository:        pickRepository,
			CalibrationRepository: calibrationRepository,
		}

		gap := string(registry.ScanTypeGapScanner)
		picks := []model.Pick{
			resolvedPick(gap, model.PickOutcome_Winner, 100, 105, 10),
			resolvedPick(gap, model.PickOutcome_Loser, 100, 98, 35),
			resolvedPick(gap, model.PickOutcome_Winner, 100, 105, 55),
			resolvedPick(gap, model.PickOutcome_Expired, 100, 101, 72),
			resolvedPick(gap, model.PickOutcome_Winner, 100, 105, 100),
			// pending picks are excluded from every analysis
			pendingPick("AAPL", 100, 98, 105, time.Now().UTC()),
		}
		pickRepository.EXPECT().List(repository.PickFilter{}).Return(picks, nil)

		analysis, err := handler.Analyze(context.Background())
		require.NoError(t, err)
		require.Equal(t, 5, analysis.ResolvedPicks)

		require.Len(t, analysis.ScoreCalibration, domain.NumScoreBands)
		total := 0
		for i, b := range analysis.ScoreCalibration {
			require.Equal(t, 1, b.Total, "band %d", i)
			total += b.Total
		}
		require.Equal(t, analysis.ResolvedPicks, total)

		// a score of 100 lands in the top band, not out of range
		top := analysis.ScoreCalibration[domain.NumScoreBands-1]
		require.Equal(t, 1, top.Winners)
	})

	t.Run("profit factor is nil with no losses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pickRepository := mock_repository.NewMockPickRepository(ctrl)
		calibrationRepository := mock_repository.NewMockCalibrationRepository(ctrl)

		handler := learningServiceHandler{
			PickRepository:        pickRepository,
			CalibrationRepository: calibrationRepository,
		}

		gap := string(registry.ScanTypeGapScanner)
		pickRepository.EXPECT().List(repository.PickFilter{}).Return([]model.Pick{
			resolvedPick(gap, model.PickOutcome_Winner, 100, 105, 60),
			resolvedPick(gap, model.PickOutcome_Winner, 100, 105, 60),
		}, nil)

		analysis, err := handler.Analyze(context.Background())
		require.NoError(t, err)

		require.Len(t, analysis.StrategyAnalysis, 1)
		g := analysis.StrategyAnalysis[0]
		require.Nil(t, g.ProfitFactor)
		require.NotNil(t, g.WinRate)
		require.InDelta(t, 1.0, *g.WinRate, 1e-9)
	})

	t.Run("group stats fold wins and losses", func(t *testing.T) {
		gap := string(registry.ScanTypeGapScanner)
		picks := []model.Pick{
			resolvedPick(gap, model.PickOutcome_Winner, 100, 105, 60),
			resolvedPick(gap, model.PickOutcome_Loser, 100, 98, 60),
		}

		got := computeGroupStats(gap, picks)
		wr := 0.5
		pf := 2.5
		e := 0.5*5 - 0.5*2
		want := GroupStats{
			Group:        gap,
			Total:        2,
			Winners:      1,
			Losers:       1,
			WinRate:      &wr,
			AvgWin:       5,
			AvgLoss:      2,
			ProfitFactor: &pf,
			Expectancy:   &e,
		}
		if diff := cmp.Diff(want, got, approxFloat64Ptrs()); diff != "" {
			t.Errorf("group stats mismatch (-want +got):\n%s", diff)
		}
	})
}

func approxFloat64Ptrs() cmp.Option {
	return cmp.Comparer(func(a, b *float64) bool {
		if a == nil || b == nil {
			return a == b
		}
		d := *a - *b
		return d < 1e-9 && d > -1e-9
	})
}

func Test_Recommendations(t *testing.T) {
	t.Run("cold strategy gets a pause recommendation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pickRepository := mock_repository.NewMockPickRepository(ctrl)
		calibrationRepository := mock_repository.NewMockCalibrationRepository(ctrl)

		handler := learningServiceHandler{
			PickRepository:        pickRepository,
			CalibrationRepository: calibrationRepository,
		}

		gap := string(registry.ScanTypeGapScanner)
		picks := []model.Pick{}
		for i := 0; i < 5; i++ {
			picks = append(picks, resolvedPick(gap, model.PickOutcome_Loser, 100, 98, 60))
		}
		picks = append(picks, resolvedPick(gap, model.PickOutcome_Winner, 100, 105, 60))
		pickRepository.EXPECT().List(repository.PickFilter{}).Return(picks, nil)

		recs, err := handler.Recommendations(context.Background())
		require.NoError(t, err)
		require.NotEmpty(t, recs)
		require.Contains(t, recs[0], "gap_scanner")
		require.Contains(t, recs[0], "pausing")
	})

	t.Run("too few resolved picks yields the default message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pickRepository := mock_repository.NewMockPickRepository(ctrl)
		calibrationRepository := mock_repository.NewMockCalibrationRepository(ctrl)

		handler := learningServiceHandler{
			PickRepository:        pickRepository,
			CalibrationRepository: calibrationRepository,
		}

		pickRepository.EXPECT().List(repository.PickFilter{}).Return([]model.Pick{
			resolvedPick(string(registry.ScanTypeGapScanner), model.PickOutcome_Winner, 100, 105, 60),
		}, nil)

		recs, err := handler.Recommendations(context.Background())
		require.NoError(t, err)
		require.Len(t, recs, 1)
		require.Contains(t, recs[0], "not enough resolved picks")
	})
}

func Test_Calibrate(t *testing.T) {
	t.Run("persists adjustments clamped around the win rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pickRepository := mock_repository.NewMockPickRepository(ctrl)
		calibrationRepository := mock_repository.NewMockCalibrationRepository(ctrl)

		handler := learningServiceHandler{
			PickRepository:        pickRepository,
			CalibrationRepository: calibrationRepository,
		}

		gap := string(registry.ScanTypeGapScanner)
		volume := string(registry.ScanTypeVolumeScanner)
		picks := []model.Pick{}
		// gap: 4 winners 1 loser, 80% win rate
		for i := 0; i < 4; i++ {
			picks = append(picks, resolvedPick(gap, model.PickOutcome_Winner, 100, 105, 60))
		}
		picks = append(picks, resolvedPick(gap, model.PickOutcome_Loser, 100, 98, 60))
		// volume: too few samples to adjust
		picks = append(picks, resolvedPick(volume, model.PickOutcome_Winner, 100, 106, 60))
		pickRepository.EXPECT().List(repository.PickFilter{}).Return(picks, nil)

		var stored domain.Calibration
		calibrationRepository.EXPECT().
			Replace(gomock.Any()).
			DoAndReturn(func(c domain.Calibration) error {
				stored = c
				return nil
			})

		calibration, err := handler.Calibrate(context.Background())
		require.NoError(t, err)

		require.Equal(t, 6, calibration.ResolvedPicks)
		require.InDelta(t, 1.3, calibration.StrategyAdjustments[gap], 1e-9)
		require.NotContains(t, calibration.StrategyAdjustments, volume)
		require.Len(t, calibration.Bands, domain.NumScoreBands)
		require.Equal(t, calibration.ResolvedPicks, stored.ResolvedPicks)
	})

	t.Run("adjustment clamps", func(t *testing.T) {
		require.InDelta(t, 0.5, strategyAdjustment(0), 1e-9)
		require.InDelta(t, 1.0, strategyAdjustment(0.5), 1e-9)
		require.InDelta(t, 1.5, strategyAdjustment(1), 1e-9)
	})
}
