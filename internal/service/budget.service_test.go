package service

import (
	"context"
	"daypicks/internal/db/models/postgres/public/model"
	"daypicks/internal/domain"
	"daypicks/internal/fees"
	mock_repository "daypicks/internal/repository/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newBudgetHandler(pickRepository *mock_repository.MockPickRepository) budgetServiceHandler {
	return budgetServiceHandler{
		PickRepository: pickRepository,
		FeeSchedule:    fees.DefaultSchedule(),
	}
}

func Test_Allocate(t *testing.T) {
	t.Run("rejects a non-positive budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pickRepository := mock_repository.NewMockPickRepository(ctrl)
		handler := newBudgetHandler(pickRepository)

		_, err := handler.Allocate(context.Background(), AllocateInput{Budget: 0})
		require.ErrorIs(t, err, ErrInvalidBudget)

		_, err = handler.Allocate(context.Background(), AllocateInput{Budget: -100})
		require.ErrorIs(t, err, ErrInvalidBudget)
	})

	t.Run("sizes whole shares within the budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pickRepository := mock_repository.NewMockPickRepository(ctrl)
		handler := newBudgetHandler(pickRepository)

		pick := pendingPick("AAPL", 45, 44.10, 47.25, time.Now().UTC())
		pickRepository.EXPECT().ListPending(gomock.Any()).Return([]model.Pick{pick}, nil)

		result, err := handler.Allocate(context.Background(), AllocateInput{Budget: 250})
		require.NoError(t, err)

		require.Equal(t, 1, result.Affordable)
		require.Len(t, result.Picks, 1)

		bp := result.Picks[0]
		require.Equal(t, 5, bp.Shares)
		require.InDelta(t, 225.0, bp.Invested, 1e-9)
		require.LessOrEqual(t, bp.Invested, 250.0)
		// 5 shares at $0.0049 is below the $4.95 order minimum
		require.InDelta(t, 4.95/225.0, bp.FeeDragPct, 1e-9)
		require.InDelta(t, 9.90/225.0, bp.BreakevenPct, 1e-9)
		require.Contains(t, result.Recommendation, "AAPL")
	})

	t.Run("a pick the budget cannot buy one share of is dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pickRepository := mock_repository.NewMockPickRepository(ctrl)
		handler := newBudgetHandler(pickRepository)

		expensive := pendingPick("BKNG", 4500, 4410, 4725, time.Now().UTC())
		cheap := pendingPick("SHOP", 45, 44.10, 47.25, time.Now().UTC())
		pickRepository.EXPECT().ListPending(gomock.Any()).Return([]model.Pick{expensive, cheap}, nil)

		result, err := handler.Allocate(context.Background(), AllocateInput{Budget: 500})
		require.NoError(t, err)

		require.Equal(t, 1, result.Affordable)
		require.Len(t, result.Picks, 1)
		require.Equal(t, "SHOP", result.Picks[0].Ticker)
	})

	t.Run("cdr picks carry zero fees", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pickRepository := mock_repository.NewMockPickRepository(ctrl)
		handler := newBudgetHandler(pickRepository)

		pick := pendingPick("AAPL", 45, 44.10, 47.25, time.Now().UTC())
		pick.IsCdr = true
		pickRepository.EXPECT().ListPending(gomock.Any()).Return([]model.Pick{pick}, nil)

		result, err := handler.Allocate(context.Background(), AllocateInput{Budget: 250, CdrOnly: true})
		require.NoError(t, err)

		require.Equal(t, 1, result.CdrAffordable)
		bp := result.Picks[0]
		require.Zero(t, bp.FeeDragPct)
		require.Zero(t, bp.BreakevenPct)
		// net profit is the gross move untouched by fees
		require.InDelta(t, 5*2.25, bp.NetProfit, 1e-9)
		require.Contains(t, result.Recommendation, "commission-free")
	})

	t.Run("cdr only filter drops non-cdr picks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pickRepository := mock_repository.NewMockPickRepository(ctrl)
		handler := newBudgetHandler(pickRepository)

		pick := pendingPick("AAPL", 45, 44.10, 47.25, time.Now().UTC())
		pickRepository.EXPECT().ListPending(gomock.Any()).Return([]model.Pick{pick}, nil)

		result, err := handler.Allocate(context.Background(), AllocateInput{Budget: 250, CdrOnly: true})
		require.NoError(t, err)

		require.Zero(t, result.Affordable)
		require.Empty(t, result.Picks)
		require.Contains(t, result.Recommendation, "no pending CDR picks")
	})

	t.Run("intraday style halves the exit distances", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pickRepository := mock_repository.NewMockPickRepository(ctrl)
		handler := newBudgetHandler(pickRepository)

		pick := pendingPick("AAPL", 100, 98, 105, time.Now().UTC())
		pickRepository.EXPECT().ListPending(gomock.Any()).Return([]model.Pick{pick}, nil)

		result, err := handler.Allocate(context.Background(), AllocateInput{
			Budget: 1000,
			Style:  domain.TradingStyleIntraday,
		})
		require.NoError(t, err)
		require.Len(t, result.Picks, 1)

		bp := result.Picks[0]
		require.InDelta(t, 100.0, bp.EntryPrice, 1e-9)
		require.InDelta(t, 102.5, bp.TpPrice, 1e-9)
		require.InDelta(t, 99.0, bp.SlPrice, 1e-9)
		require.Equal(t, "today", bp.HoldPeriod)
	})

	t.Run("unknown style applies no adjustment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pickRepository := mock_repository.NewMockPickRepository(ctrl)
		handler := newBudgetHandler(pickRepository)

		pick := pendingPick("AAPL", 100, 98, 105, time.Now().UTC())
		pickRepository.EXPECT().ListPending(gomock.Any()).Return([]model.Pick{pick}, nil)

		result, err := handler.Allocate(context.Background(), AllocateInput{
			Budget: 1000,
			Style:  domain.TradingStyle("yolo"),
		})
		require.NoError(t, err)
		require.Len(t, result.Picks, 1)

		bp := result.Picks[0]
		require.InDelta(t, 105.0, bp.TpPrice, 1e-9)
		require.InDelta(t, 98.0, bp.SlPrice, 1e-9)
		require.Empty(t, bp.HoldPeriod)
	})

	t.Run("top cut keeps the highest ranked picks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pickRepository := mock_repository.NewMockPickRepository(ctrl)
		handler := newBudgetHandler(pickRepository)

		weak := pendingPick("AAPL", 100, 98, 105, time.Now().UTC())
		weak.Score = 20
		strong := pendingPick("SHOP", 100, 98, 105, time.Now().UTC())
		strong.Score = 90
		pickRepository.EXPECT().ListPending(gomock.Any()).Return([]model.Pick{weak, strong}, nil)

		result, err := handler.Allocate(context.Background(), AllocateInput{Budget: 1000, Top: 1})
		require.NoError(t, err)

		require.Equal(t, 2, result.Affordable)
		require.Len(t, result.Picks, 1)
		require.Equal(t, "SHOP", result.Picks[0].Ticker)
	})
}
