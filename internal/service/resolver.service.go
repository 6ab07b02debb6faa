package service

import (
	"context"
	"daypicks/internal/db/models/postgres/public/model"
	"daypicks/internal/logger"
	"daypicks/internal/registry"
	"daypicks/internal/repository"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type ResolverService interface {
	Resolve(ctx context.Context, maxDaysLookback int) (*ResolveResult, error)
}

type ResolveResult struct {
	Resolved     int `json:"resolved"`
	Winners      int `json:"winners"`
	Losers       int `json:"losers"`
	Expired      int `json:"expired"`
	StillPending int `json:"stillPending"`
}

type resolverServiceHandler struct {
	PickRepository       repository.PickRepository
	MarketDataRepository repository.MarketDataRepository
	Registry             *registry.Registry
}

func NewResolverService(
	pickRepository repository.PickRepository,
	marketDataRepository repository.MarketDataRepository,
	strategyRegistry *registry.Registry,
) ResolverService {
	return resolverServiceHandler{
		PickRepository:       pickRepository,
		MarketDataRepository: marketDataRepository,
		Registry:             strategyRegistry,
	}
}

// Resolve walks pending picks in the lookback window and transitions the
// ones whose outcome is now known. Winners and losers record the
// threshold price they crossed, expired picks record the observed price.
// Transitions use compare-and-set, so a re-run on already-terminal picks
// is a no-op.
func (h resolverServiceHandler) Resolve(ctx context.Context, maxDaysLookback int) (*ResolveResult, error) {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	if maxDaysLookback <= 0 {
		maxDaysLookback = 30
	}
	since := now.AddDate(0, 0, -maxDaysLookback)

	pending, err := h.PickRepository.ListPending(since)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending picks: %w", err)
	}

	result := &ResolveResult{}
	for _, p := range pending {
		price, err := h.MarketDataRepository.GetLatestPrice(ctx, p.Ticker)
		if err != nil {
			// leave it pending; the next run retries
			log.Warnf("price fetch failed for pick %s (%s): %s", p.PickID.String(), p.Ticker, err.Error())
			result.StillPending++
			continue
		}

		outcome, exitPrice, ok := h.judge(p, price, now)
		if !ok {
			result.StillPending++
			continue
		}

		transitioned, err := h.PickRepository.UpdateOutcome(p.PickID, outcome, exitPrice, now)
		if err != nil {
			log.Warnf("failed to transition pick %s: %s", p.PickID.String(), err.Error())
			result.StillPending++
			continue
		}
		if !transitioned {
			// lost the race to a concurrent resolver; already terminal
			continue
		}

		result.Resolved++
		switch outcome {
		case model.PickOutcome_Winner:
			result.Winners++
		case model.PickOutcome_Loser:
			result.Losers++
		case model.PickOutcome_Expired:
			result.Expired++
		}
	}

	return result, nil
}

func (h resolverServiceHandler) judge(p model.Pick, price float64, now time.Time) (model.PickOutcome, decimal.Decimal, bool) {
	if price >= p.TakeProfitPrice.InexactFloat64() {
		return model.PickOutcome_Winner, p.TakeProfitPrice, true
	}
	if price <= p.StopLossPrice.InexactFloat64() {
		return model.PickOutcome_Loser, p.StopLossPrice, true
	}

	maxHoldDays := 7
	if st, err := h.Registry.Get(registry.ScanType(p.Strategy)); err == nil {
		maxHoldDays = st.MaxHoldDays
	}
	if now.Sub(p.ScanTime) > time.Duration(maxHoldDays)*24*time.Hour {
		return model.PickOutcome_Expired, decimal.NewFromFloat(price).Round(4), true
	}

	return model.PickOutcome_Pending, decimal.Zero, false
}
