package service

import (
	"context"
	"daypicks/internal/db/models/postgres/public/model"
	"daypicks/internal/domain"
	"daypicks/internal/fees"
	"daypicks/internal/logger"
	"daypicks/internal/repository"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

// ErrInvalidBudget rejects allocation requests with a non-positive budget.
var ErrInvalidBudget = errors.New("budget must be positive")

type BudgetService interface {
	Allocate(ctx context.Context, input AllocateInput) (*AllocateResult, error)
}

type AllocateInput struct {
	Budget  float64
	CdrOnly bool
	Style   domain.TradingStyle
	// Top truncates the ranked picks; 0 means no cut.
	Top int
	// Days limits candidate picks to a trailing window; 0 means 7 days.
	Days int
}

type AllocateResult struct {
	Budget         float64             `json:"budget"`
	Affordable     int                 `json:"affordable"`
	CdrAffordable  int                 `json:"cdrAffordable"`
	AvgFeeDrag     *float64            `json:"avgFeeDrag,omitempty"`
	Recommendation string              `json:"recommendation"`
	Picks          []domain.BudgetPick `json:"picks"`
}

type budgetServiceHandler struct {
	PickRepository repository.PickRepository
	FeeSchedule    fees.Schedule
}

func NewBudgetService(pickRepository repository.PickRepository, feeSchedule fees.Schedule) BudgetService {
	return budgetServiceHandler{
		PickRepository: pickRepository,
		FeeSchedule:    feeSchedule,
	}
}

// Allocate sizes recent pending picks to the caller's budget and trading
// style. Picks the budget cannot buy a single share of are dropped, never
// partially sized.
func (h budgetServiceHandler) Allocate(ctx context.Context, input AllocateInput) (*AllocateResult, error) {
	log := logger.FromContext(ctx)

	if input.Budget <= 0 {
		return nil, ErrInvalidBudget
	}

	days := input.Days
	if days <= 0 {
		days = 7
	}
	since := time.Now().UTC().AddDate(0, 0, -days)

	pending, err := h.PickRepository.ListPending(since)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending picks for allocation: %w", err)
	}

	result := &AllocateResult{
		Budget: input.Budget,
		Picks:  []domain.BudgetPick{},
	}

	styleFactor, holdPeriod := input.Style.StyleFactor()

	var dragSum float64
	for _, p := range pending {
		if input.CdrOnly && !p.IsCdr {
			continue
		}

		bp, ok := h.sizePick(p, input.Budget, styleFactor, holdPeriod)
		if !ok {
			continue
		}

		result.Affordable++
		if bp.IsCdr {
			result.CdrAffordable++
		}
		dragSum += bp.FeeDragPct
		result.Picks = append(result.Picks, bp)
	}

	if result.Affordable > 0 {
		avg := dragSum / float64(result.Affordable)
		result.AvgFeeDrag = &avg
	}

	sort.SliceStable(result.Picks, func(i, j int) bool {
		return result.Picks[i].BudgetScore > result.Picks[j].BudgetScore
	})
	if input.Top > 0 && len(result.Picks) > input.Top {
		result.Picks = result.Picks[:input.Top]
	}

	result.Recommendation = h.recommend(result, input)
	log.Infof("sized %d of %d pending picks to a $%.2f budget", result.Affordable, len(pending), input.Budget)

	return result, nil
}

// sizePick turns one pending pick into a budget-sized position. The style
// factor scales the TP and SL distances around the entry; the entry itself
// never moves.
func (h budgetServiceHandler) sizePick(p model.Pick, budget, styleFactor float64, holdPeriod string) (domain.BudgetPick, bool) {
	entry := p.EntryPrice.InexactFloat64()
	if entry <= 0 {
		return domain.BudgetPick{}, false
	}

	shares := int(math.Floor(budget / entry))
	if shares < 1 {
		return domain.BudgetPick{}, false
	}
	invested := float64(shares) * entry

	tp := entry + (p.TakeProfitPrice.InexactFloat64()-entry)*styleFactor
	sl := entry - (entry-p.StopLossPrice.InexactFloat64())*styleFactor
	if !(sl < entry && entry < tp) {
		return domain.BudgetPick{}, false
	}

	netProfit := h.FeeSchedule.NetProfitIfTP(entry, tp, shares, p.IsCdr)
	netLoss := h.FeeSchedule.NetLossIfSL(entry, sl, shares, p.IsCdr)

	feeDrag, err := h.FeeSchedule.FeeDragPct(shares, entry, p.IsCdr)
	if err != nil {
		return domain.BudgetPick{}, false
	}
	breakeven, err := h.FeeSchedule.BreakevenPct(shares, entry, p.IsCdr)
	if err != nil {
		return domain.BudgetPick{}, false
	}

	rr := 0.0
	if netLoss > 0 {
		rr = netProfit / netLoss
	}

	return domain.BudgetPick{
		Ticker:       p.Ticker,
		Strategy:     p.Strategy,
		Shares:       shares,
		Invested:     invested,
		EntryPrice:   entry,
		TpPrice:      tp,
		SlPrice:      sl,
		NetProfit:    netProfit,
		NetLoss:      netLoss,
		FeeDragPct:   feeDrag,
		BreakevenPct: breakeven,
		RiskReward:   rr,
		BudgetScore:  budgetScore(p, rr, feeDrag),
		Confidence:   p.Confidence.String(),
		IsCdr:        p.IsCdr,
		HoldPeriod:   holdPeriod,
	}, true
}

// budgetScore ranks sized picks: the scanner's score, boosted by the
// post-fee risk/reward and penalized by fee drag.
func budgetScore(p model.Pick, riskReward, feeDrag float64) float64 {
	return p.Score + riskReward*10 - feeDrag*1000
}

func (h budgetServiceHandler) recommend(result *AllocateResult, input AllocateInput) string {
	if len(result.Picks) == 0 {
		if input.CdrOnly {
			return fmt.Sprintf("no pending CDR picks are affordable at a $%.2f budget", input.Budget)
		}
		return fmt.Sprintf("no pending picks are affordable at a $%.2f budget; consider a larger budget or waiting for cheaper setups", input.Budget)
	}

	best := result.Picks[0]
	rec := fmt.Sprintf(
		"buy %d shares of %s at $%.2f ($%.2f invested), stop $%.2f, target $%.2f",
		best.Shares, best.Ticker, best.EntryPrice, best.Invested, best.SlPrice, best.TpPrice)
	if best.HoldPeriod != "" {
		rec += fmt.Sprintf(", hold %s", best.HoldPeriod)
	}
	if best.IsCdr {
		rec += "; commission-free as a CDR"
	} else if best.FeeDragPct > 0.02 {
		rec += fmt.Sprintf("; note fees eat %.1f%% of the position at this size", best.FeeDragPct*100)
	}
	return rec
}
