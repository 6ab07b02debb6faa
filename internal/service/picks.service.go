package service

import (
	"context"
	"daypicks/internal/db/models/postgres/public/model"
	"daypicks/internal/repository"
	"fmt"
	"sort"
	"time"
)

type PicksService interface {
	List(ctx context.Context, input ListPicksInput) (*ListPicksResult, error)
	DashboardSummary(ctx context.Context) (*DashboardSummary, error)
}

type ListPicksInput struct {
	Ticker     *string
	Strategy   *string
	Confidence *model.PickConfidence
	CdrOnly    bool
	// Days limits picks to a trailing window; 0 means no limit.
	Days int
	// Sort is one of risk_reward (default), score, scan_time.
	Sort string
}

type PickSummary struct {
	Pending  int     `json:"pending"`
	Winners  int     `json:"winners"`
	Losers   int     `json:"losers"`
	Expired  int     `json:"expired"`
	AvgScore float64 `json:"avgScore"`
}

type ListPicksResult struct {
	Total   int          `json:"total"`
	Summary PickSummary  `json:"summary"`
	Picks   []model.Pick `json:"picks"`
}

type DashboardSummary struct {
	TotalPicks   int      `json:"totalPicks"`
	Winners      int      `json:"winners"`
	Losers       int      `json:"losers"`
	Expired      int      `json:"expired"`
	Pending      int      `json:"pending"`
	WinRate      *float64 `json:"winRate,omitempty"`
	ProfitFactor *float64 `json:"profitFactor,omitempty"`
	Expectancy   *float64 `json:"expectancy,omitempty"`
	CdrWinRate   *float64 `json:"cdrWinRate,omitempty"`
}

type picksServiceHandler struct {
	PickRepository repository.PickRepository
}

func NewPicksService(pickRepository repository.PickRepository) PicksService {
	return picksServiceHandler{PickRepository: pickRepository}
}

func (h picksServiceHandler) List(ctx context.Context, input ListPicksInput) (*ListPicksResult, error) {
	filter := repository.PickFilter{
		Ticker:     input.Ticker,
		Strategy:   input.Strategy,
		Confidence: input.Confidence,
		CdrOnly:    input.CdrOnly,
	}
	if input.Days > 0 {
		since := time.Now().UTC().AddDate(0, 0, -input.Days)
		filter.Since = &since
	}

	picks, err := h.PickRepository.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list picks: %w", err)
	}

	switch input.Sort {
	case "", "risk_reward":
		sort.SliceStable(picks, func(i, j int) bool {
			return RiskRewardRatio(picks[i]) > RiskRewardRatio(picks[j])
		})
	case "score":
		sort.SliceStable(picks, func(i, j int) bool { return picks[i].Score > picks[j].Score })
	case "scan_time":
		// repository default, newest first
	default:
		return nil, fmt.Errorf("unknown sort key %q", input.Sort)
	}

	summary := PickSummary{}
	var scoreSum float64
	for _, p := range picks {
		scoreSum += p.Score
		switch p.Outcome {
		case model.PickOutcome_Pending:
			summary.Pending++
		case model.PickOutcome_Winner:
			summary.Winners++
		case model.PickOutcome_Loser:
			summary.Losers++
		case model.PickOutcome_Expired:
			summary.Expired++
		}
	}
	if len(picks) > 0 {
		summary.AvgScore = scoreSum / float64(len(picks))
	}

	return &ListPicksResult{
		Total:   len(picks),
		Summary: summary,
		Picks:   picks,
	}, nil
}

func (h picksServiceHandler) DashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	picks, err := h.PickRepository.List(repository.PickFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load picks for dashboard: %w", err)
	}

	all := computeGroupStats("all", picks)

	cdrPicks := []model.Pick{}
	pending := 0
	for _, p := range picks {
		if p.Outcome == model.PickOutcome_Pending {
			pending++
		}
		if p.IsCdr {
			cdrPicks = append(cdrPicks, p)
		}
	}
	cdr := computeGroupStats("cdr", cdrPicks)

	return &DashboardSummary{
		TotalPicks:   len(picks),
		Winners:      all.Winners,
		Losers:       all.Losers,
		Expired:      all.Expired,
		Pending:      pending,
		WinRate:      all.WinRate,
		ProfitFactor: all.ProfitFactor,
		Expectancy:   all.Expectancy,
		CdrWinRate:   cdr.WinRate,
	}, nil
}
