package service

import (
	"daypicks/internal/db/models/postgres/public/model"
)

// Guarded ratios are nil when the denominator would be zero; callers
// surface that as "insufficient data" instead of dividing.

func winRate(winners, losers int) *float64 {
	decided := winners + losers
	if decided == 0 {
		return nil
	}
	r := float64(winners) / float64(decided)
	return &r
}

func profitFactor(gains, losses float64) *float64 {
	if losses == 0 {
		return nil
	}
	r := gains / losses
	return &r
}

func isTerminal(o model.PickOutcome) bool {
	return o == model.PickOutcome_Winner || o == model.PickOutcome_Loser || o == model.PickOutcome_Expired
}

// pickMove is the realized per-share move of a resolved pick, exit minus
// entry. Zero for picks without a recorded exit.
func pickMove(p model.Pick) float64 {
	if p.ActualExitPrice == nil {
		return 0
	}
	return p.ActualExitPrice.InexactFloat64() - p.EntryPrice.InexactFloat64()
}

// GroupStats aggregates resolved-pick outcomes for one grouping key.
type GroupStats struct {
	Group        string   `json:"group"`
	Total        int      `json:"total"`
	Winners      int      `json:"winners"`
	Losers       int      `json:"losers"`
	Expired      int      `json:"expired"`
	WinRate      *float64 `json:"winRate,omitempty"`
	AvgWin       float64  `json:"avgWin"`
	AvgLoss      float64  `json:"avgLoss"`
	ProfitFactor *float64 `json:"profitFactor,omitempty"`
	Expectancy   *float64 `json:"expectancy,omitempty"`
}

// computeGroupStats folds resolved picks into win rate, profit factor and
// expectancy. Gains and losses are per-share moves; expired picks count
// toward whichever side their realized move landed on, but not toward
// win rate.
func computeGroupStats(group string, picks []model.Pick) GroupStats {
	out := GroupStats{Group: group}

	var gains, losses float64
	var numGains, numLosses int
	for _, p := range picks {
		if !isTerminal(p.Outcome) {
			continue
		}
		out.Total++
		switch p.Outcome {
		case model.PickOutcome_Winner:
			out.Winners++
		case model.PickOutcome_Loser:
			out.Losers++
		case model.PickOutcome_Expired:
			out.Expired++
		}

		move := pickMove(p)
		if move > 0 {
			gains += move
			numGains++
		} else if move < 0 {
			losses += -move
			numLosses++
		}
	}

	out.WinRate = winRate(out.Winners, out.Losers)
	out.ProfitFactor = profitFactor(gains, losses)
	if numGains > 0 {
		out.AvgWin = gains / float64(numGains)
	}
	if numLosses > 0 {
		out.AvgLoss = losses / float64(numLosses)
	}
	if out.WinRate != nil {
		wr := *out.WinRate
		e := wr*out.AvgWin - (1-wr)*out.AvgLoss
		out.Expectancy = &e
	}

	return out
}
