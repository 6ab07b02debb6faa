package domain

import "time"

// NumScoreBands is the number of fixed score ranges used for calibration.
const NumScoreBands = 5

// ScoreBand holds observed outcomes for one score range. Bands partition
// [0,100]: 0-19, 20-39, 40-59, 60-79, 80-100.
type ScoreBand struct {
	Min             int     `json:"min"`
	Max             int     `json:"max"`
	Total           int     `json:"total"`
	Winners         int     `json:"winners"`
	Losers          int     `json:"losers"`
	Expired         int     `json:"expired"`
	WinRate         float64 `json:"winRate"`
	ExpectedWinRate float64 `json:"expectedWinRate"`
}

// BandIndex maps a score to the band it belongs to. Scores are clamped to
// [0,100] before bucketing, so every score lands in exactly one band.
func BandIndex(score float64) int {
	if score < 0 {
		score = 0
	}
	if score >= 100 {
		return NumScoreBands - 1
	}
	return int(score / 20)
}

// BandBounds returns the inclusive bounds of band i.
func BandBounds(i int) (int, int) {
	if i == NumScoreBands-1 {
		return 80, 100
	}
	return i * 20, i*20 + 19
}

// Calibration is the wholesale-replaced learning snapshot the scanner
// reads at scan time. StrategyAdjustments scales raw scores per strategy;
// a missing entry means neutral (1.0).
type Calibration struct {
	GeneratedAt         time.Time          `json:"generatedAt"`
	ResolvedPicks       int                `json:"resolvedPicks"`
	Bands               []ScoreBand        `json:"bands"`
	StrategyAdjustments map[string]float64 `json:"strategyAdjustments"`
}

// AdjustmentFor returns the score multiplier for a strategy, defaulting
// to neutral when the calibration has nothing to say about it.
func (c *Calibration) AdjustmentFor(strategy string) float64 {
	if c == nil || c.StrategyAdjustments == nil {
		return 1.0
	}
	if f, ok := c.StrategyAdjustments[strategy]; ok && f > 0 {
		return f
	}
	return 1.0
}
