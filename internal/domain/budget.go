package domain

// TradingStyle is a holding-horizon preference that scales take-profit and
// stop-loss distances and labels the expected hold period.
type TradingStyle string

const (
	TradingStyleIntraday TradingStyle = "intraday"
	TradingStyleSwing    TradingStyle = "swing"
	TradingStyleLongterm TradingStyle = "longterm"
)

// StyleFactor returns the multiplier applied to the TP/SL distance from
// entry, plus the hold-period label. Unrecognized styles are accepted and
// apply no adjustment with an empty label.
func (s TradingStyle) StyleFactor() (float64, string) {
	switch s {
	case TradingStyleIntraday:
		return 0.5, "today"
	case TradingStyleSwing:
		return 1.0, "5-7 days"
	case TradingStyleLongterm:
		return 2.0, "30+ days"
	}
	return 1.0, ""
}

// BudgetPick is a transient projection of a pick sized to a user's budget
// and trading style. It is computed on demand and never stored.
type BudgetPick struct {
	Ticker       string  `json:"ticker"`
	Strategy     string  `json:"strategy"`
	Shares       int     `json:"shares"`
	Invested     float64 `json:"invested"`
	EntryPrice   float64 `json:"entryPrice"`
	TpPrice      float64 `json:"tpPrice"`
	SlPrice      float64 `json:"slPrice"`
	NetProfit    float64 `json:"netProfit"`
	NetLoss      float64 `json:"netLoss"`
	FeeDragPct   float64 `json:"feeDragPct"`
	BreakevenPct float64 `json:"breakevenPct"`
	RiskReward   float64 `json:"riskReward"`
	BudgetScore  float64 `json:"budgetScore"`
	Confidence   string  `json:"confidence"`
	IsCdr        bool    `json:"isCdr"`
	HoldPeriod   string  `json:"holdPeriod"`
}
