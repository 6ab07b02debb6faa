package registry

import "fmt"

// ScanType identifies the signal algorithm a strategy runs.
type ScanType string

const (
	ScanTypeGapScanner     ScanType = "gap_scanner"
	ScanTypeVolumeScanner  ScanType = "volume_scanner"
	ScanTypeReversal       ScanType = "reversal"
	ScanTypeTrendPullback  ScanType = "trend_pullback"
	ScanTypeEarnings       ScanType = "earnings"
	ScanTypeCdrFilter      ScanType = "cdr_filter"
	ScanTypeSectorScan     ScanType = "sector_scan"
	ScanTypeZScoreReversal ScanType = "zscore_reversal"
)

// Strategy is one immutable entry of the catalog. TP/SL percentages are
// fractions of the entry price (0.05 = 5%).
type Strategy struct {
	ScanType     ScanType
	Name         string
	DefaultTPPct float64
	DefaultSLPct float64
	MaxHoldDays  int
}

// Registry is the read-only catalog of the 8 scan strategies, validated
// once at construction.
type Registry struct {
	strategies []Strategy
	byScanType map[ScanType]Strategy
}

var defaultStrategies = []Strategy{
	{ScanType: ScanTypeGapScanner, Name: "Gap Scanner", DefaultTPPct: 0.05, DefaultSLPct: 0.02, MaxHoldDays: 2},
	{ScanType: ScanTypeVolumeScanner, Name: "Volume Surge", DefaultTPPct: 0.06, DefaultSLPct: 0.03, MaxHoldDays: 3},
	{ScanType: ScanTypeReversal, Name: "Oversold Reversal", DefaultTPPct: 0.08, DefaultSLPct: 0.04, MaxHoldDays: 7},
	{ScanType: ScanTypeTrendPullback, Name: "Trend Pullback", DefaultTPPct: 0.07, DefaultSLPct: 0.035, MaxHoldDays: 7},
	{ScanType: ScanTypeEarnings, Name: "Earnings Play", DefaultTPPct: 0.10, DefaultSLPct: 0.05, MaxHoldDays: 5},
	{ScanType: ScanTypeCdrFilter, Name: "CDR Zero-Fee", DefaultTPPct: 0.04, DefaultSLPct: 0.02, MaxHoldDays: 5},
	{ScanType: ScanTypeSectorScan, Name: "Sector Strength", DefaultTPPct: 0.06, DefaultSLPct: 0.03, MaxHoldDays: 10},
	{ScanType: ScanTypeZScoreReversal, Name: "Z-Score Reversion", DefaultTPPct: 0.05, DefaultSLPct: 0.025, MaxHoldDays: 5},
}

// New builds a registry from the given strategies and runs the load-time
// invariant checks.
func New(strategies []Strategy) (*Registry, error) {
	byScanType := map[ScanType]Strategy{}
	for _, s := range strategies {
		if s.DefaultSLPct <= 0 {
			return nil, fmt.Errorf("strategy %s: stop-loss pct must be > 0, got %f", s.ScanType, s.DefaultSLPct)
		}
		if s.DefaultTPPct <= s.DefaultSLPct {
			return nil, fmt.Errorf("strategy %s: take-profit pct (%f) must exceed stop-loss pct (%f)", s.ScanType, s.DefaultTPPct, s.DefaultSLPct)
		}
		if s.MaxHoldDays <= 0 {
			return nil, fmt.Errorf("strategy %s: max hold days must be > 0", s.ScanType)
		}
		if _, ok := byScanType[s.ScanType]; ok {
			return nil, fmt.Errorf("duplicate strategy scan type %s", s.ScanType)
		}
		byScanType[s.ScanType] = s
	}

	return &Registry{
		strategies: strategies,
		byScanType: byScanType,
	}, nil
}

// NewDefault builds the registry with the seeded 8-strategy catalog.
func NewDefault() (*Registry, error) {
	return New(defaultStrategies)
}

// MustDefault is NewDefault for process init paths, where a broken catalog
// is unrecoverable.
func MustDefault() *Registry {
	r, err := NewDefault()
	if err != nil {
		panic(fmt.Errorf("failed to build strategy registry: %w", err))
	}
	return r
}

// Get looks a strategy up by scan type.
func (r *Registry) Get(scanType ScanType) (Strategy, error) {
	s, ok := r.byScanType[scanType]
	if !ok {
		return Strategy{}, fmt.Errorf("strategy not found for scan type %s", scanType)
	}
	return s, nil
}

// All returns every strategy in catalog order.
func (r *Registry) All() []Strategy {
	out := make([]Strategy, len(r.strategies))
	copy(out, r.strategies)
	return out
}
