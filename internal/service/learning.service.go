package service

import (
	"context"
	"daypicks/internal/db/models/postgres/public/model"
	"daypicks/internal/domain"
	"daypicks/internal/logger"
	"daypicks/internal/repository"
	"fmt"
	"sort"
	"time"
)

const (
	// minSampleSize gates recommendations; small bands produce noise, not
	// signal.
	minSampleSize = 5
	// divergenceThreshold is how far observed win rate may drift from the
	// band midpoint before the calibration flags it.
	divergenceThreshold = 0.15
)

type LearningService interface {
	Analyze(ctx context.Context) (*LearningAnalysis, error)
	Recommendations(ctx context.Context) ([]string, error)
	TickerPerformance(ctx context.Context) ([]GroupStats, error)
	// Calibrate recomputes and persists the calibration snapshot the
	// scanner weights future scores with.
	Calibrate(ctx context.Context) (*domain.Calibration, error)
}

type LearningAnalysis struct {
	ResolvedPicks      int           `json:"resolvedPicks"`
	StrategyAnalysis   []GroupStats  `json:"strategyAnalysis"`
	ScoreCalibration   []BandReport  `json:"scoreCalibration"`
	CdrVsNonCdr        []GroupStats  `json:"cdrVsNonCdr"`
	DayOfWeek          []GroupStats  `json:"dayOfWeek"`
	ConfidenceAccuracy []GroupStats  `json:"confidenceAccuracy"`
}

// BandReport is one score band with the divergence of observed from
// expected win rate.
type BandReport struct {
	domain.ScoreBand
	Divergence *float64 `json:"divergence,omitempty"`
}

type learningServiceHandler struct {
	PickRepository        repository.PickRepository
	CalibrationRepository repository.CalibrationRepository
}

func NewLearningService(
	pickRepository repository.PickRepository,
	calibrationRepository repository.CalibrationRepository,
) LearningService {
	return learningServiceHandler{
		PickRepository:        pickRepository,
		CalibrationRepository: calibrationRepository,
	}
}

func (h learningServiceHandler) resolvedPicks() ([]model.Pick, error) {
	picks, err := h.PickRepository.List(repository.PickFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load picks for analysis: %w", err)
	}
	out := []model.Pick{}
	for _, p := range picks {
		if isTerminal(p.Outcome) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (h learningServiceHandler) Analyze(ctx context.Context) (*LearningAnalysis, error) {
	resolved, err := h.resolvedPicks()
	if err != nil {
		return nil, err
	}

	analysis := &LearningAnalysis{
		ResolvedPicks:      len(resolved),
		StrategyAnalysis:   groupBy(resolved, func(p model.Pick) string { return p.Strategy }),
		ScoreCalibration:   bandReports(resolved),
		CdrVsNonCdr:        groupBy(resolved, cdrGroup),
		DayOfWeek:          groupBy(resolved, func(p model.Pick) string { return p.ScanTime.Weekday().String() }),
		ConfidenceAccuracy: groupBy(resolved, func(p model.Pick) string { return p.Confidence.String() }),
	}

	return analysis, nil
}

func (h learningServiceHandler) Recommendations(ctx context.Context) ([]string, error) {
	resolved, err := h.resolvedPicks()
	if err != nil {
		return nil, err
	}

	recs := []string{}

	for _, g := range groupBy(resolved, func(p model.Pick) string { return p.Strategy }) {
		if g.Total < minSampleSize || g.WinRate == nil {
			continue
		}
		if *g.WinRate < 0.35 {
			recs = append(recs, fmt.Sprintf(
				"strategy %s is winning only %.0f%% of %d resolved picks; consider pausing it",
				g.Group, *g.WinRate*100, g.Total))
		}
		if *g.WinRate > 0.65 {
			recs = append(recs, fmt.Sprintf(
				"strategy %s is winning %.0f%% of %d resolved picks; consider sizing it up",
				g.Group, *g.WinRate*100, g.Total))
		}
	}

	for _, b := range bandReports(resolved) {
		if b.Total < minSampleSize || b.Divergence == nil {
			continue
		}
		if *b.Divergence > divergenceThreshold {
			recs = append(recs, fmt.Sprintf(
				"score band %d-%d is outperforming its expected win rate (%.0f%% observed vs %.0f%% expected)",
				b.Min, b.Max, b.WinRate*100, b.ExpectedWinRate*100))
		}
		if *b.Divergence < -divergenceThreshold {
			recs = append(recs, fmt.Sprintf(
				"score band %d-%d is underperforming its expected win rate (%.0f%% observed vs %.0f%% expected)",
				b.Min, b.Max, b.WinRate*100, b.ExpectedWinRate*100))
		}
	}

	cdrGroups := groupBy(resolved, cdrGroup)
	var cdrStats, nonCdrStats *GroupStats
	for i := range cdrGroups {
		switch cdrGroups[i].Group {
		case "cdr":
			cdrStats = &cdrGroups[i]
		case "non-cdr":
			nonCdrStats = &cdrGroups[i]
		}
	}
	if cdrStats != nil && nonCdrStats != nil &&
		cdrStats.Total >= minSampleSize && nonCdrStats.Total >= minSampleSize &&
		cdrStats.WinRate != nil && nonCdrStats.WinRate != nil &&
		*cdrStats.WinRate > *nonCdrStats.WinRate+divergenceThreshold {
		recs = append(recs, fmt.Sprintf(
			"CDR picks are winning %.0f%% vs %.0f%% for non-CDR; the fee exemption is compounding the edge",
			*cdrStats.WinRate*100, *nonCdrStats.WinRate*100))
	}

	if len(recs) == 0 {
		recs = append(recs, "not enough resolved picks to recommend changes yet")
	}

	return recs, nil
}

func (h learningServiceHandler) TickerPerformance(ctx context.Context) ([]GroupStats, error) {
	resolved, err := h.resolvedPicks()
	if err != nil {
		return nil, err
	}
	return groupBy(resolved, func(p model.Pick) string { return p.Ticker }), nil
}

func (h learningServiceHandler) Calibrate(ctx context.Context) (*domain.Calibration, error) {
	log := logger.FromContext(ctx)

	resolved, err := h.resolvedPicks()
	if err != nil {
		return nil, err
	}

	calibration := domain.Calibration{
		GeneratedAt:         time.Now().UTC(),
		ResolvedPicks:       len(resolved),
		Bands:               computeBands(resolved),
		StrategyAdjustments: map[string]float64{},
	}

	for _, g := range groupBy(resolved, func(p model.Pick) string { return p.Strategy }) {
		if g.Total < minSampleSize || g.WinRate == nil {
			continue
		}
		calibration.StrategyAdjustments[g.Group] = strategyAdjustment(*g.WinRate)
	}

	if err := h.CalibrationRepository.Replace(calibration); err != nil {
		return nil, fmt.Errorf("failed to persist calibration: %w", err)
	}

	log.Infof("calibrated %d strategies from %d resolved picks",
		len(calibration.StrategyAdjustments), calibration.ResolvedPicks)

	return &calibration, nil
}

// strategyAdjustment maps a win rate to the score multiplier, centered at
// neutral for a 50% win rate and clamped to [0.5, 1.5].
func strategyAdjustment(winRate float64) float64 {
	adj := 0.5 + winRate
	if adj < 0.5 {
		return 0.5
	}
	if adj > 1.5 {
		return 1.5
	}
	return adj
}

// computeBands partitions resolved picks into the five fixed score bands.
// Every resolved pick lands in exactly one band.
func computeBands(resolved []model.Pick) []domain.ScoreBand {
	bands := make([]domain.ScoreBand, domain.NumScoreBands)
	for i := range bands {
		min, max := domain.BandBounds(i)
		bands[i].Min = min
		bands[i].Max = max
		mid := float64(min+max) / 2
		bands[i].ExpectedWinRate = mid / 100
	}

	for _, p := range resolved {
		i := domain.BandIndex(p.Score)
		bands[i].Total++
		switch p.Outcome {
		case model.PickOutcome_Winner:
			bands[i].Winners++
		case model.PickOutcome_Loser:
			bands[i].Losers++
		case model.PickOutcome_Expired:
			bands[i].Expired++
		}
	}

	for i := range bands {
		if wr := winRate(bands[i].Winners, bands[i].Losers); wr != nil {
			bands[i].WinRate = *wr
		}
	}

	return bands
}

func bandReports(resolved []model.Pick) []BandReport {
	bands := computeBands(resolved)
	out := make([]BandReport, len(bands))
	for i, b := range bands {
		out[i] = BandReport{ScoreBand: b}
		if b.Winners+b.Losers > 0 {
			d := b.WinRate - b.ExpectedWinRate
			out[i].Divergence = &d
		}
	}
	return out
}

func cdrGroup(p model.Pick) string {
	if p.IsCdr {
		return "cdr"
	}
	return "non-cdr"
}

func groupBy(picks []model.Pick, key func(model.Pick) string) []GroupStats {
	grouped := map[string][]model.Pick{}
	for _, p := range picks {
		k := key(p)
		grouped[k] = append(grouped[k], p)
	}

	keys := make([]string, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]GroupStats, 0, len(keys))
	for _, k := range keys {
		out = append(out, computeGroupStats(k, grouped[k]))
	}
	return out
}
