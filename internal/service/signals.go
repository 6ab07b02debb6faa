package service

import (
	"daypicks/internal/db/models/postgres/public/model"
	"daypicks/internal/domain"
	"daypicks/internal/registry"
	"math"
	"sort"
	"time"
)

// Signal thresholds. These gate whether a strategy fires at all; the
// strength above the gate drives the score.
const (
	gapThresholdPct      = 2.0
	volumeRatioThreshold = 1.5
	oversoldRSI          = 35.0
	pullbackBandPct      = 0.03
	earningsLookaheadDays = 7
	zscoreThreshold      = 2.0

	cdrScoreBonus = 10.0
)

// scanContext carries the cross-sectional data evaluators cannot derive
// from a single snapshot.
type scanContext struct {
	sectorRank map[string]int // 1 = strongest
	numSectors int
	now        time.Time
}

// buildSectorRanks ranks sectors by average 5-day return across the
// snapshots gathered this scan.
func buildSectorRanks(snapshots map[string]*domain.Snapshot, watchlist []model.WatchlistTicker) (map[string]int, int) {
	returnsBySector := map[string][]float64{}
	for _, wt := range watchlist {
		snap, ok := snapshots[wt.Ticker]
		if !ok {
			continue
		}
		returnsBySector[wt.Sector] = append(returnsBySector[wt.Sector], snap.Return5dPct)
	}

	type sectorAvg struct {
		sector string
		avg    float64
	}
	avgs := []sectorAvg{}
	for sector, rets := range returnsBySector {
		sum := 0.0
		for _, r := range rets {
			sum += r
		}
		avgs = append(avgs, sectorAvg{sector: sector, avg: sum / float64(len(rets))})
	}
	sort.Slice(avgs, func(i, j int) bool { return avgs[i].avg > avgs[j].avg })

	ranks := map[string]int{}
	for i, a := range avgs {
		ranks[a.sector] = i + 1
	}
	return ranks, len(avgs)
}

// evaluateSignal runs one strategy's signal function against a snapshot.
// It returns a raw strength in [0,1], or false when there is no signal.
func evaluateSignal(st registry.Strategy, snap *domain.Snapshot, wt model.WatchlistTicker, sc scanContext) (float64, bool) {
	switch st.ScanType {
	case registry.ScanTypeGapScanner:
		gap := math.Abs(snap.GapPct())
		if gap < gapThresholdPct {
			return 0, false
		}
		return clamp01(gap / 6.0), true

	case registry.ScanTypeVolumeScanner:
		ratio := snap.VolumeRatio()
		if ratio < volumeRatioThreshold {
			return 0, false
		}
		return clamp01(ratio / 4.0), true

	case registry.ScanTypeReversal:
		// oversold plus a confirming bounce off the prior close
		if snap.RSI14 > oversoldRSI || snap.Price <= snap.PrevClose {
			return 0, false
		}
		return clamp01((oversoldRSI-snap.RSI14)/oversoldRSI + 0.3), true

	case registry.ScanTypeTrendPullback:
		uptrend := snap.MA20 > snap.MA50 && snap.Price > snap.MA50
		if !uptrend || snap.MA20 == 0 {
			return 0, false
		}
		dist := (snap.Price - snap.MA20) / snap.MA20
		if dist < 0 || dist > pullbackBandPct {
			return 0, false
		}
		return clamp01(1 - dist/pullbackBandPct), true

	case registry.ScanTypeEarnings:
		if snap.EarningsDate == nil {
			return 0, false
		}
		until := snap.EarningsDate.Sub(sc.now)
		if until < 0 || until > earningsLookaheadDays*24*time.Hour {
			return 0, false
		}
		days := until.Hours() / 24
		return clamp01(1 - days/earningsLookaheadDays), true

	case registry.ScanTypeCdrFilter:
		if !wt.IsCdr {
			return 0, false
		}
		strength := 0.5
		if snap.Price > snap.PrevClose {
			strength += 0.2
		}
		if snap.VolumeRatio() > 1 {
			strength += 0.2
		}
		return clamp01(strength), true

	case registry.ScanTypeSectorScan:
		if sc.numSectors < 2 {
			return 0, false
		}
		rank, ok := sc.sectorRank[wt.Sector]
		if !ok || rank > sc.numSectors/2 {
			return 0, false
		}
		return clamp01(1 - float64(rank-1)/float64(sc.numSectors)), true

	case registry.ScanTypeZScoreReversal:
		z := math.Abs(snap.ZScore())
		if z < zscoreThreshold {
			return 0, false
		}
		return clamp01((z-zscoreThreshold)/2 + 0.5), true
	}

	return 0, false
}

// normalizeScore turns a raw strength into a 0-100 score, applying the
// learning engine's per-strategy adjustment and the CDR fee-avoidance
// bonus.
func normalizeScore(st registry.Strategy, strength float64, calibration *domain.Calibration) float64 {
	score := strength * 100 * calibration.AdjustmentFor(string(st.ScanType))
	if st.ScanType == registry.ScanTypeCdrFilter {
		score += cdrScoreBonus
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// confidenceForScore buckets a score: >=80 high, >=50 medium, else low.
func confidenceForScore(score float64) model.PickConfidence {
	switch {
	case score >= 80:
		return model.PickConfidence_High
	case score >= 50:
		return model.PickConfidence_Medium
	}
	return model.PickConfidence_Low
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
