package domain

import "time"

// Snapshot is a point-in-time view of a ticker's price, volume and
// technical indicators. It is assembled once per ticker per scan and
// shared by every strategy evaluator.
type Snapshot struct {
	Ticker       string
	Price        float64
	PrevClose    float64
	Volume       float64
	AvgVolume20d float64
	RSI14        float64
	MA20         float64
	MA50         float64
	Stdev20      float64
	Return5dPct  float64
	EarningsDate *time.Time
	AsOf         time.Time
}

// GapPct is the overnight gap versus the prior close, in percent.
func (s Snapshot) GapPct() float64 {
	if s.PrevClose == 0 {
		return 0
	}
	return (s.Price - s.PrevClose) / s.PrevClose * 100
}

// VolumeRatio is current volume over the 20-day average volume.
func (s Snapshot) VolumeRatio() float64 {
	if s.AvgVolume20d == 0 {
		return 0
	}
	return s.Volume / s.AvgVolume20d
}

// ZScore is the price's distance from the 20-day moving average in
// standard deviations.
func (s Snapshot) ZScore() float64 {
	if s.Stdev20 == 0 {
		return 0
	}
	return (s.Price - s.MA20) / s.Stdev20
}
