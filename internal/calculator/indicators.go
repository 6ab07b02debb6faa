// Package calculator computes the technical indicators that back scan
// snapshots from daily close/volume history.
package calculator

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// MovingAverage is the simple moving average of the last window closes.
func MovingAverage(closes []float64, window int) (float64, error) {
	if len(closes) < window || window <= 0 {
		return 0, fmt.Errorf("need %d closes for moving average, have %d", window, len(closes))
	}
	return stats.Mean(closes[len(closes)-window:])
}

// Stdev is the sample standard deviation of the last window closes.
func Stdev(closes []float64, window int) (float64, error) {
	if len(closes) < window || window < 2 {
		return 0, fmt.Errorf("need %d closes for stdev, have %d", window, len(closes))
	}
	return stats.StandardDeviationSample(closes[len(closes)-window:])
}

// RSI is Wilder's relative strength index over the trailing period.
func RSI(closes []float64, period int) (float64, error) {
	if len(closes) < period+1 {
		return 0, fmt.Errorf("need %d closes for RSI(%d), have %d", period+1, period, len(closes))
	}

	var avgGain, avgLoss float64
	start := len(closes) - period - 1
	for i := start + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	if avgLoss == 0 {
		return 100, nil
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs), nil
}

// PercentReturn is the percent change over the trailing days closes.
func PercentReturn(closes []float64, days int) (float64, error) {
	if len(closes) < days+1 {
		return 0, fmt.Errorf("need %d closes for %d-day return, have %d", days+1, days, len(closes))
	}
	old := closes[len(closes)-days-1]
	if old == 0 {
		return 0, fmt.Errorf("zero reference close for %d-day return", days)
	}
	return (closes[len(closes)-1] - old) / old * 100, nil
}
