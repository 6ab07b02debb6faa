// Package fees prices raw market moves into net P&L under an injectable
// broker commission schedule. CDR instruments trade commission-free.
package fees

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInsufficientData is returned for zero-denominator cases instead of
// letting the math blow up.
var ErrInsufficientData = errors.New("insufficient data")

// Schedule is a broker's published commission table: a per-share rate with
// per-order minimum and maximum caps.
type Schedule struct {
	PerShare decimal.Decimal `json:"perShare"`
	MinFee   decimal.Decimal `json:"minFee"`
	MaxFee   decimal.Decimal `json:"maxFee"`
}

// DefaultSchedule mirrors the discount-broker table the scanner was tuned
// against: $0.0049/share, $4.95 minimum, $9.95 cap per order.
func DefaultSchedule() Schedule {
	return Schedule{
		PerShare: decimal.NewFromFloat(0.0049),
		MinFee:   decimal.NewFromFloat(4.95),
		MaxFee:   decimal.NewFromFloat(9.95),
	}
}

// Validate runs the load-time sanity checks on the schedule.
func (s Schedule) Validate() error {
	if s.PerShare.IsNegative() {
		return fmt.Errorf("per-share rate cannot be negative: %s", s.PerShare)
	}
	if s.MinFee.IsNegative() {
		return fmt.Errorf("minimum fee cannot be negative: %s", s.MinFee)
	}
	if s.MaxFee.LessThan(s.MinFee) {
		return fmt.Errorf("maximum fee %s below minimum fee %s", s.MaxFee, s.MinFee)
	}
	return nil
}

// Commission returns the fee for a single order. CDR orders are exempt.
func (s Schedule) Commission(shares int, price float64, isCDR bool) decimal.Decimal {
	if isCDR || shares <= 0 || price <= 0 {
		return decimal.Zero
	}
	fee := s.PerShare.Mul(decimal.NewFromInt(int64(shares)))
	if fee.LessThan(s.MinFee) {
		fee = s.MinFee
	}
	if fee.GreaterThan(s.MaxFee) {
		fee = s.MaxFee
	}
	return fee
}

// RoundTripFees is the total commission for entering and exiting the
// position.
func (s Schedule) RoundTripFees(shares int, entry, exit float64, isCDR bool) decimal.Decimal {
	return s.Commission(shares, entry, isCDR).Add(s.Commission(shares, exit, isCDR))
}

// NetProfitIfTP is the profit after fees when the position exits at the
// take-profit price.
func (s Schedule) NetProfitIfTP(entry, tp float64, shares int, isCDR bool) float64 {
	gross := (tp - entry) * float64(shares)
	return gross - s.RoundTripFees(shares, entry, tp, isCDR).InexactFloat64()
}

// NetLossIfSL is the loss after fees (a positive magnitude) when the
// position exits at the stop-loss price.
func (s Schedule) NetLossIfSL(entry, sl float64, shares int, isCDR bool) float64 {
	gross := (entry - sl) * float64(shares)
	return gross + s.RoundTripFees(shares, entry, sl, isCDR).InexactFloat64()
}

// FeeDragPct is the entry commission as a fraction of invested capital.
// Always exactly zero for CDR orders.
func (s Schedule) FeeDragPct(shares int, entry float64, isCDR bool) (float64, error) {
	invested := float64(shares) * entry
	if invested == 0 {
		return 0, ErrInsufficientData
	}
	return s.Commission(shares, entry, isCDR).InexactFloat64() / invested, nil
}

// BreakevenPct is the upward price move, as a fraction of entry, needed to
// cover the round-trip fees. Always exactly zero for CDR orders.
func (s Schedule) BreakevenPct(shares int, entry float64, isCDR bool) (float64, error) {
	invested := float64(shares) * entry
	if invested == 0 {
		return 0, ErrInsufficientData
	}
	return s.RoundTripFees(shares, entry, entry, isCDR).InexactFloat64() / invested, nil
}
