package repository

import (
	"context"
	"daypicks/internal/calculator"
	"daypicks/internal/domain"
	"daypicks/internal/logger"
	"fmt"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
)

// MarketDataRepository is the external price/volume/technicals provider.
// Both calls may fail per-ticker; callers treat that as a skippable,
// non-fatal condition.
type MarketDataRepository interface {
	GetSnapshot(ctx context.Context, ticker string) (*domain.Snapshot, error)
	GetLatestPrice(ctx context.Context, ticker string) (float64, error)
}

const historyDays = 120

func NewMarketDataRepository(apiKey, apiSecret, endpoint string) MarketDataRepository {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   endpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return &marketDataRepositoryHandler{
		MdClient: mdClient,
	}
}

type marketDataRepositoryHandler struct {
	MdClient *marketdata.Client
}

func (h marketDataRepositoryHandler) GetLatestPrice(ctx context.Context, ticker string) (float64, error) {
	results, err := h.MdClient.GetLatestQuotes([]string{ticker}, marketdata.GetLatestQuoteRequest{})
	if err != nil {
		return 0, fmt.Errorf("failed to get latest quote for %s: %w", ticker, err)
	}
	quote, ok := results[ticker]
	if !ok || quote.BidPrice == 0 {
		return 0, fmt.Errorf("failed to get price for %s: got 0 price", ticker)
	}

	return quote.BidPrice, nil
}

func (h marketDataRepositoryHandler) GetSnapshot(ctx context.Context, ticker string) (*domain.Snapshot, error) {
	log := logger.FromContext(ctx)

	closes, volumes, err := h.dailyHistory(ticker)
	if err != nil {
		return nil, err
	}
	if len(closes) < 51 {
		return nil, fmt.Errorf("not enough history for %s: %d bars", ticker, len(closes))
	}

	price, err := h.GetLatestPrice(ctx, ticker)
	if err != nil {
		// stale but usable; the daily close still prices the scan
		log.Warnf("falling back to last close for %s: %s", ticker, err.Error())
		price = closes[len(closes)-1]
	}

	snap := &domain.Snapshot{
		Ticker:    ticker,
		Price:     price,
		PrevClose: closes[len(closes)-2],
		Volume:    volumes[len(volumes)-1],
		AsOf:      time.Now().UTC(),
	}

	if avgVol, err := calculator.MovingAverage(volumes[:len(volumes)-1], 20); err == nil {
		snap.AvgVolume20d = avgVol
	}
	if rsi, err := calculator.RSI(closes, 14); err == nil {
		snap.RSI14 = rsi
	} else {
		snap.RSI14 = 50
	}
	if ma, err := calculator.MovingAverage(closes, 20); err == nil {
		snap.MA20 = ma
	}
	if ma, err := calculator.MovingAverage(closes, 50); err == nil {
		snap.MA50 = ma
	}
	if sd, err := calculator.Stdev(closes, 20); err == nil {
		snap.Stdev20 = sd
	}
	if ret, err := calculator.PercentReturn(closes, 5); err == nil {
		snap.Return5dPct = ret
	}

	if earnings := h.earningsDate(ticker); earnings != nil {
		snap.EarningsDate = earnings
	}

	return snap, nil
}

func (h marketDataRepositoryHandler) dailyHistory(ticker string) ([]float64, []float64, error) {
	start := time.Now().AddDate(0, 0, -historyDays)
	now := time.Now()
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   ticker,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	closes := []float64{}
	volumes := []float64{}
	for iter.Next() {
		closes = append(closes, iter.Bar().AdjClose.InexactFloat64())
		volumes = append(volumes, float64(iter.Bar().Volume))
	}
	if err := iter.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to get history for %s: %w", ticker, err)
	}

	return closes, volumes, nil
}

// earningsDate returns the next scheduled earnings event, nil when the
// provider has none. Failures here never fail the snapshot.
func (h marketDataRepositoryHandler) earningsDate(ticker string) *time.Time {
	q, err := equity.Get(ticker)
	if err != nil || q == nil {
		return nil
	}
	if q.EarningsTimestamp == 0 {
		return nil
	}
	t := time.Unix(int64(q.EarningsTimestamp), 0).UTC()
	return &t
}
