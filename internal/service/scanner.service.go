package service

import (
	"context"
	"database/sql"
	"daypicks/internal/db/models/postgres/public/model"
	"daypicks/internal/domain"
	"daypicks/internal/logger"
	"daypicks/internal/registry"
	"daypicks/internal/repository"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ScannerService interface {
	Scan(ctx context.Context, input ScanInput) (*ScanResult, error)
}

type ScanInput struct {
	// Tickers limits the scan; empty means the whole watchlist.
	Tickers []string
	// Strategies limits the scan; empty means all 8.
	Strategies []registry.ScanType
	DryRun     bool
	// Top truncates the returned picks after sorting; 0 means no cut.
	Top int
}

type ScanResult struct {
	Scanned  int          `json:"scanned"`
	Saved    int          `json:"saved"`
	Failed   []string     `json:"failed,omitempty"`
	ScanTime time.Time    `json:"scanTime"`
	Picks    []model.Pick `json:"picks"`
}

type scannerServiceHandler struct {
	Db                    *sql.DB
	WatchlistRepository   repository.WatchlistRepository
	PickRepository        repository.PickRepository
	CalibrationRepository repository.CalibrationRepository
	MarketDataRepository  repository.MarketDataRepository
	Registry              *registry.Registry
	NumWorkers            int
	FetchTimeout          time.Duration
}

func NewScannerService(
	db *sql.DB,
	watchlistRepository repository.WatchlistRepository,
	pickRepository repository.PickRepository,
	calibrationRepository repository.CalibrationRepository,
	marketDataRepository repository.MarketDataRepository,
	strategyRegistry *registry.Registry,
) ScannerService {
	return scannerServiceHandler{
		Db:                    db,
		WatchlistRepository:   watchlistRepository,
		PickRepository:        pickRepository,
		CalibrationRepository: calibrationRepository,
		MarketDataRepository:  marketDataRepository,
		Registry:              strategyRegistry,
		NumWorkers:            8,
		FetchTimeout:          10 * time.Second,
	}
}

func (h scannerServiceHandler) Scan(ctx context.Context, input ScanInput) (*ScanResult, error) {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	watchlist, err := h.WatchlistRepository.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load watchlist: %w", err)
	}
	watchlist = filterWatchlist(watchlist, input.Tickers)
	if len(watchlist) == 0 {
		return nil, fmt.Errorf("no watchlist tickers matched the scan request")
	}

	strategies, err := h.selectStrategies(input.Strategies)
	if err != nil {
		return nil, err
	}

	calibration, err := h.CalibrationRepository.Latest()
	if err != nil {
		// scan with neutral weights rather than fail the batch
		log.Warnf("failed to load calibration, scanning unweighted: %s", err.Error())
		calibration = nil
	}

	snapshots, failed := h.fetchSnapshots(ctx, watchlist)

	sectorRank, numSectors := buildSectorRanks(snapshots, watchlist)
	sc := scanContext{sectorRank: sectorRank, numSectors: numSectors, now: now}

	result := &ScanResult{
		Scanned:  len(snapshots),
		Failed:   failed,
		ScanTime: now,
		Picks:    []model.Pick{},
	}

	scanDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for _, wt := range watchlist {
		snap, ok := snapshots[wt.Ticker]
		if !ok {
			continue
		}
		for _, st := range strategies {
			strength, ok := evaluateSignal(st, snap, wt, sc)
			if !ok {
				continue
			}

			pick, err := buildPick(st, snap, wt, strength, calibration, scanDate, now)
			if err != nil {
				log.Warnf("dropping candidate %s/%s: %s", wt.Ticker, st.ScanType, err.Error())
				continue
			}

			if input.DryRun {
				result.Picks = append(result.Picks, *pick)
				continue
			}

			inserted, created, err := h.PickRepository.CreateIfAbsent(nil, *pick)
			if err != nil {
				log.Warnf("failed to persist pick %s/%s: %s", wt.Ticker, st.ScanType, err.Error())
				continue
			}
			if !created {
				// a pick for this (ticker, strategy, scan date) already exists
				continue
			}
			result.Saved++
			result.Picks = append(result.Picks, *inserted)
		}
	}

	sort.Slice(result.Picks, func(i, j int) bool {
		return RiskRewardRatio(result.Picks[i]) > RiskRewardRatio(result.Picks[j])
	})
	if input.Top > 0 && len(result.Picks) > input.Top {
		result.Picks = result.Picks[:input.Top]
	}

	return result, nil
}

func (h scannerServiceHandler) selectStrategies(scanTypes []registry.ScanType) ([]registry.Strategy, error) {
	if len(scanTypes) == 0 {
		return h.Registry.All(), nil
	}
	out := []registry.Strategy{}
	for _, st := range scanTypes {
		s, err := h.Registry.Get(st)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

type snapshotResult struct {
	ticker string
	snap   *domain.Snapshot
	err    error
}

// fetchSnapshots pulls one snapshot per ticker under a bounded worker
// pool. A failed or timed-out fetch drops that ticker from the scan and
// nothing else.
func (h scannerServiceHandler) fetchSnapshots(ctx context.Context, watchlist []model.WatchlistTicker) (map[string]*domain.Snapshot, []string) {
	log := logger.FromContext(ctx)

	numWorkers := h.NumWorkers
	if numWorkers <= 0 {
		numWorkers = 8
	}

	inputCh := make(chan string, len(watchlist))
	resultCh := make(chan snapshotResult, len(watchlist))

	var wg sync.WaitGroup
	for _, wt := range watchlist {
		wg.Add(1)
		inputCh <- wt.Ticker
	}
	close(inputCh)

	for i := 0; i < numWorkers; i++ {
		go func() {
			for ticker := range inputCh {
				snap, err := h.fetchWithTimeout(ctx, ticker)
				resultCh <- snapshotResult{ticker: ticker, snap: snap, err: err}
				wg.Done()
			}
		}()
	}

	wg.Wait()
	close(resultCh)

	snapshots := map[string]*domain.Snapshot{}
	failed := []string{}
	for r := range resultCh {
		if r.err != nil {
			log.Warnf("skipping %s: %s", r.ticker, r.err.Error())
			failed = append(failed, r.ticker)
			continue
		}
		snapshots[r.ticker] = r.snap
	}
	sort.Strings(failed)

	return snapshots, failed
}

// fetchWithTimeout guards against a stuck provider call holding up the
// whole batch.
func (h scannerServiceHandler) fetchWithTimeout(ctx context.Context, ticker string) (*domain.Snapshot, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, h.FetchTimeout)
	defer cancel()

	type fetchOut struct {
		snap *domain.Snapshot
		err  error
	}
	ch := make(chan fetchOut, 1)
	go func() {
		snap, err := h.MarketDataRepository.GetSnapshot(fetchCtx, ticker)
		ch <- fetchOut{snap: snap, err: err}
	}()

	select {
	case <-fetchCtx.Done():
		return nil, fmt.Errorf("snapshot fetch timed out for %s: %w", ticker, fetchCtx.Err())
	case out := <-ch:
		return out.snap, out.err
	}
}

func buildPick(
	st registry.Strategy,
	snap *domain.Snapshot,
	wt model.WatchlistTicker,
	strength float64,
	calibration *domain.Calibration,
	scanDate time.Time,
	now time.Time,
) (*model.Pick, error) {
	entry := snap.Price
	if entry <= 0 {
		return nil, fmt.Errorf("non-positive entry price %f", entry)
	}
	sl := entry * (1 - st.DefaultSLPct)
	tp := entry * (1 + st.DefaultTPPct)
	if !(sl < entry && entry < tp) {
		return nil, fmt.Errorf("invalid price band sl=%f entry=%f tp=%f", sl, entry, tp)
	}

	score := normalizeScore(st, strength, calibration)

	return &model.Pick{
		PickID:          uuid.New(),
		Ticker:          wt.Ticker,
		Strategy:        string(st.ScanType),
		ScanDate:        scanDate,
		EntryPrice:      decimal.NewFromFloat(entry).Round(4),
		StopLossPrice:   decimal.NewFromFloat(sl).Round(4),
		TakeProfitPrice: decimal.NewFromFloat(tp).Round(4),
		Score:           score,
		Confidence:      confidenceForScore(score),
		IsCdr:           wt.IsCdr,
		ScanTime:        now,
		Outcome:         model.PickOutcome_Pending,
		CreatedAt:       now,
	}, nil
}

// RiskRewardRatio is reward distance over risk distance for a pick.
func RiskRewardRatio(p model.Pick) float64 {
	entry := p.EntryPrice.InexactFloat64()
	risk := entry - p.StopLossPrice.InexactFloat64()
	if risk <= 0 {
		return 0
	}
	return (p.TakeProfitPrice.InexactFloat64() - entry) / risk
}

func filterWatchlist(watchlist []model.WatchlistTicker, tickers []string) []model.WatchlistTicker {
	if len(tickers) == 0 {
		return watchlist
	}
	want := map[string]bool{}
	for _, t := range tickers {
		want[strings.ToUpper(strings.TrimSpace(t))] = true
	}
	out := []model.WatchlistTicker{}
	for _, wt := range watchlist {
		if want[strings.ToUpper(wt.Ticker)] {
			out = append(out, wt)
		}
	}
	return out
}
