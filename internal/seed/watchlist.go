// Package seed loads the curated watchlist from CSV into the database.
package seed

import (
	"database/sql"
	"daypicks/internal/db/models/postgres/public/model"
	"daypicks/internal/repository"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
)

type watchlistRow struct {
	Ticker      string `csv:"ticker"`
	CompanyName string `csv:"company_name"`
	Sector      string `csv:"sector"`
	IsCdr       bool   `csv:"is_cdr"`
}

// ReadWatchlistCsv parses watchlist rows from CSV. Tickers are
// uppercased; blank tickers are rejected.
func ReadWatchlistCsv(r io.Reader) ([]model.WatchlistTicker, error) {
	rows := []watchlistRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse watchlist csv: %w", err)
	}

	now := time.Now().UTC()
	out := make([]model.WatchlistTicker, 0, len(rows))
	for i, row := range rows {
		ticker := strings.ToUpper(strings.TrimSpace(row.Ticker))
		if ticker == "" {
			return nil, fmt.Errorf("watchlist csv row %d has an empty ticker", i+1)
		}
		out = append(out, model.WatchlistTicker{
			Ticker:      ticker,
			CompanyName: strings.TrimSpace(row.CompanyName),
			Sector:      strings.TrimSpace(row.Sector),
			IsCdr:       row.IsCdr,
			CreatedAt:   now,
		})
	}

	return out, nil
}

// SeedWatchlist upserts the CSV file's tickers in one transaction.
func SeedWatchlist(db *sql.DB, watchlistRepository repository.WatchlistRepository, csvPath string) (int, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open watchlist csv: %w", err)
	}
	defer f.Close()

	tickers, err := ReadWatchlistCsv(f)
	if err != nil {
		return 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := watchlistRepository.Upsert(tx, tickers); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit watchlist seed: %w", err)
	}

	return len(tickers), nil
}
