package repository

import (
	"database/sql"
	"daypicks/internal/db/models/postgres/public/model"
	"daypicks/internal/db/models/postgres/public/table"
	"fmt"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type WatchlistRepository interface {
	List() ([]model.WatchlistTicker, error)
	ListCdr() ([]model.WatchlistTicker, error)
	Upsert(tx *sql.Tx, tickers []model.WatchlistTicker) error
}

type watchlistRepositoryHandler struct {
	Db *sql.DB
}

func NewWatchlistRepository(db *sql.DB) WatchlistRepository {
	return watchlistRepositoryHandler{Db: db}
}

func (h watchlistRepositoryHandler) List() ([]model.WatchlistTicker, error) {
	query := table.WatchlistTicker.
		SELECT(table.WatchlistTicker.AllColumns).
		ORDER_BY(table.WatchlistTicker.Ticker.ASC())

	out := []model.WatchlistTicker{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlist: %w", err)
	}

	return out, nil
}

func (h watchlistRepositoryHandler) ListCdr() ([]model.WatchlistTicker, error) {
	query := table.WatchlistTicker.
		SELECT(table.WatchlistTicker.AllColumns).
		WHERE(table.WatchlistTicker.IsCdr.IS_TRUE()).
		ORDER_BY(table.WatchlistTicker.Ticker.ASC())

	out := []model.WatchlistTicker{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list cdr watchlist: %w", err)
	}

	return out, nil
}

func (h watchlistRepositoryHandler) Upsert(tx *sql.Tx, tickers []model.WatchlistTicker) error {
	if len(tickers) == 0 {
		return nil
	}

	query := table.WatchlistTicker.
		INSERT(table.WatchlistTicker.AllColumns).
		MODELS(tickers).
		ON_CONFLICT(table.WatchlistTicker.Ticker).
		DO_UPDATE(postgres.SET(
			table.WatchlistTicker.CompanyName.SET(table.WatchlistTicker.EXCLUDED.CompanyName),
			table.WatchlistTicker.Sector.SET(table.WatchlistTicker.EXCLUDED.Sector),
			table.WatchlistTicker.IsCdr.SET(table.WatchlistTicker.EXCLUDED.IsCdr),
		))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to upsert watchlist tickers: %w", err)
	}

	return nil
}
