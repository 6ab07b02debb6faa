package repository

import (
	"database/sql"
	"daypicks/internal/db/models/postgres/public/model"
	"daypicks/internal/db/models/postgres/public/table"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PickFilter narrows List results. Nil fields are ignored.
type PickFilter struct {
	Ticker     *string
	Strategy   *string
	Confidence *model.PickConfidence
	CdrOnly    bool
	Since      *time.Time
}

type PickRepository interface {
	// CreateIfAbsent inserts the pick unless one already exists for the
	// same (ticker, strategy, scan_date). The bool reports whether a row
	// was actually inserted.
	CreateIfAbsent(tx *sql.Tx, p model.Pick) (*model.Pick, bool, error)
	Get(pickID uuid.UUID) (*model.Pick, error)
	List(filter PickFilter) ([]model.Pick, error)
	ListPending(since time.Time) ([]model.Pick, error)
	// UpdateOutcome transitions a pick out of pending with compare-and-set
	// semantics: it only succeeds while the row is still pending.
	UpdateOutcome(pickID uuid.UUID, outcome model.PickOutcome, exitPrice decimal.Decimal, resolvedAt time.Time) (bool, error)
}

type pickRepositoryHandler struct {
	Db *sql.DB
}

func NewPickRepository(db *sql.DB) PickRepository {
	return pickRepositoryHandler{Db: db}
}

func (h pickRepositoryHandler) CreateIfAbsent(tx *sql.Tx, p model.Pick) (*model.Pick, bool, error) {
	query := table.Pick.
		INSERT(table.Pick.MutableColumns).
		MODEL(p).
		ON_CONFLICT(table.Pick.Ticker, table.Pick.Strategy, table.Pick.ScanDate).
		DO_NOTHING().
		RETURNING(table.Pick.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Pick{}
	err := query.Query(db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		// conflict with an existing pick for the same scan date
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert pick %s/%s: %w", p.Ticker, p.Strategy, err)
	}

	return &out, true, nil
}

func (h pickRepositoryHandler) Get(pickID uuid.UUID) (*model.Pick, error) {
	query := table.Pick.
		SELECT(table.Pick.AllColumns).
		WHERE(table.Pick.PickID.EQ(postgres.UUID(pickID)))

	out := model.Pick{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get pick %s: %w", pickID.String(), err)
	}

	return &out, nil
}

func (h pickRepositoryHandler) List(filter PickFilter) ([]model.Pick, error) {
	conditions := []postgres.BoolExpression{postgres.Bool(true)}
	if filter.Ticker != nil {
		conditions = append(conditions, table.Pick.Ticker.EQ(postgres.String(*filter.Ticker)))
	}
	if filter.Strategy != nil {
		conditions = append(conditions, table.Pick.Strategy.EQ(postgres.String(*filter.Strategy)))
	}
	if filter.Confidence != nil {
		conditions = append(conditions, table.Pick.Confidence.EQ(postgres.String(filter.Confidence.String())))
	}
	if filter.CdrOnly {
		conditions = append(conditions, table.Pick.IsCdr.IS_TRUE())
	}
	if filter.Since != nil {
		conditions = append(conditions, table.Pick.ScanTime.GT_EQ(postgres.TimestampzT(*filter.Since)))
	}

	query := table.Pick.
		SELECT(table.Pick.AllColumns).
		WHERE(postgres.AND(conditions...)).
		ORDER_BY(table.Pick.ScanTime.DESC())

	out := []model.Pick{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list picks: %w", err)
	}

	return out, nil
}

func (h pickRepositoryHandler) ListPending(since time.Time) ([]model.Pick, error) {
	query := table.Pick.
		SELECT(table.Pick.AllColumns).
		WHERE(postgres.AND(
			table.Pick.Outcome.EQ(postgres.String(model.PickOutcome_Pending.String())),
			table.Pick.ScanTime.GT_EQ(postgres.TimestampzT(since)),
		)).
		ORDER_BY(table.Pick.ScanTime.ASC())

	out := []model.Pick{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending picks: %w", err)
	}

	return out, nil
}

func (h pickRepositoryHandler) UpdateOutcome(pickID uuid.UUID, outcome model.PickOutcome, exitPrice decimal.Decimal, resolvedAt time.Time) (bool, error) {
	query := table.Pick.
		UPDATE(table.Pick.Outcome, table.Pick.ActualExitPrice, table.Pick.ResolvedAt).
		SET(
			postgres.String(outcome.String()),
			postgres.Float(exitPrice.InexactFloat64()),
			postgres.TimestampzT(resolvedAt),
		).
		WHERE(postgres.AND(
			table.Pick.PickID.EQ(postgres.UUID(pickID)),
			table.Pick.Outcome.EQ(postgres.String(model.PickOutcome_Pending.String())),
		))

	result, err := query.Exec(h.Db)
	if err != nil {
		return false, fmt.Errorf("failed to update outcome for pick %s: %w", pickID.String(), err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows for pick %s: %w", pickID.String(), err)
	}

	return rows == 1, nil
}
