package repository

import (
	"database/sql"
	"daypicks/internal/db/models/postgres/public/model"
	"daypicks/internal/db/models/postgres/public/table"
	"daypicks/internal/domain"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
)

// CalibrationRepository stores learning snapshots. Snapshots are written
// whole and never mutated, so readers always see a consistent prior or
// current calibration.
type CalibrationRepository interface {
	// Latest returns the most recent calibration, or nil when none has
	// been produced yet.
	Latest() (*domain.Calibration, error)
	Replace(c domain.Calibration) error
}

type calibrationRepositoryHandler struct {
	Db *sql.DB
}

func NewCalibrationRepository(db *sql.DB) CalibrationRepository {
	return calibrationRepositoryHandler{Db: db}
}

func (h calibrationRepositoryHandler) Latest() (*domain.Calibration, error) {
	query := table.CalibrationSnapshot.
		SELECT(table.CalibrationSnapshot.AllColumns).
		ORDER_BY(table.CalibrationSnapshot.CreatedAt.DESC()).
		LIMIT(1)

	row := model.CalibrationSnapshot{}
	err := query.Query(h.Db, &row)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load latest calibration: %w", err)
	}

	out := domain.Calibration{}
	if err := json.Unmarshal([]byte(row.Payload), &out); err != nil {
		return nil, fmt.Errorf("failed to decode calibration payload: %w", err)
	}

	return &out, nil
}

func (h calibrationRepositoryHandler) Replace(c domain.Calibration) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode calibration: %w", err)
	}

	query := table.CalibrationSnapshot.
		INSERT(table.CalibrationSnapshot.MutableColumns).
		MODEL(model.CalibrationSnapshot{
			Payload:   string(payload),
			CreatedAt: time.Now().UTC(),
		})

	_, err = query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to store calibration snapshot: %w", err)
	}

	return nil
}
