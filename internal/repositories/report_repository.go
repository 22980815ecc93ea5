package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bar_ops_backend/internal/models"

	"github.com/lib/pq" // For pq.Error
)

// ReportRepository defines the interface for cash report database operations.
type ReportRepository interface {
	UpsertCashReport(executor SQLExecutor, report *models.CashReport) (*models.CashReport, error)
	GetCashReportByShiftID(shiftID int64) (*models.CashReport, error)
}

type reportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new instance of ReportRepository.
func NewReportRepository(db *sql.DB) ReportRepository {
	return &reportRepository{db: db}
}

// UpsertCashReport inserts the cash report for a shift, or overwrites the
// existing one. One report per shift (cash_reports_shift_id_key).
func (r *reportRepository) UpsertCashReport(executor SQLExecutor, report *models.CashReport) (*models.CashReport, error) {
	query := `INSERT INTO cash_reports (shift_id, amount_start, amount_end, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT ON CONSTRAINT cash_reports_shift_id_key
	          DO UPDATE SET amount_start = EXCLUDED.amount_start,
	                        amount_end = EXCLUDED.amount_end,
	                        notes = EXCLUDED.notes
	          RETURNING id, created_at`

	err := executor.QueryRow(query,
		report.ShiftID, report.AmountStart, report.AmountEnd, report.Notes, time.Now(),
	).Scan(&report.ID, &report.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return nil, fmt.Errorf("%w: shift %d for cash report not found", ErrNotFound, report.ShiftID)
		}
		return nil, fmt.Errorf("%w: upserting cash report: %v", ErrDatabaseError, err)
	}
	return report, nil
}

func (r *reportRepository) GetCashReportByShiftID(shiftID int64) (*models.CashReport, error) {
	var report models.CashReport
	var amountStart, amountEnd sql.NullFloat64
	var notes sql.NullString

	query := `SELECT id, shift_id, amount_start, amount_end, notes, created_at
	          FROM cash_reports WHERE shift_id = $1`

	err := r.db.QueryRow(query, shiftID).Scan(
		&report.ID, &report.ShiftID, &amountStart, &amountEnd, &notes, &report.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting cash report for shift %d: %v", ErrDatabaseError, shiftID, err)
	}

	if amountStart.Valid {
		report.AmountStart = &amountStart.Float64
	}
	if amountEnd.Valid {
		report.AmountEnd = &amountEnd.Float64
	}
	if notes.Valid {
		report.Notes = &notes.String
	}
	return &report, nil
}
