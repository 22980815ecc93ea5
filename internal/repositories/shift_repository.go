package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bar_ops_backend/internal/models"

	"github.com/lib/pq" // For pq.Error
)

// ShiftRepository defines the interface for shift database operations.
// Shifts are keyed by calendar date; shift_date is stored as DATE and
// read back as the yyyy-MM-dd string clients filter on.
type ShiftRepository interface {
	CreateShift(executor SQLExecutor, shift *models.Shift) (*models.Shift, error)
	GetShiftByID(id int64) (*models.Shift, error)
	GetShiftByDate(date string) (*models.Shift, error)
	GetShifts(startDate, endDate string) ([]models.Shift, error)
	UpdateShift(executor SQLExecutor, shift *models.Shift) (*models.Shift, error)
	DeleteShift(executor SQLExecutor, id int64) error
}

type shiftRepository struct {
	db *sql.DB
}

// NewShiftRepository creates a new instance of ShiftRepository.
func NewShiftRepository(db *sql.DB) ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) CreateShift(executor SQLExecutor, shift *models.Shift) (*models.Shift, error) {
	query := `INSERT INTO shifts (shift_date, employee_id, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at, updated_at`

	currentTime := time.Now()
	shift.CreatedAt = currentTime
	shift.UpdatedAt = currentTime
	if shift.Status == "" {
		shift.Status = models.ShiftPlanned
	}

	err := executor.QueryRow(query,
		shift.Date, shift.EmployeeID, shift.Status, shift.CreatedAt, shift.UpdatedAt,
	).Scan(&shift.ID, &shift.CreatedAt, &shift.UpdatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code.Name() == "unique_violation" {
				return nil, fmt.Errorf("%w: a shift already exists for date %s (constraint: %s)", ErrDuplicateKey, shift.Date, pqErr.Constraint)
			}
			if pqErr.Code.Name() == "foreign_key_violation" {
				return nil, fmt.Errorf("%w: employee for shift not found (constraint: %s)", ErrNotFound, pqErr.Constraint)
			}
		}
		return nil, fmt.Errorf("%w: creating shift: %v", ErrDatabaseError, err)
	}
	return shift, nil
}

// scanShiftRow scans a shift joined with its (optional) employee.
func scanShiftRow(row scanner) (*models.Shift, error) {
	var shift models.Shift
	var shiftDate time.Time
	var employeeID, employeeEmail, employeeFullName, employeeRole sql.NullString

	err := row.Scan(
		&shift.ID, &shiftDate, &employeeID, &shift.Status,
		&shift.CreatedAt, &shift.UpdatedAt,
		&employeeEmail, &employeeFullName, &employeeRole,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning shift: %v", ErrDatabaseError, err)
	}

	shift.Date = shiftDate.Format("2006-01-02")
	if employeeID.Valid {
		shift.EmployeeID = &employeeID.String
		if employeeEmail.Valid || employeeFullName.Valid {
			employee := &models.Employee{ID: employeeID.String}
			if employeeEmail.Valid {
				employee.Email = employeeEmail.String
			}
			if employeeFullName.Valid {
				employee.FullName = employeeFullName.String
			}
			if employeeRole.Valid {
				employee.Role = employeeRole.String
			}
			shift.Employee = employee
		}
	}
	return &shift, nil
}

const shiftSelectColumns = `s.id, s.shift_date, s.employee_id, s.status, s.created_at, s.updated_at,
	          e.email, e.full_name, e.role`

func (r *shiftRepository) GetShiftByID(id int64) (*models.Shift, error) {
	query := `SELECT ` + shiftSelectColumns + `
	          FROM shifts s
	          LEFT JOIN employees e ON s.employee_id = e.id
	          WHERE s.id = $1`
	return scanShiftRow(r.db.QueryRow(query, id))
}

func (r *shiftRepository) GetShiftByDate(date string) (*models.Shift, error) {
	query := `SELECT ` + shiftSelectColumns + `
	          FROM shifts s
	          LEFT JOIN employees e ON s.employee_id = e.id
	          WHERE s.shift_date = $1`
	return scanShiftRow(r.db.QueryRow(query, date))
}

// GetShifts returns shifts whose date lies in [startDate, endDate]
// inclusive, joined with their employee, ordered by date ascending.
func (r *shiftRepository) GetShifts(startDate, endDate string) ([]models.Shift, error) {
	shifts := []models.Shift{}
	query := `SELECT ` + shiftSelectColumns + `
	          FROM shifts s
	          LEFT JOIN employees e ON s.employee_id = e.id
	          WHERE s.shift_date >= $1 AND s.shift_date <= $2
	          ORDER BY s.shift_date ASC`

	rows, err := r.db.Query(query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: querying shifts: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		shift, err := scanShiftRow(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, *shift)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating shift rows: %v", ErrDatabaseError, err)
	}
	return shifts, nil
}

func (r *shiftRepository) UpdateShift(executor SQLExecutor, shift *models.Shift) (*models.Shift, error) {
	query := `UPDATE shifts SET employee_id = $1, status = $2, updated_at = $3
	          WHERE id = $4
	          RETURNING updated_at`

	shift.UpdatedAt = time.Now()

	err := executor.QueryRow(query,
		shift.EmployeeID, shift.Status, shift.UpdatedAt, shift.ID,
	).Scan(&shift.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return nil, fmt.Errorf("%w: employee for shift not found (constraint: %s)", ErrNotFound, pqErr.Constraint)
		}
		return nil, fmt.Errorf("%w: updating shift ID %d: %v", ErrDatabaseError, shift.ID, err)
	}
	return shift, nil
}

func (r *shiftRepository) DeleteShift(executor SQLExecutor, id int64) error {
	query := `DELETE FROM shifts WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting shift ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
