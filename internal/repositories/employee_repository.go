package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"bar_ops_backend/internal/models"

	"github.com/lib/pq" // For pq.Error
)

// EmployeeRepository defines the interface for employee-related database operations.
type EmployeeRepository interface {
	CreateEmployee(executor SQLExecutor, employee *models.Employee) (*models.Employee, error)
	GetEmployeeByID(id string) (*models.Employee, error)
	GetEmployeeByEmail(email string) (*models.Employee, error) // Includes PasswordHash for login checks
	GetEmployees() ([]models.Employee, error)
	UpdateEmployee(executor SQLExecutor, employee *models.Employee) (*models.Employee, error)
	DeleteEmployee(executor SQLExecutor, id string) error
}

type employeeRepository struct {
	db *sql.DB
}

// NewEmployeeRepository creates a new instance of EmployeeRepository.
func NewEmployeeRepository(db *sql.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) CreateEmployee(executor SQLExecutor, employee *models.Employee) (*models.Employee, error) {
	query := `INSERT INTO employees (id, email, full_name, role, password_hash, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING created_at, updated_at`

	currentTime := time.Now()
	employee.CreatedAt = currentTime
	employee.UpdatedAt = currentTime

	err := executor.QueryRow(query,
		employee.ID, employee.Email, employee.FullName, employee.Role,
		employee.PasswordHash, employee.CreatedAt, employee.UpdatedAt,
	).Scan(&employee.CreatedAt, &employee.UpdatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return nil, fmt.Errorf("%w: creating employee: %v", ErrDatabaseError, err)
	}
	return employee, nil
}

func scanEmployeeRow(row scanner) (*models.Employee, error) {
	var employee models.Employee
	err := row.Scan(
		&employee.ID, &employee.Email, &employee.FullName, &employee.Role,
		&employee.PasswordHash, &employee.CreatedAt, &employee.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning employee: %v", ErrDatabaseError, err)
	}
	return &employee, nil
}

func (r *employeeRepository) GetEmployeeByID(id string) (*models.Employee, error) {
	query := `SELECT id, email, full_name, role, password_hash, created_at, updated_at
	          FROM employees WHERE id = $1`
	return scanEmployeeRow(r.db.QueryRow(query, id))
}

func (r *employeeRepository) GetEmployeeByEmail(email string) (*models.Employee, error) {
	query := `SELECT id, email, full_name, role, password_hash, created_at, updated_at
	          FROM employees WHERE LOWER(email) = LOWER($1)`
	return scanEmployeeRow(r.db.QueryRow(query, email))
}

func (r *employeeRepository) GetEmployees() ([]models.Employee, error) {
	employees := []models.Employee{}
	query := `SELECT id, email, full_name, role, password_hash, created_at, updated_at
	          FROM employees ORDER BY full_name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying employees: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		employee, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *employee)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating employee rows: %v", ErrDatabaseError, err)
	}
	return employees, nil
}

func (r *employeeRepository) UpdateEmployee(executor SQLExecutor, employee *models.Employee) (*models.Employee, error) {
	query := `UPDATE employees SET email = $1, full_name = $2, role = $3, updated_at = $4
	          WHERE id = $5
	          RETURNING updated_at`

	employee.UpdatedAt = time.Now()

	err := executor.QueryRow(query,
		employee.Email, employee.FullName, employee.Role, employee.UpdatedAt, employee.ID,
	).Scan(&employee.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return nil, fmt.Errorf("%w: updating employee ID %s: %v", ErrDatabaseError, employee.ID, err)
	}
	return employee, nil
}

func (r *employeeRepository) DeleteEmployee(executor SQLExecutor, id string) error {
	query := `DELETE FROM employees WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && strings.Contains(err.Error(), "violates foreign key constraint") {
			return fmt.Errorf("%w: employee ID %s is referenced in other records (constraint: %s)", ErrDatabaseError, id, pqErr.Constraint)
		}
		return fmt.Errorf("%w: deleting employee ID %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
