package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bar_ops_backend/internal/models"

	"github.com/lib/pq" // For pq.Error
)

// TaskRepository defines the interface for assigned task database operations.
// Every read returns rows joined with their task template and employee so
// callers can render without a second fetch.
type TaskRepository interface {
	CreateAssignedTask(executor SQLExecutor, task *models.AssignedTask) (*models.AssignedTask, error)
	GetAssignedTaskByID(id int64) (*models.AssignedTask, error)
	GetAssignedTasksByDate(date string) ([]models.AssignedTask, error)
	GetAssignedTasksByShiftID(shiftID int64) ([]models.AssignedTask, error)
	SetCompletion(executor SQLExecutor, id int64, completed bool, completedAt *time.Time) error
	DeleteAssignedTask(executor SQLExecutor, id int64) error
}

type taskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new instance of TaskRepository.
func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) CreateAssignedTask(executor SQLExecutor, task *models.AssignedTask) (*models.AssignedTask, error) {
	query := `INSERT INTO assigned_tasks (shift_id, template_id, employee_id, completed, completed_at, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id, created_at, updated_at`

	currentTime := time.Now()
	task.CreatedAt = currentTime
	task.UpdatedAt = currentTime

	err := executor.QueryRow(query,
		task.ShiftID, task.TemplateID, task.EmployeeID, task.Completed,
		task.CompletedAt, task.Notes, task.CreatedAt, task.UpdatedAt,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code.Name() == "unique_violation" && pqErr.Constraint == "assigned_tasks_shift_template_key" {
				return nil, fmt.Errorf("%w: template %d is already assigned on shift %d", ErrDuplicateKey, task.TemplateID, task.ShiftID)
			}
			if pqErr.Code.Name() == "foreign_key_violation" {
				return nil, fmt.Errorf("%w: referenced record for assigned task not found (constraint: %s)", ErrNotFound, pqErr.Constraint)
			}
		}
		return nil, fmt.Errorf("%w: creating assigned task: %v", ErrDatabaseError, err)
	}
	return task, nil
}

// scanAssignedTaskRow scans an assigned task joined with its template and
// (optional) employee.
func scanAssignedTaskRow(row scanner) (*models.AssignedTask, error) {
	var task models.AssignedTask
	var template models.TaskTemplate
	var completedAt sql.NullTime
	var taskNotes, templateDescription sql.NullString
	var employeeID, employeeEmail, employeeFullName, employeeRole sql.NullString

	err := row.Scan(
		&task.ID, &task.ShiftID, &task.TemplateID, &employeeID,
		&task.Completed, &completedAt, &taskNotes,
		&task.CreatedAt, &task.UpdatedAt,
		&template.Name, &template.Category, &templateDescription, &template.IsActive,
		&employeeEmail, &employeeFullName, &employeeRole,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning assigned task: %v", ErrDatabaseError, err)
	}

	if completedAt.Valid {
		task.CompletedAt = &completedAt.Time
	}
	if taskNotes.Valid {
		task.Notes = &taskNotes.String
	}

	template.ID = task.TemplateID
	if templateDescription.Valid {
		template.Description = &templateDescription.String
	}
	task.Template = &template

	if employeeID.Valid {
		task.EmployeeID = &employeeID.String
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
		task.Employee = employee
	}
	return &task, nil
}

const assignedTaskSelect = `SELECT at.id, at.shift_id, at.template_id, at.employee_id,
	          at.completed, at.completed_at, at.notes, at.created_at, at.updated_at,
	          tt.name, tt.category, tt.description, tt.is_active,
	          e.email, e.full_name, e.role
	          FROM assigned_tasks at
	          JOIN task_templates tt ON at.template_id = tt.id
	          LEFT JOIN employees e ON at.employee_id = e.id`

func (r *taskRepository) GetAssignedTaskByID(id int64) (*models.AssignedTask, error) {
	query := assignedTaskSelect + ` WHERE at.id = $1`
	return scanAssignedTaskRow(r.db.QueryRow(query, id))
}

func (r *taskRepository) queryAssignedTasks(query string, args ...interface{}) ([]models.AssignedTask, error) {
	tasks := []models.AssignedTask{}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying assigned tasks: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		task, err := scanAssignedTaskRow(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating assigned task rows: %v", ErrDatabaseError, err)
	}
	return tasks, nil
}

// GetAssignedTasksByDate returns the assigned tasks whose shift falls on the
// given calendar date. A date with no shift simply yields an empty slice.
func (r *taskRepository) GetAssignedTasksByDate(date string) ([]models.AssignedTask, error) {
	query := assignedTaskSelect + `
	          JOIN shifts s ON at.shift_id = s.id
	          WHERE s.shift_date = $1
	          ORDER BY at.id ASC`
	return r.queryAssignedTasks(query, date)
}

func (r *taskRepository) GetAssignedTasksByShiftID(shiftID int64) ([]models.AssignedTask, error) {
	query := assignedTaskSelect + ` WHERE at.shift_id = $1 ORDER BY at.id ASC`
	return r.queryAssignedTasks(query, shiftID)
}

// SetCompletion writes the completion flag and timestamp for an assigned
// task. completedAt must be nil exactly when completed is false.
func (r *taskRepository) SetCompletion(executor SQLExecutor, id int64, completed bool, completedAt *time.Time) error {
	query := `UPDATE assigned_tasks SET completed = $1, completed_at = $2, updated_at = $3
	          WHERE id = $4`

	result, err := executor.Exec(query, completed, completedAt, time.Now(), id)
	if err != nil {
		return fmt.Errorf("%w: updating completion of assigned task ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *taskRepository) DeleteAssignedTask(executor SQLExecutor, id int64) error {
	query := `DELETE FROM assigned_tasks WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting assigned task ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
