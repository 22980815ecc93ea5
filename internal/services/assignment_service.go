package services

import (
	"errors"
	"fmt"
	"time"

	"bar_ops_backend/internal/models"
	"bar_ops_backend/internal/repositories"
)

// --- Custom Service Errors for Task Assignment ---
var (
	ErrTaskNotFound        = errors.New("assigned task not found")
	ErrTaskAlreadyAssigned = errors.New("template is already assigned on this date")
	ErrTemplateInactive    = errors.New("task template is disabled and cannot be assigned")
	ErrShiftResolution     = errors.New("failed to resolve or create shift for date")
)

// --- Assignment DTOs ---
type AssignTaskRequest struct {
	TemplateID int64   `json:"template_id" binding:"required"`
	EmployeeID *string `json:"employee_id"`
	Date       string  `json:"date" binding:"required"`
	Notes      *string `json:"notes"`
}

// DailyTaskBoard is the per-date view state: every active template
// grouped by category, plus the assignments already made for the date.
// The two reads behind it are independent; a template disabled between
// them shows up stale until the next refresh.
type DailyTaskBoard struct {
	Date     string                 `json:"date"`
	Groups   []models.TemplateGroup `json:"groups"`
	Assigned []models.AssignedTask  `json:"assigned"`
}

// --- AssignmentService Interface ---

// AssignmentService is the task assignment engine: for a given date it
// determines which templates are unassigned vs. assigned, assigns a
// template to an employee, and tracks completion.
type AssignmentService interface {
	ListForDate(date string) (*DailyTaskBoard, error)
	Assign(req AssignTaskRequest) (*models.AssignedTask, error)
	Complete(id int64) (*models.AssignedTask, error)
	Uncomplete(id int64) (*models.AssignedTask, error)
	DeleteAssignedTask(id int64) error
}

type assignmentService struct {
	taskRepo     repositories.TaskRepository
	templateRepo repositories.TemplateRepository
	shiftRepo    repositories.ShiftRepository
	employeeRepo repositories.EmployeeRepository
	db           repositories.SQLExecutor
}

// NewAssignmentService creates a new instance of AssignmentService.
func NewAssignmentService(
	taskRepo repositories.TaskRepository,
	templateRepo repositories.TemplateRepository,
	shiftRepo repositories.ShiftRepository,
	employeeRepo repositories.EmployeeRepository,
	db repositories.SQLExecutor,
) AssignmentService {
	return &assignmentService{
		taskRepo:     taskRepo,
		templateRepo: templateRepo,
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		db:           db,
	}
}

// ListForDate fetches the active templates (date-independent) and the
// assignments for the date's shift. A date with no shift yields every
// template unassigned and an empty assigned list.
func (s *assignmentService) ListForDate(date string) (*DailyTaskBoard, error) {
	parsed, err := parseCalendarDate(date)
	if err != nil {
		return nil, err
	}

	templates, err := s.templateRepo.GetTemplates(true, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get active templates: %w", err)
	}

	assigned, err := s.taskRepo.GetAssignedTasksByDate(parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to get assigned tasks for date %s: %w", parsed, err)
	}

	return &DailyTaskBoard{
		Date:     parsed,
		Groups:   GroupTemplatesByCategory(templates),
		Assigned: assigned,
	}, nil
}

// resolveOrCreateShift returns the shift for a date, inserting a planned
// one when none exists. A concurrent insert losing the unique-constraint
// race falls back to re-reading the winner's row.
func (s *assignmentService) resolveOrCreateShift(date string) (*models.Shift, error) {
	shift, err := s.shiftRepo.GetShiftByDate(date)
	if err == nil {
		return shift, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrShiftResolution, err)
	}

	created, err := s.shiftRepo.CreateShift(s.db, &models.Shift{
		Date:   date,
		Status: models.ShiftPlanned,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			shift, err = s.shiftRepo.GetShiftByDate(date)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrShiftResolution, err)
			}
			return shift, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrShiftResolution, err)
	}
	return created, nil
}

// Assign binds an active template to the date's shift (creating the
// shift on demand) and returns the new assignment joined with its
// template and employee.
func (s *assignmentService) Assign(req AssignTaskRequest) (*models.AssignedTask, error) {
	date, err := parseCalendarDate(req.Date)
	if err != nil {
		return nil, err
	}

	template, err := s.templateRepo.GetTemplateByID(req.TemplateID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: template ID %d", ErrTemplateNotFound, req.TemplateID)
		}
		return nil, fmt.Errorf("failed to validate template for assignment: %w", err)
	}
	if !template.IsActive {
		return nil, fmt.Errorf("%w: template ID %d", ErrTemplateInactive, req.TemplateID)
	}

	if req.EmployeeID != nil {
		if _, err := s.employeeRepo.GetEmployeeByID(*req.EmployeeID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: employee %s for assignment", ErrEmployeeNotFound, *req.EmployeeID)
			}
			return nil, fmt.Errorf("failed to validate employee for assignment: %w", err)
		}
	}

	shift, err := s.resolveOrCreateShift(date)
	if err != nil {
		return nil, err
	}

	task := &models.AssignedTask{
		ShiftID:    shift.ID,
		TemplateID: template.ID,
		EmployeeID: req.EmployeeID,
		Completed:  false,
		Notes:      req.Notes,
	}

	created, err := s.taskRepo.CreateAssignedTask(s.db, task)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: template ID %d on %s", ErrTaskAlreadyAssigned, template.ID, date)
		}
		return nil, fmt.Errorf("failed to create assigned task in repository: %w", err)
	}
	return s.taskRepo.GetAssignedTaskByID(created.ID) // Fetch with Template and Employee details
}

// Complete marks an assignment done, stamping completed_at. Completing
// an already-completed task is a no-op that returns the stored row, so
// the original completion timestamp is never overwritten.
func (s *assignmentService) Complete(id int64) (*models.AssignedTask, error) {
	task, err := s.taskRepo.GetAssignedTaskByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find assigned task for completion: %w", err)
	}
	if task.Completed {
		return task, nil
	}

	completedAt := time.Now()
	if err := s.taskRepo.SetCompletion(s.db, id, true, &completedAt); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to complete assigned task: %w", err)
	}
	return s.taskRepo.GetAssignedTaskByID(id)
}

// Uncomplete reopens a completed assignment, clearing completed and
// completed_at together. Reopening an incomplete task is a no-op.
func (s *assignmentService) Uncomplete(id int64) (*models.AssignedTask, error) {
	task, err := s.taskRepo.GetAssignedTaskByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find assigned task to reopen: %w", err)
	}
	if !task.Completed {
		return task, nil
	}

	if err := s.taskRepo.SetCompletion(s.db, id, false, nil); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to reopen assigned task: %w", err)
	}
	return s.taskRepo.GetAssignedTaskByID(id)
}

// DeleteAssignedTask removes an assignment outright. This is an
// administrative operation, separate from the completion flow.
func (s *assignmentService) DeleteAssignedTask(id int64) error {
	_, err := s.taskRepo.GetAssignedTaskByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find assigned task for deletion: %w", err)
	}

	err = s.taskRepo.DeleteAssignedTask(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete assigned task: %w", err)
	}
	return nil
}
