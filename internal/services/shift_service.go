package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bar_ops_backend/internal/models"
	"bar_ops_backend/internal/repositories"
)

// --- Custom Service Errors for Shifts ---
var (
	ErrShiftNotFound   = errors.New("shift not found")
	ErrShiftExists     = errors.New("a shift already exists for this date")
	ErrShiftValidation = errors.New("shift validation error")
	ErrDateFormat      = errors.New("invalid date format, please use YYYY-MM-DD")
)

// --- Shift DTOs ---
type CreateShiftRequest struct {
	Date       string  `json:"date" binding:"required"`
	EmployeeID *string `json:"employee_id"`
	Status     *string `json:"status"`
}

type UpdateShiftRequest struct {
	EmployeeID *string `json:"employee_id"`
	Status     *string `json:"status"`
}

// --- ShiftService Interface ---

// ShiftService is the shift resolver: it maps calendar dates to shift
// records. Reads fail with ErrShiftNotFound when a date has no shift;
// creation is always explicit here (the assignment engine owns the
// create-on-demand path).
type ShiftService interface {
	CreateShift(req CreateShiftRequest) (*models.Shift, error)
	GetShiftByID(id int64) (*models.Shift, error)
	GetShiftByDate(date string) (*models.Shift, error)
	GetShifts(startDate, endDate string) ([]models.Shift, error)
	UpdateShift(id int64, req UpdateShiftRequest) (*models.Shift, error)
	DeleteShift(id int64) error
}

type shiftService struct {
	shiftRepo    repositories.ShiftRepository
	employeeRepo repositories.EmployeeRepository
	db           repositories.SQLExecutor
}

// NewShiftService creates a new instance of ShiftService.
func NewShiftService(shiftRepo repositories.ShiftRepository, employeeRepo repositories.EmployeeRepository, db repositories.SQLExecutor) ShiftService {
	return &shiftService{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		db:           db,
	}
}

// parseCalendarDate validates a yyyy-MM-dd date string and returns its
// trimmed form. Dates are used as filter keys against the store, so the
// format is checked before any query is issued.
func parseCalendarDate(dateStr string) (string, error) {
	trimmed := strings.TrimSpace(dateStr)
	if _, err := time.Parse("2006-01-02", trimmed); err != nil {
		return "", fmt.Errorf("%w: '%s'", ErrDateFormat, dateStr)
	}
	return trimmed, nil
}

func (s *shiftService) CreateShift(req CreateShiftRequest) (*models.Shift, error) {
	date, err := parseCalendarDate(req.Date)
	if err != nil {
		return nil, err
	}

	status := models.ShiftPlanned
	if req.Status != nil {
		if !models.IsValidShiftStatus(*req.Status) {
			return nil, fmt.Errorf("%w: unknown status '%s'", ErrShiftValidation, *req.Status)
		}
		status = *req.Status
	}

	if req.EmployeeID != nil {
		if _, err := s.employeeRepo.GetEmployeeByID(*req.EmployeeID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: employee %s for shift", ErrEmployeeNotFound, *req.EmployeeID)
			}
			return nil, fmt.Errorf("failed to validate employee for shift: %w", err)
		}
	}

	shift := &models.Shift{
		Date:       date,
		EmployeeID: req.EmployeeID,
		Status:     status,
	}

	created, err := s.shiftRepo.CreateShift(s.db, shift)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s", ErrShiftExists, date)
		}
		return nil, fmt.Errorf("failed to create shift in repository: %w", err)
	}
	return s.shiftRepo.GetShiftByID(created.ID) // Fetch with Employee details
}

func (s *shiftService) GetShiftByID(id int64) (*models.Shift, error) {
	shift, err := s.shiftRepo.GetShiftByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift by ID: %w", err)
	}
	return shift, nil
}

// GetShiftByDate reads the shift for a calendar date and fails with
// ErrShiftNotFound if absent. Callers wanting create-on-demand go
// through the assignment engine instead.
func (s *shiftService) GetShiftByDate(date string) (*models.Shift, error) {
	parsed, err := parseCalendarDate(date)
	if err != nil {
		return nil, err
	}

	shift, err := s.shiftRepo.GetShiftByDate(parsed)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: no shift on %s", ErrShiftNotFound, parsed)
		}
		return nil, fmt.Errorf("failed to get shift by date: %w", err)
	}
	return shift, nil
}

// GetShifts lists shifts with dates in [startDate, endDate] inclusive,
// joined with their employee, ordered by date ascending.
func (s *shiftService) GetShifts(startDate, endDate string) ([]models.Shift, error) {
	start, err := parseCalendarDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("start_date: %w", err)
	}
	end, err := parseCalendarDate(endDate)
	if err != nil {
		return nil, fmt.Errorf("end_date: %w", err)
	}
	if end < start {
		return nil, fmt.Errorf("%w: end date must not be before start date", ErrShiftValidation)
	}

	shifts, err := s.shiftRepo.GetShifts(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}
	return shifts, nil
}

func (s *shiftService) UpdateShift(id int64, req UpdateShiftRequest) (*models.Shift, error) {
	shift, err := s.shiftRepo.GetShiftByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to find shift for update: %w", err)
	}

	if req.Status != nil {
		if !models.IsValidShiftStatus(*req.Status) {
			return nil, fmt.Errorf("%w: unknown status '%s'", ErrShiftValidation, *req.Status)
		}
		shift.Status = *req.Status
	}
	if req.EmployeeID != nil {
		if *req.EmployeeID == "" {
			shift.EmployeeID = nil
		} else {
			if _, err := s.employeeRepo.GetEmployeeByID(*req.EmployeeID); err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return nil, fmt.Errorf("%w: employee %s for shift", ErrEmployeeNotFound, *req.EmployeeID)
				}
				return nil, fmt.Errorf("failed to validate employee for shift: %w", err)
			}
			shift.EmployeeID = req.EmployeeID
		}
	}

	updated, err := s.shiftRepo.UpdateShift(s.db, shift)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to update shift in repository: %w", err)
	}
	return s.shiftRepo.GetShiftByID(updated.ID)
}

func (s *shiftService) DeleteShift(id int64) error {
	_, err := s.shiftRepo.GetShiftByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrShiftNotFound
		}
		return fmt.Errorf("failed to find shift for deletion: %w", err)
	}

	err = s.shiftRepo.DeleteShift(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrShiftNotFound
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}
