package services

import (
	"errors"
	"fmt"

	"bar_ops_backend/internal/models"
	"bar_ops_backend/internal/repositories"
)

// --- Cash Report DTOs ---
type SaveCashReportRequest struct {
	AmountStart *float64 `json:"amount_start"`
	AmountEnd   *float64 `json:"amount_end"`
	Notes       *string  `json:"notes"`
}

// --- ReportService Interface ---

// ReportService assembles shift reports: the shift with its employee,
// every assigned task with its template, and the cash report if filed.
type ReportService interface {
	GetShiftReport(shiftID int64) (*models.ShiftReport, error)
	SaveCashReport(shiftID int64, req SaveCashReportRequest) (*models.CashReport, error)
}

type reportService struct {
	reportRepo repositories.ReportRepository
	shiftRepo  repositories.ShiftRepository
	taskRepo   repositories.TaskRepository
	db         repositories.SQLExecutor
}

// NewReportService creates a new instance of ReportService.
func NewReportService(
	reportRepo repositories.ReportRepository,
	shiftRepo repositories.ShiftRepository,
	taskRepo repositories.TaskRepository,
	db repositories.SQLExecutor,
) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		shiftRepo:  shiftRepo,
		taskRepo:   taskRepo,
		db:         db,
	}
}

func (s *reportService) GetShiftReport(shiftID int64) (*models.ShiftReport, error) {
	shift, err := s.shiftRepo.GetShiftByID(shiftID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift for report: %w", err)
	}

	tasks, err := s.taskRepo.GetAssignedTasksByShiftID(shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assigned tasks for report: %w", err)
	}

	report := &models.ShiftReport{
		Shift: *shift,
		Tasks: tasks,
	}

	cashReport, err := s.reportRepo.GetCashReportByShiftID(shiftID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("failed to get cash report for report: %w", err)
		}
		// No cash report filed for this shift.
	} else {
		report.CashReport = cashReport
	}

	return report, nil
}

// SaveCashReport files or overwrites the cash report for a shift.
func (s *reportService) SaveCashReport(shiftID int64, req SaveCashReportRequest) (*models.CashReport, error) {
	if _, err := s.shiftRepo.GetShiftByID(shiftID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to validate shift for cash report: %w", err)
	}

	report := &models.CashReport{
		ShiftID:     shiftID,
		AmountStart: req.AmountStart,
		AmountEnd:   req.AmountEnd,
		Notes:       req.Notes,
	}

	saved, err := s.reportRepo.UpsertCashReport(s.db, report)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to save cash report in repository: %w", err)
	}
	return saved, nil
}
