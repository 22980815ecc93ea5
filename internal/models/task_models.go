package models

import "time"

// Task template categories. Grouped views render categories in this
// order: opening, closing, custom.
const (
	CategoryOpening = "opening"
	CategoryClosing = "closing"
	CategoryCustom  = "custom"
)

// CategoryOrder lists all known categories in display order.
var CategoryOrder = []string{CategoryOpening, CategoryClosing, CategoryCustom}

// IsValidCategory reports whether category is one of the known task categories.
func IsValidCategory(category string) bool {
	for _, c := range CategoryOrder {
		if c == category {
			return true
		}
	}
	return false
}

// Shift statuses.
const (
	ShiftPlanned    = "planned"
	ShiftInProgress = "in_progress"
	ShiftCompleted  = "completed"
)

// IsValidShiftStatus reports whether status is one of the known shift statuses.
func IsValidShiftStatus(status string) bool {
	return status == ShiftPlanned || status == ShiftInProgress || status == ShiftCompleted
}

// TaskTemplate is a reusable definition of a recurring duty, e.g.
// "open the register". Templates are soft-disabled via IsActive, never
// deleted by the assignment flow.
type TaskTemplate struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	Description *string   `json:"description,omitempty" db:"description"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Shift is a scheduled block of work on a calendar date. At most one
// shift exists per date (shifts_shift_date_key).
type Shift struct {
	ID         int64     `json:"id" db:"id"`
	Date       string    `json:"date" db:"shift_date"` // yyyy-MM-dd
	EmployeeID *string   `json:"employee_id,omitempty" db:"employee_id"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
	Employee   *Employee `json:"employee,omitempty"` // For joining with Employee details
}

// AssignedTask binds a TaskTemplate to a Shift, with its own
// completion state. CompletedAt is set when Completed flips to true
// and cleared when the assignment is reopened.
type AssignedTask struct {
	ID          int64         `json:"id" db:"id"`
	ShiftID     int64         `json:"shift_id" db:"shift_id"`
	TemplateID  int64         `json:"template_id" db:"template_id"`
	EmployeeID  *string       `json:"employee_id,omitempty" db:"employee_id"`
	Completed   bool          `json:"completed" db:"completed"`
	CompletedAt *time.Time    `json:"completed_at,omitempty" db:"completed_at"`
	Notes       *string       `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
	Template    *TaskTemplate `json:"template,omitempty"` // For joining with TaskTemplate details
	Employee    *Employee     `json:"employee,omitempty"` // For joining with Employee details
}

// TemplateGroup is one rendered section of the daily task board: a
// category plus its templates in source order.
type TemplateGroup struct {
	Category  string         `json:"category"`
	Templates []TaskTemplate `json:"templates"`
}
