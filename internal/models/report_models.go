package models

import "time"

// CashReport records the register amounts for a shift. One per shift
// (cash_reports_shift_id_key).
type CashReport struct {
	ID          int64     `json:"id" db:"id"`
	ShiftID     int64     `json:"shift_id" db:"shift_id"`
	AmountStart *float64  `json:"amount_start,omitempty" db:"amount_start"`
	AmountEnd   *float64  `json:"amount_end,omitempty" db:"amount_end"`
	Notes       *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ShiftReport is the full picture of a shift: the shift itself with
// its employee, every assigned task with its template, and the cash
// report if one was filed.
type ShiftReport struct {
	Shift      Shift          `json:"shift"`
	Tasks      []AssignedTask `json:"tasks"`
	CashReport *CashReport    `json:"cash_report,omitempty"`
}
