package services

import (
	"testing"

	"bar_ops_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShiftFixture() (*mockShiftRepository, *mockEmployeeRepository, ShiftService) {
	shiftRepo := newMockShiftRepository()
	employeeRepo := newMockEmployeeRepository()
	service := NewShiftService(shiftRepo, employeeRepo, nil)
	return shiftRepo, employeeRepo, service
}

func TestParseCalendarDate(t *testing.T) {
	parsed, err := parseCalendarDate(" 2025-02-13 ")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-13", parsed)

	for _, bad := range []string{"13-02-2025", "2025/02/13", "2025-2-13", "yesterday", ""} {
		_, err := parseCalendarDate(bad)
		assert.ErrorIs(t, err, ErrDateFormat, "input %q", bad)
	}
}

func TestCreateShiftDefaultsToPlanned(t *testing.T) {
	_, _, service := newShiftFixture()

	shift, err := service.CreateShift(CreateShiftRequest{Date: "2025-02-13"})
	require.NoError(t, err)
	assert.Equal(t, models.ShiftPlanned, shift.Status)
	assert.Nil(t, shift.EmployeeID)
}

func TestCreateShiftDuplicateDate(t *testing.T) {
	shiftRepo, _, service := newShiftFixture()
	shiftRepo.addShift("2025-02-13")

	_, err := service.CreateShift(CreateShiftRequest{Date: "2025-02-13"})
	assert.ErrorIs(t, err, ErrShiftExists)
}

func TestCreateShiftRejectsUnknownEmployee(t *testing.T) {
	_, _, service := newShiftFixture()

	ghost := "emp-ghost"
	_, err := service.CreateShift(CreateShiftRequest{Date: "2025-02-13", EmployeeID: &ghost})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestGetShiftByDateMissing(t *testing.T) {
	_, _, service := newShiftFixture()

	_, err := service.GetShiftByDate("2025-02-13")
	assert.ErrorIs(t, err, ErrShiftNotFound)
}

func TestGetShiftsRange(t *testing.T) {
	shiftRepo, _, service := newShiftFixture()
	shiftRepo.addShift("2025-02-12")
	shiftRepo.addShift("2025-02-13")
	shiftRepo.addShift("2025-02-20")

	shifts, err := service.GetShifts("2025-02-12", "2025-02-13")
	require.NoError(t, err)
	assert.Len(t, shifts, 2, "range bounds are inclusive")

	_, err = service.GetShifts("2025-02-13", "2025-02-12")
	assert.ErrorIs(t, err, ErrShiftValidation)
}

func TestUpdateShiftClearsEmployee(t *testing.T) {
	shiftRepo, employeeRepo, service := newShiftFixture()
	employee := employeeRepo.addEmployee("emp-7", "nora@example.com", "Nora Quist", models.RoleEmployee)
	shift := shiftRepo.addShift("2025-02-13")

	updated, err := service.UpdateShift(shift.ID, UpdateShiftRequest{EmployeeID: &employee.ID})
	require.NoError(t, err)
	require.NotNil(t, updated.EmployeeID)

	empty := ""
	updated, err = service.UpdateShift(shift.ID, UpdateShiftRequest{EmployeeID: &empty})
	require.NoError(t, err)
	assert.Nil(t, updated.EmployeeID, "an empty employee id unassigns the shift")
}

func TestDeleteShiftNotFound(t *testing.T) {
	_, _, service := newShiftFixture()
	assert.ErrorIs(t, service.DeleteShift(42), ErrShiftNotFound)
}
