package services

import (
	"testing"

	"bar_ops_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssignmentFixture() (*mockTaskRepository, *mockTemplateRepository, *mockShiftRepository, *mockEmployeeRepository, AssignmentService) {
	templateRepo := newMockTemplateRepository()
	shiftRepo := newMockShiftRepository()
	taskRepo := newMockTaskRepository(shiftRepo, templateRepo)
	employeeRepo := newMockEmployeeRepository()
	service := NewAssignmentService(taskRepo, templateRepo, shiftRepo, employeeRepo, nil)
	return taskRepo, templateRepo, shiftRepo, employeeRepo, service
}

func TestAssignCreatesShiftOnDemand(t *testing.T) {
	_, templateRepo, shiftRepo, employeeRepo, service := newAssignmentFixture()
	template := templateRepo.addTemplate("Restock the bar fridge", models.CategoryOpening, true)
	employeeRepo.addEmployee("emp-7", "nora@example.com", "Nora Quist", models.RoleEmployee)

	employeeID := "emp-7"
	task, err := service.Assign(AssignTaskRequest{
		TemplateID: template.ID,
		EmployeeID: &employeeID,
		Date:       "2025-02-13",
	})
	require.NoError(t, err)

	shift, err := shiftRepo.GetShiftByDate("2025-02-13")
	require.NoError(t, err, "assigning on an empty date must create the shift")
	assert.Equal(t, models.ShiftPlanned, shift.Status)

	assert.Equal(t, shift.ID, task.ShiftID)
	assert.Equal(t, template.ID, task.TemplateID)
	require.NotNil(t, task.EmployeeID)
	assert.Equal(t, "emp-7", *task.EmployeeID)
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)
	require.NotNil(t, task.Template)
	assert.Equal(t, template.Name, task.Template.Name)
}

func TestAssignReusesExistingShift(t *testing.T) {
	_, templateRepo, shiftRepo, _, service := newAssignmentFixture()
	shift := shiftRepo.addShift("2025-02-13")
	first := templateRepo.addTemplate("Count the till", models.CategoryOpening, true)
	second := templateRepo.addTemplate("Mop the floor", models.CategoryClosing, true)

	taskOne, err := service.Assign(AssignTaskRequest{TemplateID: first.ID, Date: "2025-02-13"})
	require.NoError(t, err)
	taskTwo, err := service.Assign(AssignTaskRequest{TemplateID: second.ID, Date: "2025-02-13"})
	require.NoError(t, err)

	assert.Equal(t, shift.ID, taskOne.ShiftID)
	assert.Equal(t, shift.ID, taskTwo.ShiftID)
	assert.Len(t, shiftRepo.shifts, 1, "no second shift may appear for the same date")
}

func TestAssignDuplicateTemplateSameDate(t *testing.T) {
	_, templateRepo, _, _, service := newAssignmentFixture()
	template := templateRepo.addTemplate("Check the kegs", models.CategoryOpening, true)

	_, err := service.Assign(AssignTaskRequest{TemplateID: template.ID, Date: "2025-02-13"})
	require.NoError(t, err)

	_, err = service.Assign(AssignTaskRequest{TemplateID: template.ID, Date: "2025-02-13"})
	assert.ErrorIs(t, err, ErrTaskAlreadyAssigned)
}

func TestAssignSameTemplateDifferentDates(t *testing.T) {
	_, templateRepo, _, _, service := newAssignmentFixture()
	template := templateRepo.addTemplate("Check the kegs", models.CategoryOpening, true)

	_, err := service.Assign(AssignTaskRequest{TemplateID: template.ID, Date: "2025-02-13"})
	require.NoError(t, err)
	_, err = service.Assign(AssignTaskRequest{TemplateID: template.ID, Date: "2025-02-14"})
	assert.NoError(t, err, "the same template on a different date is a distinct assignment")
}

func TestAssignValidation(t *testing.T) {
	_, templateRepo, _, _, service := newAssignmentFixture()
	inactive := templateRepo.addTemplate("Retired duty", models.CategoryCustom, false)

	_, err := service.Assign(AssignTaskRequest{TemplateID: inactive.ID, Date: "2025-02-13"})
	assert.ErrorIs(t, err, ErrTemplateInactive)

	_, err = service.Assign(AssignTaskRequest{TemplateID: 999, Date: "2025-02-13"})
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	active := templateRepo.addTemplate("Real duty", models.CategoryOpening, true)
	ghost := "emp-ghost"
	_, err = service.Assign(AssignTaskRequest{TemplateID: active.ID, EmployeeID: &ghost, Date: "2025-02-13"})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	_, err = service.Assign(AssignTaskRequest{TemplateID: active.ID, Date: "13-02-2025"})
	assert.ErrorIs(t, err, ErrDateFormat)
}

func TestAssignLosesShiftCreationRace(t *testing.T) {
	_, templateRepo, shiftRepo, _, service := newAssignmentFixture()
	template := templateRepo.addTemplate("Open the register", models.CategoryOpening, true)

	// The date's shift exists, but the first lookup misses it. The
	// insert then hits the unique constraint and the engine must fall
	// back to re-reading the winner's row.
	winner := shiftRepo.addShift("2025-02-13")
	shiftRepo.missDateOnce = true

	task, err := service.Assign(AssignTaskRequest{TemplateID: template.ID, Date: "2025-02-13"})
	require.NoError(t, err)
	assert.Equal(t, winner.ID, task.ShiftID)
	assert.Len(t, shiftRepo.shifts, 1)
}

func TestListForDateEmpty(t *testing.T) {
	_, templateRepo, _, _, service := newAssignmentFixture()
	templateRepo.addTemplate("Count the till", models.CategoryOpening, true)
	templateRepo.addTemplate("Lock the door", models.CategoryClosing, true)

	board, err := service.ListForDate("2025-02-13")
	require.NoError(t, err)

	assert.Equal(t, "2025-02-13", board.Date)
	assert.Empty(t, board.Assigned, "a date with no shift has no assignments")
	require.Len(t, board.Groups, 2)
	assert.Equal(t, models.CategoryOpening, board.Groups[0].Category)
	assert.Equal(t, models.CategoryClosing, board.Groups[1].Category)
}

func TestListForDateExcludesInactiveTemplates(t *testing.T) {
	_, templateRepo, _, _, service := newAssignmentFixture()
	templateRepo.addTemplate("Count the till", models.CategoryOpening, true)
	templateRepo.addTemplate("Retired duty", models.CategoryOpening, false)

	board, err := service.ListForDate("2025-02-13")
	require.NoError(t, err)

	require.Len(t, board.Groups, 1)
	require.Len(t, board.Groups[0].Templates, 1)
	assert.Equal(t, "Count the till", board.Groups[0].Templates[0].Name)
}

func TestListForDateReturnsAssignments(t *testing.T) {
	_, templateRepo, _, _, service := newAssignmentFixture()
	template := templateRepo.addTemplate("Count the till", models.CategoryOpening, true)

	created, err := service.Assign(AssignTaskRequest{TemplateID: template.ID, Date: "2025-02-13"})
	require.NoError(t, err)

	board, err := service.ListForDate("2025-02-13")
	require.NoError(t, err)
	require.Len(t, board.Assigned, 1)
	assert.Equal(t, created.ID, board.Assigned[0].ID)

	other, err := service.ListForDate("2025-02-14")
	require.NoError(t, err)
	assert.Empty(t, other.Assigned, "assignments are scoped to their date")
}

func TestCompleteStampsTimestamp(t *testing.T) {
	_, templateRepo, _, _, service := newAssignmentFixture()
	template := templateRepo.addTemplate("Count the till", models.CategoryOpening, true)
	created, err := service.Assign(AssignTaskRequest{TemplateID: template.ID, Date: "2025-02-13"})
	require.NoError(t, err)

	completed, err := service.Complete(created.ID)
	require.NoError(t, err)
	assert.True(t, completed.Completed)
	require.NotNil(t, completed.CompletedAt)
}

func TestCompleteTwicePreservesTimestamp(t *testing.T) {
	_, templateRepo, _, _, service := newAssignmentFixture()
	template := templateRepo.addTemplate("Count the till", models.CategoryOpening, true)
	created, err := service.Assign(AssignTaskRequest{TemplateID: template.ID, Date: "2025-02-13"})
	require.NoError(t, err)

	first, err := service.Complete(created.ID)
	require.NoError(t, err)
	require.NotNil(t, first.CompletedAt)

	second, err := service.Complete(created.ID)
	require.NoError(t, err)
	require.NotNil(t, second.CompletedAt)
	assert.Equal(t, *first.CompletedAt, *second.CompletedAt, "repeat completion must not move the timestamp")
}

func TestUncompleteClearsTimestamp(t *testing.T) {
	_, templateRepo, _, _, service := newAssignmentFixture()
	template := templateRepo.addTemplate("Count the till", models.CategoryOpening, true)
	created, err := service.Assign(AssignTaskRequest{TemplateID: template.ID, Date: "2025-02-13"})
	require.NoError(t, err)

	_, err = service.Complete(created.ID)
	require.NoError(t, err)

	reopened, err := service.Uncomplete(created.ID)
	require.NoError(t, err)
	assert.False(t, reopened.Completed)
	assert.Nil(t, reopened.CompletedAt)
}

func TestCompleteUnknownTask(t *testing.T) {
	_, _, _, _, service := newAssignmentFixture()

	_, err := service.Complete(42)
	assert.ErrorIs(t, err, ErrTaskNotFound)
	_, err = service.Uncomplete(42)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteAssignedTask(t *testing.T) {
	taskRepo, templateRepo, _, _, service := newAssignmentFixture()
	template := templateRepo.addTemplate("Count the till", models.CategoryOpening, true)
	created, err := service.Assign(AssignTaskRequest{TemplateID: template.ID, Date: "2025-02-13"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteAssignedTask(created.ID))
	assert.Empty(t, taskRepo.tasks)

	err = service.DeleteAssignedTask(created.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
