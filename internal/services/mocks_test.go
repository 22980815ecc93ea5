package services

import (
	"time"

	"bar_ops_backend/internal/models"
	"bar_ops_backend/internal/repositories"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockTemplateRepository implements repositories.TemplateRepository for testing.
type mockTemplateRepository struct {
	templates map[int64]*models.TaskTemplate
	nextID    int64
	createErr error
	getErr    error
	listErr   error
	updateErr error
}

func newMockTemplateRepository() *mockTemplateRepository {
	return &mockTemplateRepository{
		templates: make(map[int64]*models.TaskTemplate),
		nextID:    1,
	}
}

func (m *mockTemplateRepository) addTemplate(name, category string, isActive bool) *models.TaskTemplate {
	template := &models.TaskTemplate{
		ID:        m.nextID,
		Name:      name,
		Category:  category,
		IsActive:  isActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.templates[template.ID] = template
	m.nextID++
	return template
}

func (m *mockTemplateRepository) CreateTemplate(executor repositories.SQLExecutor, template *models.TaskTemplate) (*models.TaskTemplate, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	stored := *template
	stored.ID = m.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	m.templates[stored.ID] = &stored
	m.nextID++
	result := stored
	return &result, nil
}

func (m *mockTemplateRepository) GetTemplateByID(id int64) (*models.TaskTemplate, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if template, ok := m.templates[id]; ok {
		result := *template
		return &result, nil
	}
	return nil, repositories.ErrNotFound
}

func (m *mockTemplateRepository) GetTemplates(activeOnly bool, category *string) ([]models.TaskTemplate, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []models.TaskTemplate
	for id := int64(1); id < m.nextID; id++ {
		template, ok := m.templates[id]
		if !ok {
			continue
		}
		if activeOnly && !template.IsActive {
			continue
		}
		if category != nil && *category != "" && template.Category != *category {
			continue
		}
		result = append(result, *template)
	}
	return result, nil
}

func (m *mockTemplateRepository) UpdateTemplate(executor repositories.SQLExecutor, template *models.TaskTemplate) (*models.TaskTemplate, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	if _, ok := m.templates[template.ID]; !ok {
		return nil, repositories.ErrNotFound
	}
	stored := *template
	stored.UpdatedAt = time.Now()
	m.templates[stored.ID] = &stored
	result := stored
	return &result, nil
}

// mockShiftRepository implements repositories.ShiftRepository for testing.
type mockShiftRepository struct {
	shifts    map[int64]*models.Shift
	byDate    map[string]int64
	nextID    int64
	createErr error
	getErr    error
	// missDateOnce makes the next GetShiftByDate miss even when the date
	// exists, to exercise the create-then-lose-the-race fallback.
	missDateOnce bool
}

func newMockShiftRepository() *mockShiftRepository {
	return &mockShiftRepository{
		shifts: make(map[int64]*models.Shift),
		byDate: make(map[string]int64),
		nextID: 1,
	}
}

func (m *mockShiftRepository) addShift(date string) *models.Shift {
	shift := &models.Shift{
		ID:        m.nextID,
		Date:      date,
		Status:    models.ShiftPlanned,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.shifts[shift.ID] = shift
	m.byDate[date] = shift.ID
	m.nextID++
	return shift
}

func (m *mockShiftRepository) CreateShift(executor repositories.SQLExecutor, shift *models.Shift) (*models.Shift, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	if _, exists := m.byDate[shift.Date]; exists {
		return nil, repositories.ErrDuplicateKey
	}
	stored := *shift
	stored.ID = m.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	m.shifts[stored.ID] = &stored
	m.byDate[stored.Date] = stored.ID
	m.nextID++
	result := stored
	return &result, nil
}

func (m *mockShiftRepository) GetShiftByID(id int64) (*models.Shift, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if shift, ok := m.shifts[id]; ok {
		result := *shift
		return &result, nil
	}
	return nil, repositories.ErrNotFound
}

func (m *mockShiftRepository) GetShiftByDate(date string) (*models.Shift, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.missDateOnce {
		m.missDateOnce = false
		return nil, repositories.ErrNotFound
	}
	if id, ok := m.byDate[date]; ok {
		result := *m.shifts[id]
		return &result, nil
	}
	return nil, repositories.ErrNotFound
}

func (m *mockShiftRepository) GetShifts(startDate, endDate string) ([]models.Shift, error) {
	var result []models.Shift
	for id := int64(1); id < m.nextID; id++ {
		shift, ok := m.shifts[id]
		if !ok {
			continue
		}
		if shift.Date < startDate || shift.Date > endDate {
			continue
		}
		result = append(result, *shift)
	}
	return result, nil
}

func (m *mockShiftRepository) UpdateShift(executor repositories.SQLExecutor, shift *models.Shift) (*models.Shift, error) {
	if _, ok := m.shifts[shift.ID]; !ok {
		return nil, repositories.ErrNotFound
	}
	stored := *shift
	stored.UpdatedAt = time.Now()
	m.shifts[stored.ID] = &stored
	result := stored
	return &result, nil
}

func (m *mockShiftRepository) DeleteShift(executor repositories.SQLExecutor, id int64) error {
	shift, ok := m.shifts[id]
	if !ok {
		return repositories.ErrNotFound
	}
	delete(m.byDate, shift.Date)
	delete(m.shifts, id)
	return nil
}

// mockTaskRepository implements repositories.TaskRepository for testing.
// It shares the shift mock so date lookups resolve against its shifts.
type mockTaskRepository struct {
	tasks         map[int64]*models.AssignedTask
	shiftRepo     *mockShiftRepository
	templateRepo  *mockTemplateRepository
	nextID        int64
	createErr     error
	getErr        error
	completionErr error
}

func newMockTaskRepository(shiftRepo *mockShiftRepository, templateRepo *mockTemplateRepository) *mockTaskRepository {
	return &mockTaskRepository{
		tasks:        make(map[int64]*models.AssignedTask),
		shiftRepo:    shiftRepo,
		templateRepo: templateRepo,
		nextID:       1,
	}
}

func (m *mockTaskRepository) joined(task models.AssignedTask) models.AssignedTask {
	if template, ok := m.templateRepo.templates[task.TemplateID]; ok {
		joined := *template
		task.Template = &joined
	}
	return task
}

func (m *mockTaskRepository) CreateAssignedTask(executor repositories.SQLExecutor, task *models.AssignedTask) (*models.AssignedTask, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	for _, existing := range m.tasks {
		if existing.ShiftID == task.ShiftID && existing.TemplateID == task.TemplateID {
			return nil, repositories.ErrDuplicateKey
		}
	}
	stored := *task
	stored.ID = m.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	m.tasks[stored.ID] = &stored
	m.nextID++
	result := stored
	return &result, nil
}

func (m *mockTaskRepository) GetAssignedTaskByID(id int64) (*models.AssignedTask, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if task, ok := m.tasks[id]; ok {
		result := m.joined(*task)
		return &result, nil
	}
	return nil, repositories.ErrNotFound
}

func (m *mockTaskRepository) GetAssignedTasksByDate(date string) ([]models.AssignedTask, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	shiftID, ok := m.shiftRepo.byDate[date]
	if !ok {
		return []models.AssignedTask{}, nil
	}
	return m.GetAssignedTasksByShiftID(shiftID)
}

func (m *mockTaskRepository) GetAssignedTasksByShiftID(shiftID int64) ([]models.AssignedTask, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	result := []models.AssignedTask{}
	for id := int64(1); id < m.nextID; id++ {
		task, ok := m.tasks[id]
		if !ok || task.ShiftID != shiftID {
			continue
		}
		result = append(result, m.joined(*task))
	}
	return result, nil
}

func (m *mockTaskRepository) SetCompletion(executor repositories.SQLExecutor, id int64, completed bool, completedAt *time.Time) error {
	if m.completionErr != nil {
		return m.completionErr
	}
	task, ok := m.tasks[id]
	if !ok {
		return repositories.ErrNotFound
	}
	task.Completed = completed
	task.CompletedAt = completedAt
	task.UpdatedAt = time.Now()
	return nil
}

func (m *mockTaskRepository) DeleteAssignedTask(executor repositories.SQLExecutor, id int64) error {
	if _, ok := m.tasks[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.tasks, id)
	return nil
}

// mockEmployeeRepository implements repositories.EmployeeRepository for testing.
type mockEmployeeRepository struct {
	employees map[string]*models.Employee
	createErr error
	getErr    error
	deleteErr error
}

func newMockEmployeeRepository() *mockEmployeeRepository {
	return &mockEmployeeRepository{
		employees: make(map[string]*models.Employee),
	}
}

func (m *mockEmployeeRepository) addEmployee(id, email, fullName, role string) *models.Employee {
	employee := &models.Employee{
		ID:        id,
		Email:     email,
		FullName:  fullName,
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.employees[id] = employee
	return employee
}

func (m *mockEmployeeRepository) CreateEmployee(executor repositories.SQLExecutor, employee *models.Employee) (*models.Employee, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	for _, existing := range m.employees {
		if existing.Email == employee.Email {
			return nil, repositories.ErrDuplicateKey
		}
	}
	stored := *employee
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	m.employees[stored.ID] = &stored
	result := stored
	return &result, nil
}

func (m *mockEmployeeRepository) GetEmployeeByID(id string) (*models.Employee, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if employee, ok := m.employees[id]; ok {
		result := *employee
		return &result, nil
	}
	return nil, repositories.ErrNotFound
}

func (m *mockEmployeeRepository) GetEmployeeByEmail(email string) (*models.Employee, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, employee := range m.employees {
		if employee.Email == email {
			result := *employee
			return &result, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockEmployeeRepository) GetEmployees() ([]models.Employee, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	result := []models.Employee{}
	for _, employee := range m.employees {
		result = append(result, *employee)
	}
	return result, nil
}

func (m *mockEmployeeRepository) UpdateEmployee(executor repositories.SQLExecutor, employee *models.Employee) (*models.Employee, error) {
	if _, ok := m.employees[employee.ID]; !ok {
		return nil, repositories.ErrNotFound
	}
	stored := *employee
	stored.UpdatedAt = time.Now()
	m.employees[stored.ID] = &stored
	result := stored
	return &result, nil
}

func (m *mockEmployeeRepository) DeleteEmployee(executor repositories.SQLExecutor, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.employees[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.employees, id)
	return nil
}

// mockReportRepository implements repositories.ReportRepository for testing.
type mockReportRepository struct {
	reports   map[int64]*models.CashReport // keyed by shift ID
	nextID    int64
	upsertErr error
	getErr    error
}

func newMockReportRepository() *mockReportRepository {
	return &mockReportRepository{
		reports: make(map[int64]*models.CashReport),
		nextID:  1,
	}
}

func (m *mockReportRepository) UpsertCashReport(executor repositories.SQLExecutor, report *models.CashReport) (*models.CashReport, error) {
	if m.upsertErr != nil {
		return nil, m.upsertErr
	}
	stored := *report
	if existing, ok := m.reports[report.ShiftID]; ok {
		stored.ID = existing.ID
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.ID = m.nextID
		stored.CreatedAt = time.Now()
		m.nextID++
	}
	m.reports[stored.ShiftID] = &stored
	result := stored
	return &result, nil
}

func (m *mockReportRepository) GetCashReportByShiftID(shiftID int64) (*models.CashReport, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if report, ok := m.reports[shiftID]; ok {
		result := *report
		return &result, nil
	}
	return nil, repositories.ErrNotFound
}

// mockNoteRepository implements repositories.NoteRepository for testing.
type mockNoteRepository struct {
	notes     map[int64]*models.Note
	nextID    int64
	createErr error
	listErr   error
}

func newMockNoteRepository() *mockNoteRepository {
	return &mockNoteRepository{
		notes:  make(map[int64]*models.Note),
		nextID: 1,
	}
}

func (m *mockNoteRepository) CreateNote(executor repositories.SQLExecutor, note *models.Note) (*models.Note, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	stored := *note
	stored.ID = m.nextID
	stored.CreatedAt = time.Now()
	m.notes[stored.ID] = &stored
	m.nextID++
	result := stored
	return &result, nil
}

func (m *mockNoteRepository) GetNotes(archived bool) ([]models.Note, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := []models.Note{}
	for id := int64(1); id < m.nextID; id++ {
		note, ok := m.notes[id]
		if !ok || note.Archived != archived {
			continue
		}
		result = append(result, *note)
	}
	return result, nil
}

func (m *mockNoteRepository) SetArchived(executor repositories.SQLExecutor, id int64, archived bool) error {
	note, ok := m.notes[id]
	if !ok {
		return repositories.ErrNotFound
	}
	note.Archived = archived
	return nil
}

func (m *mockNoteRepository) DeleteArchivedNotes(executor repositories.SQLExecutor) (int64, error) {
	var deleted int64
	for id, note := range m.notes {
		if note.Archived {
			delete(m.notes, id)
			deleted++
		}
	}
	return deleted, nil
}
