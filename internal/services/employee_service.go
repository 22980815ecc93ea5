package services

import (
	"errors"
	"fmt"
	"strings"

	"bar_ops_backend/internal/models"
	"bar_ops_backend/internal/repositories"
	"bar_ops_backend/pkg/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors for Employees ---
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeValidation = errors.New("employee data validation error")
	ErrEmployeeInUse      = errors.New("employee cannot be deleted as they are referenced in other records")
)

// --- Employee DTOs ---
type CreateEmployeeRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateEmployeeRequest struct {
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	Role     *string `json:"role"`
}

// --- EmployeeService Interface ---
type EmployeeService interface {
	CreateEmployee(req CreateEmployeeRequest) (*models.Employee, error)
	GetEmployeeByID(id string) (*models.Employee, error)
	GetEmployees() ([]models.Employee, error)
	UpdateEmployee(id string, req UpdateEmployeeRequest) (*models.Employee, error)
	DeleteEmployee(id string) error
}

type employeeService struct {
	employeeRepo repositories.EmployeeRepository
	db           repositories.SQLExecutor
}

// NewEmployeeService creates a new instance of EmployeeService.
func NewEmployeeService(employeeRepo repositories.EmployeeRepository, db repositories.SQLExecutor) EmployeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
		db:           db,
	}
}

func (s *employeeService) CreateEmployee(req CreateEmployeeRequest) (*models.Employee, error) {
	if !models.IsValidRole(req.Role) {
		return nil, fmt.Errorf("%w: unknown role '%s'", ErrEmployeeValidation, req.Role)
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: invalid email '%s'", ErrEmployeeValidation, req.Email)
	}
	if utils.IsEmpty(req.FullName) {
		return nil, fmt.Errorf("%w: full name cannot be empty", ErrEmployeeValidation)
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	employee := &models.Employee{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		FullName:     strings.TrimSpace(req.FullName),
		Role:         req.Role,
		PasswordHash: string(hashedPasswordBytes),
	}

	created, err := s.employeeRepo.CreateEmployee(s.db, employee)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s", ErrEmailExists, employee.Email)
		}
		return nil, fmt.Errorf("failed to create employee in repository: %w", err)
	}
	created.PasswordHash = ""
	return created, nil
}

func (s *employeeService) GetEmployeeByID(id string) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetEmployeeByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by ID: %w", err)
	}
	employee.PasswordHash = ""
	return employee, nil
}

func (s *employeeService) GetEmployees() ([]models.Employee, error) {
	employees, err := s.employeeRepo.GetEmployees()
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	for i := range employees {
		employees[i].PasswordHash = ""
	}
	return employees, nil
}

func (s *employeeService) UpdateEmployee(id string, req UpdateEmployeeRequest) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetEmployeeByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee for update: %w", err)
	}

	if req.Email != nil {
		if !utils.IsValidEmail(*req.Email) {
			return nil, fmt.Errorf("%w: invalid email '%s'", ErrEmployeeValidation, *req.Email)
		}
		employee.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.FullName != nil {
		if utils.IsEmpty(*req.FullName) {
			return nil, fmt.Errorf("%w: full name cannot be empty if provided", ErrEmployeeValidation)
		}
		employee.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Role != nil {
		if !models.IsValidRole(*req.Role) {
			return nil, fmt.Errorf("%w: unknown role '%s'", ErrEmployeeValidation, *req.Role)
		}
		employee.Role = *req.Role
	}

	updated, err := s.employeeRepo.UpdateEmployee(s.db, employee)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s", ErrEmailExists, employee.Email)
		}
		return nil, fmt.Errorf("failed to update employee in repository: %w", err)
	}
	updated.PasswordHash = ""
	return updated, nil
}

func (s *employeeService) DeleteEmployee(id string) error {
	_, err := s.employeeRepo.GetEmployeeByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to find employee for deletion: %w", err)
	}

	err = s.employeeRepo.DeleteEmployee(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEmployeeNotFound
		}
		if strings.Contains(err.Error(), "referenced in other records") {
			return ErrEmployeeInUse
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
