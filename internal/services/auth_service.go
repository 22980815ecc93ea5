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

// --- Custom Service Errors ---
var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailExists         = errors.New("email already exists")
	ErrTokenGeneration     = errors.New("failed to generate token")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// --- Data Transfer Objects (DTOs) ---

// LoginRequest DTO
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest DTO
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role"` // "admin" or "employee". Defaults to "employee".
}

// RefreshTokenRequest DTO
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse DTO
type AuthResponse struct {
	Employee     *models.Employee `json:"employee"`
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token,omitempty"`
}

// --- AuthService Interface ---
type AuthService interface {
	Register(req RegisterRequest) (*models.Employee, error)
	Login(req LoginRequest) (*AuthResponse, error)
	RefreshToken(req RefreshTokenRequest) (*AuthResponse, error)
	GetProfile(employeeID string) (*models.Employee, error)
}

// --- authService Implementation ---
type authService struct {
	employeeRepo repositories.EmployeeRepository
	db           repositories.SQLExecutor
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(employeeRepo repositories.EmployeeRepository, db repositories.SQLExecutor) AuthService {
	return &authService{
		employeeRepo: employeeRepo,
		db:           db,
	}
}

// Register creates a new employee account with a hashed password.
func (s *authService) Register(req RegisterRequest) (*models.Employee, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleEmployee
	}
	if !models.IsValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role '%s'", ErrEmployeeValidation, req.Role)
	}

	employee := &models.Employee{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		FullName:     strings.TrimSpace(req.FullName),
		Role:         role,
		PasswordHash: string(hashedPasswordBytes),
	}

	created, err := s.employeeRepo.CreateEmployee(s.db, employee)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s", ErrEmailExists, employee.Email)
		}
		return nil, fmt.Errorf("failed to register employee: %w", err)
	}
	created.PasswordHash = ""
	return created, nil
}

// Login verifies the credentials and issues an access/refresh token pair.
func (s *authService) Login(req LoginRequest) (*AuthResponse, error) {
	employee, err := s.employeeRepo.GetEmployeeByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login attempt failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.buildAuthResponse(employee)
}

// RefreshToken exchanges a valid refresh token for a fresh token pair.
func (s *authService) RefreshToken(req RefreshTokenRequest) (*AuthResponse, error) {
	claims, err := utils.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRefreshToken, err)
	}

	employee, err := s.employeeRepo.GetEmployeeByID(claims.EmployeeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("refresh token lookup failed: %w", err)
	}

	return s.buildAuthResponse(employee)
}

// GetProfile retrieves an employee's profile by their ID.
func (s *authService) GetProfile(employeeID string) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetEmployeeByID(employeeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to retrieve employee profile: %w", err)
	}
	employee.PasswordHash = ""
	return employee, nil
}

func (s *authService) buildAuthResponse(employee *models.Employee) (*AuthResponse, error) {
	accessToken, err := utils.GenerateAccessToken(employee.ID, employee.Email, employee.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	refreshToken, err := utils.GenerateRefreshToken(employee.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	employee.PasswordHash = ""
	return &AuthResponse{
		Employee:     employee,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
