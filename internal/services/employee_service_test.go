package services

import (
	"testing"

	"bar_ops_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployeeNormalizesAndHidesHash(t *testing.T) {
	employeeRepo := newMockEmployeeRepository()
	service := NewEmployeeService(employeeRepo, nil)

	created, err := service.CreateEmployee(CreateEmployeeRequest{
		Email:    "  Nora@Example.COM ",
		FullName: " Nora Quist ",
		Role:     models.RoleEmployee,
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "nora@example.com", created.Email)
	assert.Equal(t, "Nora Quist", created.FullName)
	assert.Empty(t, created.PasswordHash, "hash never leaves the service")
	assert.NotEmpty(t, created.ID)

	stored := employeeRepo.employees[created.ID]
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.PasswordHash, "hash is persisted")
	assert.NotEqual(t, "correct-horse", stored.PasswordHash)
}

func TestCreateEmployeeValidation(t *testing.T) {
	service := NewEmployeeService(newMockEmployeeRepository(), nil)

	_, err := service.CreateEmployee(CreateEmployeeRequest{
		Email: "nora@example.com", FullName: "Nora", Role: "owner", Password: "correct-horse",
	})
	assert.ErrorIs(t, err, ErrEmployeeValidation)

	_, err = service.CreateEmployee(CreateEmployeeRequest{
		Email: "not-an-email", FullName: "Nora", Role: models.RoleEmployee, Password: "correct-horse",
	})
	assert.ErrorIs(t, err, ErrEmployeeValidation)
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	employeeRepo := newMockEmployeeRepository()
	service := NewEmployeeService(employeeRepo, nil)
	employeeRepo.addEmployee("emp-1", "nora@example.com", "Nora Quist", models.RoleEmployee)

	_, err := service.CreateEmployee(CreateEmployeeRequest{
		Email: "nora@example.com", FullName: "Other Nora", Role: models.RoleEmployee, Password: "correct-horse",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestUpdateEmployeeRole(t *testing.T) {
	employeeRepo := newMockEmployeeRepository()
	service := NewEmployeeService(employeeRepo, nil)
	employeeRepo.addEmployee("emp-1", "nora@example.com", "Nora Quist", models.RoleEmployee)

	role := models.RoleAdmin
	updated, err := service.UpdateEmployee("emp-1", UpdateEmployeeRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)

	bogus := "owner"
	_, err = service.UpdateEmployee("emp-1", UpdateEmployeeRequest{Role: &bogus})
	assert.ErrorIs(t, err, ErrEmployeeValidation)
}

func TestDeleteEmployeeInUse(t *testing.T) {
	employeeRepo := newMockEmployeeRepository()
	service := NewEmployeeService(employeeRepo, nil)
	employeeRepo.addEmployee("emp-1", "nora@example.com", "Nora Quist", models.RoleEmployee)
	employeeRepo.deleteErr = ErrEmployeeInUse

	err := service.DeleteEmployee("emp-1")
	assert.ErrorIs(t, err, ErrEmployeeInUse)
}

func TestDeleteEmployeeNotFound(t *testing.T) {
	service := NewEmployeeService(newMockEmployeeRepository(), nil)
	assert.ErrorIs(t, service.DeleteEmployee("emp-ghost"), ErrEmployeeNotFound)
}
