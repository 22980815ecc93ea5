package services

import (
	"errors"
	"fmt"
	"strings"

	"bar_ops_backend/internal/models"
	"bar_ops_backend/internal/repositories"
)

// --- Custom Service Errors for Task Templates ---
var (
	ErrTemplateNotFound   = errors.New("task template not found")
	ErrTemplateValidation = errors.New("task template validation error")
)

// --- TaskTemplate DTOs ---
type CreateTemplateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateTemplateRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// --- TemplateService Interface ---

// TemplateService is the task template registry: the catalog of reusable
// task definitions. Templates are only ever soft-disabled via is_active.
type TemplateService interface {
	CreateTemplate(req CreateTemplateRequest) (*models.TaskTemplate, error)
	GetTemplateByID(id int64) (*models.TaskTemplate, error)
	GetTemplates(activeOnly bool, category *string) ([]models.TaskTemplate, error)
	UpdateTemplate(id int64, req UpdateTemplateRequest) (*models.TaskTemplate, error)
}

type templateService struct {
	templateRepo repositories.TemplateRepository
	db           repositories.SQLExecutor
}

// NewTemplateService creates a new instance of TemplateService.
func NewTemplateService(templateRepo repositories.TemplateRepository, db repositories.SQLExecutor) TemplateService {
	return &templateService{
		templateRepo: templateRepo,
		db:           db,
	}
}

func (s *templateService) CreateTemplate(req CreateTemplateRequest) (*models.TaskTemplate, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrTemplateValidation)
	}
	if !models.IsValidCategory(req.Category) {
		return nil, fmt.Errorf("%w: unknown category '%s'", ErrTemplateValidation, req.Category)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	template := &models.TaskTemplate{
		Name:        strings.TrimSpace(req.Name),
		Category:    req.Category,
		Description: req.Description,
		IsActive:    isActive,
	}

	created, err := s.templateRepo.CreateTemplate(s.db, template)
	if err != nil {
		return nil, fmt.Errorf("failed to create task template in repository: %w", err)
	}
	return created, nil
}

func (s *templateService) GetTemplateByID(id int64) (*models.TaskTemplate, error) {
	template, err := s.templateRepo.GetTemplateByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get task template by ID: %w", err)
	}
	return template, nil
}

// GetTemplates lists templates ordered by (category, name).
func (s *templateService) GetTemplates(activeOnly bool, category *string) ([]models.TaskTemplate, error) {
	if category != nil && *category != "" && !models.IsValidCategory(*category) {
		return nil, fmt.Errorf("%w: unknown category '%s'", ErrTemplateValidation, *category)
	}

	templates, err := s.templateRepo.GetTemplates(activeOnly, category)
	if err != nil {
		return nil, fmt.Errorf("failed to get task templates: %w", err)
	}
	return templates, nil
}

// UpdateTemplate applies a partial field update and stamps updated_at.
func (s *templateService) UpdateTemplate(id int64, req UpdateTemplateRequest) (*models.TaskTemplate, error) {
	template, err := s.templateRepo.GetTemplateByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to find task template for update: %w", err)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty if provided", ErrTemplateValidation)
		}
		template.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		if !models.IsValidCategory(*req.Category) {
			return nil, fmt.Errorf("%w: unknown category '%s'", ErrTemplateValidation, *req.Category)
		}
		template.Category = *req.Category
	}
	if req.Description != nil {
		template.Description = req.Description
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}

	updated, err := s.templateRepo.UpdateTemplate(s.db, template)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to update task template in repository: %w", err)
	}
	return updated, nil
}
