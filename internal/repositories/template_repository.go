package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"bar_ops_backend/internal/models"
)

// TemplateRepository defines the interface for task template database operations.
type TemplateRepository interface {
	CreateTemplate(executor SQLExecutor, template *models.TaskTemplate) (*models.TaskTemplate, error)
	GetTemplateByID(id int64) (*models.TaskTemplate, error)
	GetTemplates(activeOnly bool, category *string) ([]models.TaskTemplate, error)
	UpdateTemplate(executor SQLExecutor, template *models.TaskTemplate) (*models.TaskTemplate, error)
}

type templateRepository struct {
	db *sql.DB
}

// NewTemplateRepository creates a new instance of TemplateRepository.
func NewTemplateRepository(db *sql.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) CreateTemplate(executor SQLExecutor, template *models.TaskTemplate) (*models.TaskTemplate, error) {
	query := `INSERT INTO task_templates (name, category, description, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at, updated_at`

	currentTime := time.Now()
	template.CreatedAt = currentTime
	template.UpdatedAt = currentTime

	err := executor.QueryRow(query,
		template.Name, template.Category, template.Description, template.IsActive,
		template.CreatedAt, template.UpdatedAt,
	).Scan(&template.ID, &template.CreatedAt, &template.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("%w: creating task template: %v", ErrDatabaseError, err)
	}
	return template, nil
}

func scanTemplateRow(row scanner) (*models.TaskTemplate, error) {
	var template models.TaskTemplate
	var description sql.NullString

	err := row.Scan(
		&template.ID, &template.Name, &template.Category, &description,
		&template.IsActive, &template.CreatedAt, &template.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning task template: %v", ErrDatabaseError, err)
	}
	if description.Valid {
		template.Description = &description.String
	}
	return &template, nil
}

func (r *templateRepository) GetTemplateByID(id int64) (*models.TaskTemplate, error) {
	query := `SELECT id, name, category, description, is_active, created_at, updated_at
	          FROM task_templates WHERE id = $1`
	return scanTemplateRow(r.db.QueryRow(query, id))
}

// GetTemplates returns templates ordered by (category, name). When activeOnly
// is set, disabled templates are filtered out.
func (r *templateRepository) GetTemplates(activeOnly bool, category *string) ([]models.TaskTemplate, error) {
	templates := []models.TaskTemplate{}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT id, name, category, description, is_active, created_at, updated_at
	  FROM task_templates`)

	var conditions []string
	var args []interface{}
	argCount := 1

	if activeOnly {
		conditions = append(conditions, "is_active = TRUE")
	}
	if category != nil && *category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argCount))
		args = append(args, *category)
		argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY category ASC, name ASC")

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying task templates: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		template, err := scanTemplateRow(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, *template)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating task template rows: %v", ErrDatabaseError, err)
	}
	return templates, nil
}

func (r *templateRepository) UpdateTemplate(executor SQLExecutor, template *models.TaskTemplate) (*models.TaskTemplate, error) {
	query := `UPDATE task_templates SET name = $1, category = $2, description = $3, is_active = $4, updated_at = $5
	          WHERE id = $6
	          RETURNING updated_at`

	template.UpdatedAt = time.Now()

	err := executor.QueryRow(query,
		template.Name, template.Category, template.Description, template.IsActive,
		template.UpdatedAt, template.ID,
	).Scan(&template.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: updating task template ID %d: %v", ErrDatabaseError, template.ID, err)
	}
	return template, nil
}
