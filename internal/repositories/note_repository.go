package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bar_ops_backend/internal/models"
)

// NoteRepository defines the interface for staff note database operations.
type NoteRepository interface {
	CreateNote(executor SQLExecutor, note *models.Note) (*models.Note, error)
	GetNotes(archived bool) ([]models.Note, error)
	SetArchived(executor SQLExecutor, id int64, archived bool) error
	DeleteArchivedNotes(executor SQLExecutor) (int64, error)
}

type noteRepository struct {
	db *sql.DB
}

// NewNoteRepository creates a new instance of NoteRepository.
func NewNoteRepository(db *sql.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) CreateNote(executor SQLExecutor, note *models.Note) (*models.Note, error) {
	query := `INSERT INTO notes (content, archived, created_at)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at`

	note.CreatedAt = time.Now()

	err := executor.QueryRow(query, note.Content, note.Archived, note.CreatedAt).
		Scan(&note.ID, &note.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: creating note: %v", ErrDatabaseError, err)
	}
	return note, nil
}

// GetNotes returns active or archived notes, most recent first.
func (r *noteRepository) GetNotes(archived bool) ([]models.Note, error) {
	notes := []models.Note{}
	query := `SELECT id, content, archived, created_at
	          FROM notes WHERE archived = $1
	          ORDER BY created_at DESC`

	rows, err := r.db.Query(query, archived)
	if err != nil {
		return nil, fmt.Errorf("%w: querying notes: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.Content, &note.Archived, &note.CreatedAt); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("%w: scanning note: %v", ErrDatabaseError, err)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating note rows: %v", ErrDatabaseError, err)
	}
	return notes, nil
}

func (r *noteRepository) SetArchived(executor SQLExecutor, id int64, archived bool) error {
	query := `UPDATE notes SET archived = $1 WHERE id = $2`
	result, err := executor.Exec(query, archived, id)
	if err != nil {
		return fmt.Errorf("%w: archiving note ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteArchivedNotes removes every archived note and returns how many
// rows were deleted. Deleting zero rows is not an error.
func (r *noteRepository) DeleteArchivedNotes(executor SQLExecutor) (int64, error) {
	query := `DELETE FROM notes WHERE archived = TRUE`
	result, err := executor.Exec(query)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting archived notes: %v", ErrDatabaseError, err)
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}
