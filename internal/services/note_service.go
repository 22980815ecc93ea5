package services

import (
	"errors"
	"fmt"
	"strings"

	"bar_ops_backend/internal/models"
	"bar_ops_backend/internal/repositories"
)

// --- Custom Service Errors for Notes ---
var (
	ErrNoteNotFound   = errors.New("note not found")
	ErrNoteValidation = errors.New("note validation error")
)

// --- Note DTOs ---
type CreateNoteRequest struct {
	Content string `json:"content" binding:"required"`
}

// --- NoteService Interface ---
type NoteService interface {
	CreateNote(req CreateNoteRequest) (*models.Note, error)
	GetNotes(archived bool) ([]models.Note, error)
	ArchiveNote(id int64) error
	UnarchiveNote(id int64) error
	DeleteArchivedNotes() (int64, error)
}

type noteService struct {
	noteRepo repositories.NoteRepository
	db       repositories.SQLExecutor
}

// NewNoteService creates a new instance of NoteService.
func NewNoteService(noteRepo repositories.NoteRepository, db repositories.SQLExecutor) NoteService {
	return &noteService{
		noteRepo: noteRepo,
		db:       db,
	}
}

func (s *noteService) CreateNote(req CreateNoteRequest) (*models.Note, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", ErrNoteValidation)
	}

	note := &models.Note{
		Content:  req.Content,
		Archived: false,
	}

	created, err := s.noteRepo.CreateNote(s.db, note)
	if err != nil {
		return nil, fmt.Errorf("failed to create note in repository: %w", err)
	}
	return created, nil
}

func (s *noteService) GetNotes(archived bool) ([]models.Note, error) {
	notes, err := s.noteRepo.GetNotes(archived)
	if err != nil {
		return nil, fmt.Errorf("failed to get notes: %w", err)
	}
	return notes, nil
}

func (s *noteService) ArchiveNote(id int64) error {
	return s.setArchived(id, true)
}

func (s *noteService) UnarchiveNote(id int64) error {
	return s.setArchived(id, false)
}

func (s *noteService) setArchived(id int64, archived bool) error {
	err := s.noteRepo.SetArchived(s.db, id, archived)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("failed to update note archive state: %w", err)
	}
	return nil
}

// DeleteArchivedNotes permanently removes every archived note.
func (s *noteService) DeleteArchivedNotes() (int64, error) {
	deleted, err := s.noteRepo.DeleteArchivedNotes(s.db)
	if err != nil {
		return 0, fmt.Errorf("failed to delete archived notes: %w", err)
	}
	return deleted, nil
}
