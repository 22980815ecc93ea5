package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNoteRejectsBlankContent(t *testing.T) {
	service := NewNoteService(newMockNoteRepository(), nil)

	_, err := service.CreateNote(CreateNoteRequest{Content: "   "})
	assert.ErrorIs(t, err, ErrNoteValidation)
}

func TestNoteArchiveLifecycle(t *testing.T) {
	noteRepo := newMockNoteRepository()
	service := NewNoteService(noteRepo, nil)

	note, err := service.CreateNote(CreateNoteRequest{Content: "Keg delivery moved to Friday"})
	require.NoError(t, err)
	assert.False(t, note.Archived)

	active, err := service.GetNotes(false)
	require.NoError(t, err)
	require.Len(t, active, 1)

	require.NoError(t, service.ArchiveNote(note.ID))

	active, err = service.GetNotes(false)
	require.NoError(t, err)
	assert.Empty(t, active)

	archived, err := service.GetNotes(true)
	require.NoError(t, err)
	require.Len(t, archived, 1)

	require.NoError(t, service.UnarchiveNote(note.ID))
	archived, err = service.GetNotes(true)
	require.NoError(t, err)
	assert.Empty(t, archived)
}

func TestArchiveUnknownNote(t *testing.T) {
	service := NewNoteService(newMockNoteRepository(), nil)
	assert.ErrorIs(t, service.ArchiveNote(42), ErrNoteNotFound)
}

func TestDeleteArchivedNotesOnlyRemovesArchive(t *testing.T) {
	noteRepo := newMockNoteRepository()
	service := NewNoteService(noteRepo, nil)

	keep, err := service.CreateNote(CreateNoteRequest{Content: "Still relevant"})
	require.NoError(t, err)
	gone, err := service.CreateNote(CreateNoteRequest{Content: "Old news"})
	require.NoError(t, err)
	require.NoError(t, service.ArchiveNote(gone.ID))

	deleted, err := service.DeleteArchivedNotes()
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	active, err := service.GetNotes(false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, keep.ID, active[0].ID)
}
