package handlers

import (
	"errors"
	"net/http"

	"bar_ops_backend/internal/services"
	"bar_ops_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// NoteHandler holds the staff note service.
type NoteHandler struct {
	noteService services.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(ns services.NoteService) *NoteHandler {
	return &NoteHandler{noteService: ns}
}

// CreateNote handles posting a new staff note.
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req services.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateNote: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	note, err := h.noteService.CreateNote(req)
	if err != nil {
		utils.LogError(err, "CreateNote: Error from noteService.CreateNote")
		if errors.Is(err, services.ErrNoteValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create note.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, note)
}

// GetNotes handles listing notes, active by default or archived with
// ?archived=true.
func (h *NoteHandler) GetNotes(c *gin.Context) {
	archived := c.Query("archived") == "true"

	notes, err := h.noteService.GetNotes(archived)
	if err != nil {
		utils.LogError(err, "GetNotes: Error from noteService.GetNotes")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch notes.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, notes)
}

// ArchiveNote handles moving an active note into the archive.
func (h *NoteHandler) ArchiveNote(c *gin.Context) {
	h.setArchived(c, true)
}

// UnarchiveNote handles restoring an archived note.
func (h *NoteHandler) UnarchiveNote(c *gin.Context) {
	h.setArchived(c, false)
}

func (h *NoteHandler) setArchived(c *gin.Context, archived bool) {
	idStr := c.Param("id")
	id, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid note ID format.", err.Error()))
		return
	}

	if archived {
		err = h.noteService.ArchiveNote(id)
	} else {
		err = h.noteService.UnarchiveNote(id)
	}
	if err != nil {
		utils.LogError(err, "SetArchived: Error from noteService for ID "+idStr)
		if errors.Is(err, services.ErrNoteNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Note not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update note.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note updated successfully"})
}

// DeleteArchivedNotes handles clearing the note archive.
func (h *NoteHandler) DeleteArchivedNotes(c *gin.Context) {
	deleted, err := h.noteService.DeleteArchivedNotes()
	if err != nil {
		utils.LogError(err, "DeleteArchivedNotes: Error from noteService.DeleteArchivedNotes")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete archived notes.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Archived notes deleted successfully", "deleted": deleted})
}
