package handlers

import (
	"errors"
	"net/http"

	"bar_ops_backend/internal/models"
	"bar_ops_backend/internal/services"
	"bar_ops_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler holds the task assignment service.
type AssignmentHandler struct {
	assignmentService services.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(as services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: as}
}

// GetDailyTasks handles fetching the task board for a date: active
// templates grouped by category plus the date's assignments.
func (h *AssignmentHandler) GetDailyTasks(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.RespondValidationFailed(c, "date query parameter is required")
		return
	}

	board, err := h.assignmentService.ListForDate(date)
	if err != nil {
		utils.LogError(err, "GetDailyTasks: Error from assignmentService.ListForDate for date "+date)
		if errors.Is(err, services.ErrDateFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch daily tasks.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, board)
}

// AssignTask handles assigning a task template to a date (and optionally
// an employee), creating the date's shift on demand.
func (h *AssignmentHandler) AssignTask(c *gin.Context) {
	var req services.AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "AssignTask: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	task, err := h.assignmentService.Assign(req)
	if err != nil {
		utils.LogError(err, "AssignTask: Error from assignmentService.Assign")
		if errors.Is(err, services.ErrTemplateNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Task template not found.", err.Error()))
		} else if errors.Is(err, services.ErrEmployeeNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Employee for assignment not found.", err.Error()))
		} else if errors.Is(err, services.ErrTemplateInactive) || errors.Is(err, services.ErrDateFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else if errors.Is(err, services.ErrTaskAlreadyAssigned) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Template is already assigned on this date.", err.Error()))
		} else if errors.Is(err, services.ErrShiftResolution) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to resolve shift for date.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to assign task.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, task)
}

// CompleteTask handles marking an assigned task as done.
func (h *AssignmentHandler) CompleteTask(c *gin.Context) {
	h.setCompletion(c, true)
}

// UncompleteTask handles reopening a completed assigned task.
func (h *AssignmentHandler) UncompleteTask(c *gin.Context) {
	h.setCompletion(c, false)
}

func (h *AssignmentHandler) setCompletion(c *gin.Context, completed bool) {
	idStr := c.Param("id")
	id, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid assigned task ID format.", err.Error()))
		return
	}

	var task *models.AssignedTask
	if completed {
		task, err = h.assignmentService.Complete(id)
	} else {
		task, err = h.assignmentService.Uncomplete(id)
	}
	if err != nil {
		utils.LogError(err, "SetCompletion: Error from assignmentService for ID "+idStr)
		if errors.Is(err, services.ErrTaskNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Assigned task not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update assigned task.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteAssignedTask handles the administrative removal of an assignment.
func (h *AssignmentHandler) DeleteAssignedTask(c *gin.Context) {
	idStr := c.Param("id")
	id, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid assigned task ID format.", err.Error()))
		return
	}

	err = h.assignmentService.DeleteAssignedTask(id)
	if err != nil {
		utils.LogError(err, "DeleteAssignedTask: Error from assignmentService.DeleteAssignedTask for ID "+idStr)
		if errors.Is(err, services.ErrTaskNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Assigned task not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete assigned task.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assigned task deleted successfully"})
}
