package handlers

import (
	"errors"
	"net/http"

	"bar_ops_backend/internal/services"
	"bar_ops_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// TemplateHandler holds the task template service.
type TemplateHandler struct {
	templateService services.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(ts services.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: ts}
}

// CreateTemplate handles the creation of a new task template.
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req services.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateTemplate: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	template, err := h.templateService.CreateTemplate(req)
	if err != nil {
		utils.LogError(err, "CreateTemplate: Error from templateService.CreateTemplate")
		if errors.Is(err, services.ErrTemplateValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create task template.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, template)
}

// GetTemplates handles fetching task templates ordered by (category, name).
// Supports ?active=true to filter disabled templates and ?category= to
// restrict to one category.
func (h *TemplateHandler) GetTemplates(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	category := utils.NewNullString(c.Query("category"))

	templates, err := h.templateService.GetTemplates(activeOnly, category)
	if err != nil {
		utils.LogError(err, "GetTemplates: Error from templateService.GetTemplates")
		if errors.Is(err, services.ErrTemplateValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch task templates.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, templates)
}

// GetTemplateByID handles fetching a single task template by ID.
func (h *TemplateHandler) GetTemplateByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid task template ID format.", err.Error()))
		return
	}

	template, err := h.templateService.GetTemplateByID(id)
	if err != nil {
		utils.LogError(err, "GetTemplateByID: Error from templateService.GetTemplateByID for ID "+idStr)
		if errors.Is(err, services.ErrTemplateNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Task template not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch task template.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, template)
}

// UpdateTemplate handles a partial update of a task template.
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	idStr := c.Param("id")
	id, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid task template ID format.", err.Error()))
		return
	}

	var req services.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateTemplate: Failed to bind JSON for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	template, err := h.templateService.UpdateTemplate(id, req)
	if err != nil {
		utils.LogError(err, "UpdateTemplate: Error from templateService.UpdateTemplate for ID "+idStr)
		if errors.Is(err, services.ErrTemplateNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Task template not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrTemplateValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update task template.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, template)
}
