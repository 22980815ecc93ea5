package handlers

import (
	"errors"
	"net/http"

	"bar_ops_backend/internal/services"
	"bar_ops_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the shift report service.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// GetShiftReport handles fetching the full report for a shift: the
// shift itself, its assigned tasks and the cash report if one exists.
func (h *ReportHandler) GetShiftReport(c *gin.Context) {
	idStr := c.Param("id")
	id, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid shift ID format.", err.Error()))
		return
	}

	report, err := h.reportService.GetShiftReport(id)
	if err != nil {
		utils.LogError(err, "GetShiftReport: Error from reportService.GetShiftReport for ID "+idStr)
		if errors.Is(err, services.ErrShiftNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Shift not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build shift report.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, report)
}

// SaveCashReport handles creating or replacing the cash report of a shift.
func (h *ReportHandler) SaveCashReport(c *gin.Context) {
	idStr := c.Param("id")
	id, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid shift ID format.", err.Error()))
		return
	}

	var req services.SaveCashReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "SaveCashReport: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	report, err := h.reportService.SaveCashReport(id, req)
	if err != nil {
		utils.LogError(err, "SaveCashReport: Error from reportService.SaveCashReport for shift ID "+idStr)
		if errors.Is(err, services.ErrShiftNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Shift not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to save cash report.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, report)
}
