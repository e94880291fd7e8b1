package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sehat-jiwa/assessment-service/internal/services"
)

// ResultHandler serves stored assessment results and exports.
type ResultHandler struct {
	BaseHandler
	service       services.AssessmentService
	exportService services.ExportService
}

func NewResultHandler(service services.AssessmentService, exportService services.ExportService, logger *slog.Logger) *ResultHandler {
	return &ResultHandler{
		BaseHandler:   NewBaseHandler(logger),
		service:       service,
		exportService: exportService,
	}
}

// GetResult returns the result of a completed attempt.
// GET /api/v1/attempts/:attempt_id/result
func (h *ResultHandler) GetResult(c *gin.Context) {
	attemptID := ParseStringIDParam(c, "attempt_id")
	if attemptID == "" {
		return
	}

	userID, ok := h.extractUserID(c)
	if !ok {
		return
	}

	result, err := h.service.GetResult(c.Request.Context(), attemptID, userID)
	if err != nil {
		h.handleServiceError(c, err, "get_result")
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListResults returns all of the caller's results, newest first.
// GET /api/v1/results
func (h *ResultHandler) ListResults(c *gin.Context) {
	userID, ok := h.extractUserID(c)
	if !ok {
		return
	}

	results, err := h.service.ListResults(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err, "list_results")
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// ExportResults downloads the caller's results as a file.
// GET /api/v1/results/export?format=xlsx|csv
func (h *ResultHandler) ExportResults(c *gin.Context) {
	userID, ok := h.extractUserID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "export_results")

	format := c.DefaultQuery("format", "xlsx")
	var (
		data        []byte
		contentType string
		err         error
	)
	switch format {
	case "xlsx":
		data, err = h.exportService.ExportResultsExcel(c.Request.Context(), userID)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "csv":
		data, err = h.exportService.ExportResultsCSV(c.Request.Context(), userID)
		contentType = "text/csv"
	default:
		h.RespondWithError(c, http.StatusBadRequest, ErrorResponse{
			Message: "format must be xlsx or csv",
			Code:    "INVALID_FORMAT",
		})
		return
	}
	if err != nil {
		h.handleServiceError(c, err, "export_results")
		return
	}

	filename := fmt.Sprintf("assessment-results-%s.%s", time.Now().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
