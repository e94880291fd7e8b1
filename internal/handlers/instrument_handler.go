package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sehat-jiwa/assessment-service/internal/catalog"
)

// InstrumentHandler serves the static assessment catalog.
type InstrumentHandler struct {
	BaseHandler
}

func NewInstrumentHandler(logger *slog.Logger) *InstrumentHandler {
	return &InstrumentHandler{BaseHandler: NewBaseHandler(logger)}
}

// ListInstruments returns every registered instrument.
// GET /api/v1/instruments
func (h *InstrumentHandler) ListInstruments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"instruments": catalog.List()})
}

// GetInstrument returns a single instrument with its questions.
// GET /api/v1/instruments/:instrument_id
func (h *InstrumentHandler) GetInstrument(c *gin.Context) {
	instrumentID := ParseStringIDParam(c, "instrument_id")
	if instrumentID == "" {
		return
	}

	instrument, err := catalog.Get(instrumentID)
	if err != nil {
		h.RespondWithError(c, http.StatusNotFound, ErrorResponse{
			Message: err.Error(),
			Code:    "NOT_FOUND",
		})
		return
	}
	c.JSON(http.StatusOK, instrument)
}
