package handlers

import (
	"net/http"

	portssvc "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/services"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type trackingHandler struct {
	ltaService portssvc.LTAReaderSvc
}

// registerTrackingRoutes exposes the public, unauthenticated tracking view.
// This is the endpoint the QR code printed on the waybill points at.
func registerTrackingRoutes(r *gin.Engine, ltaService portssvc.LTAReaderSvc) {
	h := &trackingHandler{ltaService: ltaService}
	r.GET("/track/:trackingNumber", h.Track)
}

// Track godoc
// @Summary Track a shipment
// @Description Returns the current status and the full status history for a
// @Description shipment, looked up by its public tracking number.
// @Tags tracking
// @Produce json
// @Param trackingNumber path string true "Tracking number"
// @Success 200 {object} dto.TrackingResponse
// @Failure 404 {object} ErrorResponse
// @Router /track/{trackingNumber} [get]
func (h *trackingHandler) Track(c *gin.Context) {
	trackingNumber := c.Param("trackingNumber")

	lta, err := h.ltaService.GetLTAByTrackingNumber(c.Request.Context(), trackingNumber)
	if err != nil {
		respondError(c, err, "Failed to track shipment")
		return
	}
	history, err := h.ltaService.GetStatusHistory(c.Request.Context(), trackingNumber)
	if err != nil {
		respondError(c, err, "Failed to track shipment")
		return
	}

	c.JSON(http.StatusOK, dto.TrackingResponse{
		TrackingNumber: lta.TrackingNumber,
		Status:         lta.Status,
		History:        dto.ToStatusHistoryResponses(history),
	})
}
