package handlers

import (
	"net/http"

	portssvc "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/services"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type ltaHandler struct {
	ltaService portssvc.LTASvcFacade
}

func registerLTARoutes(rg *gin.RouterGroup, ltaService portssvc.LTASvcFacade, paymentService portssvc.LTAPaymentSvcFacade) {
	h := &ltaHandler{ltaService: ltaService}

	ltas := rg.Group("/ltas")
	{
		ltas.POST("", h.CreateLTA)
		ltas.GET("", h.ListLTAs)
		ltas.GET("/:ltaID", h.GetLTA)
		ltas.PUT("/:ltaID/status", h.UpdateStatus)

		registerPaymentRoutes(ltas, paymentService)
	}
}

// CreateLTA godoc
// @Summary Create an air waybill
// @Description Creates an LTA, calculates its cost from the active tariff (or
// @Description the flat default rate) and posts the receivable accounting
// @Description entry. A posting failure never rolls the LTA back; it is
// @Description reported in postingWarning.
// @Tags ltas
// @Accept json
// @Produce json
// @Param lta body dto.CreateLTARequest true "LTA info"
// @Success 201 {object} dto.CreateLTAResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ltas [post]
func (h *ltaHandler) CreateLTA(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req dto.CreateLTARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	result, err := h.ltaService.CreateLTA(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create LTA")
		return
	}
	c.JSON(http.StatusCreated, dto.CreateLTAResponse{
		LTAResponse:    dto.ToLTAResponse(&result.LTA),
		PostingWarning: result.PostingWarning,
	})
}

// GetLTA godoc
// @Summary Get an air waybill
// @Tags ltas
// @Produce json
// @Param ltaID path string true "LTA ID"
// @Success 200 {object} dto.LTAResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /ltas/{ltaID} [get]
func (h *ltaHandler) GetLTA(c *gin.Context) {
	lta, err := h.ltaService.GetLTAByID(c.Request.Context(), c.Param("ltaID"))
	if err != nil {
		respondError(c, err, "Failed to get LTA")
		return
	}
	c.JSON(http.StatusOK, dto.ToLTAResponse(lta))
}

// ListLTAs godoc
// @Summary List air waybills
// @Tags ltas
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.ListLTAsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /ltas [get]
func (h *ltaHandler) ListLTAs(c *gin.Context) {
	var params dto.ListLTAsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	ltas, err := h.ltaService.ListLTAs(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list LTAs")
		return
	}
	responses := make([]dto.LTAResponse, len(ltas))
	for i := range ltas {
		responses[i] = dto.ToLTAResponse(&ltas[i])
	}
	c.JSON(http.StatusOK, dto.ListLTAsResponse{LTAs: responses})
}

// UpdateStatus godoc
// @Summary Transition an air waybill
// @Description Moves the LTA to the requested status. Illegal transitions are
// @Description rejected with 409.
// @Tags ltas
// @Accept json
// @Produce json
// @Param ltaID path string true "LTA ID"
// @Param status body dto.UpdateLTAStatusRequest true "Target status"
// @Success 200 {object} dto.LTAResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /ltas/{ltaID}/status [put]
func (h *ltaHandler) UpdateStatus(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateLTAStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	lta, err := h.ltaService.UpdateStatus(c.Request.Context(), c.Param("ltaID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update LTA status")
		return
	}
	c.JSON(http.StatusOK, dto.ToLTAResponse(lta))
}
