package handlers

import (
	"net/http"

	portssvc "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/services"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type tariffHandler struct {
	tariffService portssvc.TariffSvcFacade
}

func registerTariffRoutes(rg *gin.RouterGroup, tariffService portssvc.TariffSvcFacade) {
	h := &tariffHandler{tariffService: tariffService}

	tariffs := rg.Group("/tariffs")
	{
		tariffs.POST("", h.CreateTariff)
		tariffs.GET("", h.ListTariffs)
		tariffs.GET("/quote", h.QuoteCost)
		tariffs.GET("/:tariffID", h.GetTariff)
		tariffs.PUT("/:tariffID", h.UpdateTariff)
	}
}

// CreateTariff godoc
// @Summary Create a route tariff
// @Description Defines the per-kg rate for a route over a validity window.
// @Tags tariffs
// @Accept json
// @Produce json
// @Param tariff body dto.CreateTariffRequest true "Tariff info"
// @Success 201 {object} dto.TariffResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /tariffs [post]
func (h *tariffHandler) CreateTariff(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req dto.CreateTariffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	tariff, err := h.tariffService.CreateTariff(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create tariff")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTariffResponse(tariff))
}

// GetTariff godoc
// @Summary Get a tariff
// @Tags tariffs
// @Produce json
// @Param tariffID path string true "Tariff ID"
// @Success 200 {object} dto.TariffResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tariffs/{tariffID} [get]
func (h *tariffHandler) GetTariff(c *gin.Context) {
	tariff, err := h.tariffService.GetTariffByID(c.Request.Context(), c.Param("tariffID"))
	if err != nil {
		respondError(c, err, "Failed to get tariff")
		return
	}
	c.JSON(http.StatusOK, dto.ToTariffResponse(tariff))
}

// ListTariffs godoc
// @Summary List tariffs
// @Tags tariffs
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListTariffsResponse
// @Security BearerAuth
// @Router /tariffs [get]
func (h *tariffHandler) ListTariffs(c *gin.Context) {
	var params dto.ListTariffsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	tariffs, err := h.tariffService.ListTariffs(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list tariffs")
		return
	}
	responses := make([]dto.TariffResponse, len(tariffs))
	for i := range tariffs {
		responses[i] = dto.ToTariffResponse(&tariffs[i])
	}
	c.JSON(http.StatusOK, dto.ListTariffsResponse{Tariffs: responses})
}

// UpdateTariff godoc
// @Summary Update a tariff
// @Description Updates the provided fields; omitted fields stay unchanged.
// @Tags tariffs
// @Accept json
// @Produce json
// @Param tariffID path string true "Tariff ID"
// @Param tariff body dto.UpdateTariffRequest true "Fields to update"
// @Success 200 {object} dto.TariffResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tariffs/{tariffID} [put]
func (h *tariffHandler) UpdateTariff(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateTariffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	tariff, err := h.tariffService.UpdateTariff(c.Request.Context(), c.Param("tariffID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update tariff")
		return
	}
	c.JSON(http.StatusOK, dto.ToTariffResponse(tariff))
}

// QuoteCost godoc
// @Summary Quote a shipment cost
// @Description Computes the cost for a route and weight. Falls back to the
// @Description flat default rate when no tariff covers the route.
// @Tags tariffs
// @Produce json
// @Param originCityID query string true "Origin city ID"
// @Param destinationCityID query string true "Destination city ID"
// @Param weightKg query number true "Chargeable weight in kg"
// @Success 200 {object} dto.CostQuoteResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /tariffs/quote [get]
func (h *tariffHandler) QuoteCost(c *gin.Context) {
	var params dto.CostQuoteParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	cost, tariffApplied, err := h.tariffService.CalculateCost(c.Request.Context(), params.OriginCityID, params.DestinationCityID, params.WeightKg)
	if err != nil {
		respondError(c, err, "Failed to quote cost")
		return
	}
	c.JSON(http.StatusOK, dto.CostQuoteResponse{
		OriginCityID:      params.OriginCityID,
		DestinationCityID: params.DestinationCityID,
		WeightKg:          params.WeightKg,
		Cost:              cost,
		TariffApplied:     tariffApplied,
	})
}
