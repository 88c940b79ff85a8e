package handlers

import (
	"net/http"

	portssvc "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/services"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type cityHandler struct {
	cityService portssvc.CitySvcFacade
}

func registerCityRoutes(rg *gin.RouterGroup, cityService portssvc.CitySvcFacade) {
	h := &cityHandler{cityService: cityService}

	cities := rg.Group("/cities")
	{
		cities.POST("", h.CreateCity)
		cities.GET("", h.ListCities)
		cities.GET("/:cityID", h.GetCity)
		cities.PUT("/:cityID", h.UpdateCity)
	}
}

// CreateCity godoc
// @Summary Create a city
// @Description Adds a city served by the network. IATA codes are unique.
// @Tags cities
// @Accept json
// @Produce json
// @Param city body dto.CreateCityRequest true "City info"
// @Success 201 {object} dto.CityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "IATA code already registered"
// @Security BearerAuth
// @Router /cities [post]
func (h *cityHandler) CreateCity(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req dto.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	city, err := h.cityService.CreateCity(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create city")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCityResponse(city))
}

// GetCity godoc
// @Summary Get a city
// @Tags cities
// @Produce json
// @Param cityID path string true "City ID"
// @Success 200 {object} dto.CityResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cities/{cityID} [get]
func (h *cityHandler) GetCity(c *gin.Context) {
	city, err := h.cityService.GetCityByID(c.Request.Context(), c.Param("cityID"))
	if err != nil {
		respondError(c, err, "Failed to get city")
		return
	}
	c.JSON(http.StatusOK, dto.ToCityResponse(city))
}

// ListCities godoc
// @Summary List cities
// @Tags cities
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListCitiesResponse
// @Security BearerAuth
// @Router /cities [get]
func (h *cityHandler) ListCities(c *gin.Context) {
	var params dto.ListCitiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	cities, err := h.cityService.ListCities(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list cities")
		return
	}
	responses := make([]dto.CityResponse, len(cities))
	for i := range cities {
		responses[i] = dto.ToCityResponse(&cities[i])
	}
	c.JSON(http.StatusOK, dto.ListCitiesResponse{Cities: responses})
}

// UpdateCity godoc
// @Summary Update a city
// @Description Updates the provided fields; omitted fields stay unchanged.
// @Tags cities
// @Accept json
// @Produce json
// @Param cityID path string true "City ID"
// @Param city body dto.UpdateCityRequest true "Fields to update"
// @Success 200 {object} dto.CityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cities/{cityID} [put]
func (h *cityHandler) UpdateCity(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	city, err := h.cityService.UpdateCity(c.Request.Context(), c.Param("cityID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update city")
		return
	}
	c.JSON(http.StatusOK, dto.ToCityResponse(city))
}
