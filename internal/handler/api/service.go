package api

import (
	"errors"
	"net/http"

	reqdto "petboard/internal/handler/dto/request"
	resdto "petboard/internal/handler/dto/response"
	"petboard/internal/handler/httperr"
	"petboard/internal/handler/middleware"
	"petboard/internal/usecase/commands"
	"petboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ServiceHandler struct {
	serviceCommands commands.ServiceCommands
	serviceQueries  queries.ServiceQueries
}

func NewServiceHandler(serviceCommands commands.ServiceCommands, serviceQueries queries.ServiceQueries) *ServiceHandler {
	return &ServiceHandler{
		serviceCommands: serviceCommands,
		serviceQueries:  serviceQueries,
	}
}

// @Summary Search the service catalog
// @Description Filters are optional and combine conjunctively.
// @Tags services
// @Produce json
// @Param location query string false "Substring match on location"
// @Param type query string false "Exact service type"
// @Param max_price query number false "Price ceiling; unpriced services are excluded"
// @Success 200 {array} resdto.ServiceResponse
// @Router /services [get]
func (h *ServiceHandler) SearchServices(c *gin.Context) {
	var q reqdto.ServiceSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	views, err := h.serviceQueries.Search(c.Request.Context(), queries.ServiceFilters{
		Location: q.Location,
		Type:     q.Type,
		MaxPrice: q.MaxPrice,
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary Get a service
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} map[string]string
// @Router /services/{id} [get]
func (h *ServiceHandler) GetService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service ID", nil)
		return
	}

	view, err := h.serviceQueries.GetByID(c.Request.Context(), serviceID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Publish a boarding service
// @Tags services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 201 {object} resdto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Router /services [post]
func (h *ServiceHandler) CreateService(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Not authenticated", nil)
		return
	}

	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.serviceCommands.Create(c.Request.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromServiceView(view))
}

// @Summary Update a boarding service
// @Description Full replacement; omitted price or capacity clears the field.
// @Tags services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id} [put]
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Not authenticated", nil)
		return
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service ID", nil)
		return
	}

	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.serviceCommands.Update(c.Request.Context(), actor, serviceID, req)
	if err != nil {
		h.writeServiceCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Remove a boarding service
// @Description Deletes the service and every reservation booked on it.
// @Tags services
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id} [delete]
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Not authenticated", nil)
		return
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service ID", nil)
		return
	}

	if err := h.serviceCommands.Delete(c.Request.Context(), actor, serviceID); err != nil {
		h.writeServiceCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List reservations booked on my service
// @Tags services
// @Security BearerAuth
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id}/reservations [get]
func (h *ServiceHandler) ListServiceReservations(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Not authenticated", nil)
		return
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service ID", nil)
		return
	}

	views, err := h.serviceQueries.ListReservations(c.Request.Context(), actor, serviceID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
		case errors.Is(err, queries.ErrNotServiceOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Service belongs to another provider", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Check availability for a date range
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Param start_date query string true "First day (2006-01-02)"
// @Param end_date query string true "Last day, inclusive (2006-01-02)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id}/availability [get]
func (h *ServiceHandler) GetAvailability(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service ID", nil)
		return
	}

	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "start_date and end_date are required", nil)
		return
	}

	dates, err := q.ToDateRange()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		return
	}

	view, err := h.serviceQueries.Availability(c.Request.Context(), serviceID, dates)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view, q.StartDate, q.EndDate))
}

func (h *ServiceHandler) writeServiceCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
	case errors.Is(err, commands.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
	case errors.Is(err, commands.ErrNotServiceOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Service belongs to another provider", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
