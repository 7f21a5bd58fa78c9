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

type PetHandler struct {
	petCommands commands.PetCommands
	petQueries  queries.PetQueries
}

func NewPetHandler(petCommands commands.PetCommands, petQueries queries.PetQueries) *PetHandler {
	return &PetHandler{
		petCommands: petCommands,
		petQueries:  petQueries,
	}
}

// @Summary Register a pet
// @Tags pets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePetRequest true "Pet"
// @Success 201 {object} resdto.PetResponse
// @Failure 400 {object} map[string]string
// @Router /pets [post]
func (h *PetHandler) CreatePet(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Not authenticated", nil)
		return
	}

	var req reqdto.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.petCommands.Create(c.Request.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPetView(view))
}

// @Summary List my pets
// @Tags pets
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.PetResponse
// @Router /pets [get]
func (h *PetHandler) ListPets(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Not authenticated", nil)
		return
	}

	views, err := h.petQueries.ListByOwner(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPetViews(views))
}

// @Summary Remove a pet
// @Description Deletes the pet and every reservation booked for it.
// @Tags pets
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pets/{id} [delete]
func (h *PetHandler) DeletePet(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Not authenticated", nil)
		return
	}

	petID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pet ID", nil)
		return
	}

	if err := h.petCommands.Delete(c.Request.Context(), actor, petID); err != nil {
		switch {
		case errors.Is(err, commands.ErrPetNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Pet not found", nil)
		case errors.Is(err, commands.ErrNotPetOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Pet belongs to another owner", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
