package economy

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lukasringel/economy-service/internal/services"
	"github.com/lukasringel/economy-service/internal/utils"
)

type Handler struct {
	registry *services.EconomyRegistry
}

func NewHandler(registry *services.EconomyRegistry) *Handler {
	return &Handler{registry: registry}
}

// Create godoc
// @Summary Create a new economy
// @Description Registers a new economy with a unique name. The created economy becomes visible to lookups after the next registry refresh.
// @Tags economy
// @Accept json
// @Produce json
// @Security Bearer
// @Router /economy/create [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateEconomyRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	economy, err := h.registry.Create(req.Name, req.StartValue)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Economy created successfully", economy))
}

// ByID godoc
// @Summary Get an economy by id
// @Tags economy
// @Produce json
// @Security Bearer
// @Router /economy/by/id [get]
func (h *Handler) ByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid id"))
		return
	}

	economy, ok := h.registry.ByID(uint(id))
	if !ok {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Economy not found"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Economy retrieved successfully", economy))
}

// ByName godoc
// @Summary Get an economy by name (case-insensitive)
// @Tags economy
// @Produce json
// @Security Bearer
// @Router /economy/by/name [get]
func (h *Handler) ByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Missing name"))
		return
	}

	economy, ok := h.registry.ByName(name)
	if !ok {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Economy not found"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Economy retrieved successfully", economy))
}

// WithIncreaseMultiplier godoc
// @Summary List economies with a modified increase multiplier
// @Tags economy
// @Produce json
// @Security Bearer
// @Router /economy/multiplier/increase [get]
func (h *Handler) WithIncreaseMultiplier(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Economies retrieved successfully", h.registry.WithIncreaseMultiplier()))
}

// WithDecreaseMultiplier godoc
// @Summary List economies with a modified decrease multiplier
// @Tags economy
// @Produce json
// @Security Bearer
// @Router /economy/multiplier/decrease [get]
func (h *Handler) WithDecreaseMultiplier(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Economies retrieved successfully", h.registry.WithDecreaseMultiplier()))
}
