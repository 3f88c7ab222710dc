package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lukasringel/economy-service/internal/models"
	"github.com/lukasringel/economy-service/internal/services"
	"github.com/lukasringel/economy-service/internal/utils"
)

type Handler struct {
	users *services.UserCache
}

func NewHandler(users *services.UserCache) *Handler {
	return &Handler{users: users}
}

// Create godoc
// @Summary Create a user
// @Description Creates a user with the given external identifiers (flat list alternating key, value). New users start unsuspended with no accounts.
// @Tags user
// @Accept json
// @Produce json
// @Security Bearer
// @Router /user/create [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	created, err := h.users.Create(req.Identifiers...)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User created successfully", created))
}

// ByID godoc
// @Summary Get a user by id
// @Description Served from the per-user cache; entries expire after the configured TTL.
// @Tags user
// @Produce json
// @Security Bearer
// @Router /user/by/id [get]
func (h *Handler) ByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid id"))
		return
	}

	found, err := h.users.ByID(uint(id))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User retrieved successfully", found))
}

// ByIdentifier godoc
// @Summary Get a user by external identifier
// @Description Always bypasses the cache; identifiers are not the cache key.
// @Tags user
// @Produce json
// @Security Bearer
// @Router /user/by/identifier [get]
func (h *Handler) ByIdentifier(c *gin.Context) {
	key := c.Query("key")
	value := c.Query("value")
	if key == "" || value == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Missing key or value"))
		return
	}

	found, err := h.users.ByIdentifier(key, value)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User retrieved successfully", found))
}

// Suspended godoc
// @Summary List all suspended users
// @Description Uncached bulk scan; run infrequently or off-peak.
// @Tags user
// @Produce json
// @Security Bearer
// @Router /user/suspended [get]
func (h *Handler) Suspended(c *gin.Context) {
	users, err := h.users.Suspended()
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Users retrieved successfully", users))
}

// CreatedBefore godoc
// @Summary List users created before a timestamp (epoch millis)
// @Description Uncached bulk scan; run infrequently or off-peak.
// @Tags user
// @Produce json
// @Security Bearer
// @Router /user/created/before [get]
func (h *Handler) CreatedBefore(c *gin.Context) {
	h.createdFiltered(c, h.users.CreatedBefore)
}

// CreatedAfter godoc
// @Summary List users created after a timestamp (epoch millis)
// @Description Uncached bulk scan; run infrequently or off-peak.
// @Tags user
// @Produce json
// @Security Bearer
// @Router /user/created/after [get]
func (h *Handler) CreatedAfter(c *gin.Context) {
	h.createdFiltered(c, h.users.CreatedAfter)
}

func (h *Handler) createdFiltered(c *gin.Context, list func(int64) ([]models.User, error)) {
	timestamp, err := strconv.ParseInt(c.Query("timestamp"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid timestamp"))
		return
	}

	users, err := list(timestamp)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Users retrieved successfully", users))
}
