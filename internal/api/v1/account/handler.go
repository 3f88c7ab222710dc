package account

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lukasringel/economy-service/internal/models"
	"github.com/lukasringel/economy-service/internal/services"
	"github.com/lukasringel/economy-service/internal/utils"
)

type Handler struct {
	ledger *services.AccountLedger
}

func NewHandler(ledger *services.AccountLedger) *Handler {
	return &Handler{ledger: ledger}
}

// Create godoc
// @Summary Create an account
// @Description Opens an account for the user in the economy, starting at the economy's start value. At most one account per user and economy.
// @Tags account
// @Accept json
// @Produce json
// @Security Bearer
// @Router /account/create [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateAccountRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	acc, err := h.ledger.CreateAccount(req.UserID, req.EconomyID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Account created successfully", acc))
}

// IncreaseWorth godoc
// @Summary Increase an account's balance
// @Tags account
// @Accept json
// @Produce json
// @Security Bearer
// @Router /account/worth/increase [post]
func (h *Handler) IncreaseWorth(c *gin.Context) {
	h.mutateWorth(c, h.ledger.Increase)
}

// DecreaseWorth godoc
// @Summary Decrease an account's balance
// @Tags account
// @Accept json
// @Produce json
// @Security Bearer
// @Router /account/worth/decrease [post]
func (h *Handler) DecreaseWorth(c *gin.Context) {
	h.mutateWorth(c, h.ledger.Decrease)
}

func (h *Handler) mutateWorth(c *gin.Context, mutate func(models.Account, float64, *string) (models.Account, error)) {
	var req MutateWorthRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	acc, err := h.ledger.ByID(req.AccountID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	acc, err = mutate(acc, *req.Amount, req.Comment)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Account worth updated successfully", acc))
}

// Single godoc
// @Summary Get an account by id
// @Tags account
// @Produce json
// @Security Bearer
// @Router /account/get/single [get]
func (h *Handler) Single(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid id"))
		return
	}

	acc, err := h.ledger.ByID(uint(id))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Account retrieved successfully", acc))
}

// ByEconomy godoc
// @Summary List all accounts of an economy
// @Description Unindexed scan over every account of the economy; run infrequently or off-peak.
// @Tags account
// @Produce json
// @Security Bearer
// @Router /account/get/multi/economy [get]
func (h *Handler) ByEconomy(c *gin.Context) {
	economyID, err := strconv.ParseUint(c.Query("economy_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid economy_id"))
		return
	}

	accounts, err := h.ledger.ByEconomyID(uint(economyID))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Accounts retrieved successfully", accounts))
}

// AboveAmount godoc
// @Summary List accounts of an economy above an amount
// @Description Unindexed scan; run infrequently or off-peak.
// @Tags account
// @Produce json
// @Security Bearer
// @Router /account/get/multi/amount/above [get]
func (h *Handler) AboveAmount(c *gin.Context) {
	h.amountFiltered(c, h.ledger.AboveAmountByEconomyID)
}

// UnderAmount godoc
// @Summary List accounts of an economy under an amount
// @Description Unindexed scan; run infrequently or off-peak.
// @Tags account
// @Produce json
// @Security Bearer
// @Router /account/get/multi/amount/under [get]
func (h *Handler) UnderAmount(c *gin.Context) {
	h.amountFiltered(c, h.ledger.UnderAmountByEconomyID)
}

func (h *Handler) amountFiltered(c *gin.Context, list func(uint, float64) ([]models.Account, error)) {
	economyID, err := strconv.ParseUint(c.Query("economy_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid economy_id"))
		return
	}

	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid amount"))
		return
	}

	accounts, err := list(uint(economyID), amount)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Accounts retrieved successfully", accounts))
}
