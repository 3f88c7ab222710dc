package transaction

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lukasringel/economy-service/internal/models"
	"github.com/lukasringel/economy-service/internal/services"
	"github.com/lukasringel/economy-service/internal/utils"
)

type Handler struct {
	transactions *services.TransactionLog
}

func NewHandler(transactions *services.TransactionLog) *Handler {
	return &Handler{transactions: transactions}
}

// Create godoc
// @Summary Record a transaction
// @Description Appends a raw transaction record without touching any balance. For trusted internal tooling; balance mutations go through the account endpoints.
// @Tags transaction
// @Accept json
// @Produce json
// @Security Bearer
// @Router /transaction/create [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	created, err := h.transactions.Append(req.AccountID, req.Amount, models.TransactionType(req.Type), req.Comment)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transaction created successfully", created))
}

// AllOfAccount godoc
// @Summary List every transaction of an account
// @Tags transaction
// @Produce json
// @Security Bearer
// @Router /transaction/account/all/allTime [get]
func (h *Handler) AllOfAccount(c *gin.Context) {
	accountID, ok := h.accountID(c)
	if !ok {
		return
	}

	transactions, err := h.transactions.AllOfAccount(accountID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transactions retrieved successfully", transactions))
}

// RecentOfAccount godoc
// @Summary List the newest transactions of an account
// @Tags transaction
// @Produce json
// @Security Bearer
// @Router /transaction/account/all/recent [get]
func (h *Handler) RecentOfAccount(c *gin.Context) {
	accountID, ok := h.accountID(c)
	if !ok {
		return
	}
	limit, ok := h.limit(c)
	if !ok {
		return
	}

	transactions, err := h.transactions.RecentOfAccount(accountID, limit)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transactions retrieved successfully", transactions))
}

// AllOfAccountByType godoc
// @Summary List every transaction of an account of one type
// @Tags transaction
// @Produce json
// @Security Bearer
// @Router /transaction/account/type/allTime [get]
func (h *Handler) AllOfAccountByType(c *gin.Context) {
	accountID, ok := h.accountID(c)
	if !ok {
		return
	}
	transactionType, ok := h.transactionType(c)
	if !ok {
		return
	}

	transactions, err := h.transactions.AllOfAccountByType(accountID, transactionType)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transactions retrieved successfully", transactions))
}

// RecentOfAccountByType godoc
// @Summary List the newest transactions of an account of one type
// @Tags transaction
// @Produce json
// @Security Bearer
// @Router /transaction/account/type/recent [get]
func (h *Handler) RecentOfAccountByType(c *gin.Context) {
	accountID, ok := h.accountID(c)
	if !ok {
		return
	}
	transactionType, ok := h.transactionType(c)
	if !ok {
		return
	}
	limit, ok := h.limit(c)
	if !ok {
		return
	}

	transactions, err := h.transactions.RecentOfAccountByType(accountID, transactionType, limit)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transactions retrieved successfully", transactions))
}

func (h *Handler) accountID(c *gin.Context) (uint, bool) {
	accountID, err := strconv.ParseUint(c.Query("account_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid account_id"))
		return 0, false
	}
	return uint(accountID), true
}

func (h *Handler) limit(c *gin.Context) (int, bool) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid limit"))
		return 0, false
	}
	return limit, true
}

func (h *Handler) transactionType(c *gin.Context) (models.TransactionType, bool) {
	switch c.Query("type") {
	case string(models.TransactionTypeIncrease):
		return models.TransactionTypeIncrease, true
	case string(models.TransactionTypeDecrease):
		return models.TransactionTypeDecrease, true
	default:
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid type"))
		return "", false
	}
}
