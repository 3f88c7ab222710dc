package transaction

type CreateTransactionRequest struct {
	AccountID uint    `json:"account_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Type      string  `json:"type" binding:"required,oneof=INCREASE DECREASE"`
	Comment   *string `json:"comment"`
}
