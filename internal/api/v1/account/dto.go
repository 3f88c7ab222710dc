package account

type CreateAccountRequest struct {
	UserID    uint `json:"user_id" binding:"required"`
	EconomyID uint `json:"economy_id" binding:"required"`
}

// Amount is a pointer so a legal amount of 0 survives the required check.
type MutateWorthRequest struct {
	AccountID uint     `json:"account_id" binding:"required"`
	Amount    *float64 `json:"amount" binding:"required"`
	Comment   *string  `json:"comment"`
}
