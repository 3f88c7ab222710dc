package models

// AccountRecord is the stored shape of an account. The unique index on
// (user_id, economy_id) is the final authority on the one-account-per-pair
// rule; service-level checks are only an optimization.
type AccountRecord struct {
	ID        uint    `gorm:"primarykey"`
	UserID    uint    `gorm:"uniqueIndex:idx_account_user_economy;not null"`
	EconomyID uint    `gorm:"uniqueIndex:idx_account_user_economy;not null"`
	Amount    float64 `gorm:"not null"`
}

func (AccountRecord) TableName() string {
	return "economy_accounts"
}

// Account is an account with its economy resolved. Amount is the balance at
// the time the value was assembled; it is a snapshot, not a live view.
type Account struct {
	ID      uint    `json:"id"`
	Economy Economy `json:"economy"`
	Amount  float64 `json:"amount"`
}

// HasMoreThan reports whether the account balance is above the limit.
func (a Account) HasMoreThan(limit float64) bool {
	return a.Amount > limit
}

// HasLessThan reports whether the account balance is below the limit.
func (a Account) HasLessThan(limit float64) bool {
	return a.Amount < limit
}
