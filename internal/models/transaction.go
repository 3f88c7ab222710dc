package models

// TransactionType classifies a balance change.
type TransactionType string

const (
	TransactionTypeIncrease TransactionType = "INCREASE"
	TransactionTypeDecrease TransactionType = "DECREASE"
)

// Transaction is an immutable record of a single balance change. Amount is
// the magnitude of the change; the sign is carried by Type. Timestamp is
// epoch millis, assigned at write time.
type Transaction struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	AccountID uint            `gorm:"index;not null" json:"account_id"`
	Amount    float64         `gorm:"not null" json:"amount"`
	Timestamp int64           `gorm:"not null" json:"timestamp"`
	Comment   *string         `json:"comment"`
	Type      TransactionType `gorm:"type:varchar(16);index;not null" json:"type"`
}

func (Transaction) TableName() string {
	return "economy_transactions"
}

// HasComment reports whether a comment was attached to the transaction.
func (t Transaction) HasComment() bool {
	return t.Comment != nil
}
