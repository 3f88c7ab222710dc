package models

// UserRecord is the stored shape of a user. Timestamps are epoch millis.
type UserRecord struct {
	ID        uint  `gorm:"primarykey"`
	Suspended bool  `gorm:"not null;default:false"`
	CreatedAt int64 `gorm:"not null"`
}

func (UserRecord) TableName() string {
	return "economy_users"
}

// User is a fully assembled user: identifiers, accounts with resolved
// economies, and creation metadata. Users are never partially materialized.
type User struct {
	ID                  uint                 `json:"id"`
	ExternalIdentifiers []ExternalIdentifier `json:"external_identifiers"`
	Accounts            []Account            `json:"accounts"`
	Suspended           bool                 `json:"suspended"`
	CreatedAt           int64                `json:"created_at"`
}

// AccountByEconomyID returns the user's account for the given economy, if any.
func (u User) AccountByEconomyID(economyID uint) (Account, bool) {
	for _, account := range u.Accounts {
		if account.Economy.ID == economyID {
			return account, true
		}
	}
	return Account{}, false
}

// AccountByEconomy returns the user's account for the given economy, if any.
func (u User) AccountByEconomy(economy Economy) (Account, bool) {
	return u.AccountByEconomyID(economy.ID)
}

// HasAccountForEconomy reports whether the user owns an account of the economy.
func (u User) HasAccountForEconomy(economyID uint) bool {
	_, ok := u.AccountByEconomyID(economyID)
	return ok
}
