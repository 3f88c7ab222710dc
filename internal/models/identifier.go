package models

import "strings"

// ExternalIdentifier links a user to a foreign system (discord id, minecraft
// uuid, ...). Deactivated identifiers stay in the store but are never loaded
// into an assembled User.
type ExternalIdentifier struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	UserID    uint   `gorm:"index;not null" json:"-"`
	Key       string `gorm:"column:identifier;not null" json:"key"`
	Value     string `gorm:"not null" json:"value"`
	Active    bool   `gorm:"not null;default:true" json:"active"`
	CreatedAt int64  `gorm:"not null" json:"created_at"`
}

func (ExternalIdentifier) TableName() string {
	return "economy_users_identifiers"
}

// HasValue reports whether the identifier's value matches, ignoring case.
func (e ExternalIdentifier) HasValue(check string) bool {
	return strings.EqualFold(e.Value, check)
}
