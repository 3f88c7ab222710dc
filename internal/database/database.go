package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres connection the store runs on. TranslateError is
// enabled so unique-constraint rejections surface as gorm.ErrDuplicatedKey.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
}
