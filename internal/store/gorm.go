package store

import (
	"errors"
	"strings"

	"github.com/lukasringel/economy-service/internal/models"
	"gorm.io/gorm"
)

// GormStore implements Store on top of a gorm handle. Production runs it
// against postgres, tests against in-memory sqlite.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the schema for every entity of the service.
func (s *GormStore) Migrate() error {
	err := s.db.AutoMigrate(
		&models.Economy{},
		&models.AccountRecord{},
		&models.UserRecord{},
		&models.ExternalIdentifier{},
		&models.Transaction{},
	)
	if err != nil {
		return err
	}
	// Economy names are unique ignoring case. AutoMigrate cannot express a
	// functional index; postgres and sqlite both accept this form.
	return s.db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_economy_name_ci ON economy_economies (lower(name))").Error
}

func (s *GormStore) InsertEconomy(name string, startValue float64) (uint, error) {
	economy := models.Economy{
		Name:               name,
		StartValue:         startValue,
		IncreaseMultiplier: 1.0,
		DecreaseMultiplier: 1.0,
	}
	if err := s.db.Create(&economy).Error; err != nil {
		return 0, translateError(err)
	}
	return economy.ID, nil
}

func (s *GormStore) AllEconomies() ([]models.Economy, error) {
	var economies []models.Economy
	if err := s.db.Find(&economies).Error; err != nil {
		return nil, err
	}
	return economies, nil
}

func (s *GormStore) InsertAccount(userID, economyID uint, startAmount float64) (uint, error) {
	account := models.AccountRecord{
		UserID:    userID,
		EconomyID: economyID,
		Amount:    startAmount,
	}
	if err := s.db.Create(&account).Error; err != nil {
		return 0, translateError(err)
	}
	return account.ID, nil
}

func (s *GormStore) AccountByID(id uint) (models.AccountRecord, error) {
	var account models.AccountRecord
	if err := s.db.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AccountRecord{}, ErrNoRows
		}
		return models.AccountRecord{}, err
	}
	return account, nil
}

func (s *GormStore) AccountsByEconomy(economyID uint) ([]models.AccountRecord, error) {
	var accounts []models.AccountRecord
	if err := s.db.Where("economy_id = ?", economyID).Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *GormStore) AccountsAboveAmount(economyID uint, amount float64) ([]models.AccountRecord, error) {
	var accounts []models.AccountRecord
	if err := s.db.Where("economy_id = ? AND amount > ?", economyID, amount).Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *GormStore) AccountsUnderAmount(economyID uint, amount float64) ([]models.AccountRecord, error) {
	var accounts []models.AccountRecord
	if err := s.db.Where("economy_id = ? AND amount < ?", economyID, amount).Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *GormStore) HasAccount(userID, economyID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.AccountRecord{}).
		Where("user_id = ? AND economy_id = ?", userID, economyID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) UpdateAccountAmount(id uint, amount float64) error {
	return s.db.Model(&models.AccountRecord{}).Where("id = ?", id).Update("amount", amount).Error
}

func (s *GormStore) InsertUser(createdAt int64) (uint, error) {
	user := models.UserRecord{CreatedAt: createdAt}
	if err := s.db.Create(&user).Error; err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (s *GormStore) InsertIdentifier(userID uint, key, value string, createdAt int64) (uint, error) {
	identifier := models.ExternalIdentifier{
		UserID:    userID,
		Key:       key,
		Value:     value,
		Active:    true,
		CreatedAt: createdAt,
	}
	if err := s.db.Create(&identifier).Error; err != nil {
		return 0, translateError(err)
	}
	return identifier.ID, nil
}

func (s *GormStore) ActiveIdentifiersByUser(userID uint) ([]models.ExternalIdentifier, error) {
	var identifiers []models.ExternalIdentifier
	if err := s.db.Where("user_id = ? AND active = ?", userID, true).Find(&identifiers).Error; err != nil {
		return nil, err
	}
	return identifiers, nil
}

const userJoinSelect = "economy_users.id as user_id, economy_users.suspended as suspended, " +
	"economy_users.created_at as created_at, economy_accounts.id as account_id, " +
	"economy_accounts.economy_id as account_economy_id, economy_accounts.amount as account_amount"

func (s *GormStore) userJoin() *gorm.DB {
	return s.db.Table("economy_users").
		Select(userJoinSelect).
		Joins("left join economy_accounts on economy_accounts.user_id = economy_users.id")
}

func (s *GormStore) UserRowsByID(id uint) ([]UserAccountRow, error) {
	var rows []UserAccountRow
	if err := s.userJoin().Where("economy_users.id = ?", id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) UserRowsByIdentifier(key, value string) ([]UserAccountRow, error) {
	var rows []UserAccountRow
	err := s.db.Table("economy_users_identifiers").
		Select(userJoinSelect).
		Joins("inner join economy_users on economy_users.id = economy_users_identifiers.user_id").
		Joins("left join economy_accounts on economy_accounts.user_id = economy_users.id").
		Where("economy_users_identifiers.identifier = ? AND economy_users_identifiers.value = ? AND economy_users_identifiers.active = ?", key, value, true).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) UserRowsBySuspended() ([]UserAccountRow, error) {
	var rows []UserAccountRow
	if err := s.userJoin().Where("economy_users.suspended = ?", true).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) UserRowsByCreatedBefore(timestamp int64) ([]UserAccountRow, error) {
	var rows []UserAccountRow
	if err := s.userJoin().Where("economy_users.created_at < ?", timestamp).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) UserRowsByCreatedAfter(timestamp int64) ([]UserAccountRow, error) {
	var rows []UserAccountRow
	if err := s.userJoin().Where("economy_users.created_at > ?", timestamp).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) InsertTransaction(accountID uint, amount float64, timestamp int64, comment *string, transactionType models.TransactionType) (uint, error) {
	transaction := models.Transaction{
		AccountID: accountID,
		Amount:    amount,
		Timestamp: timestamp,
		Comment:   comment,
		Type:      transactionType,
	}
	if err := s.db.Create(&transaction).Error; err != nil {
		return 0, err
	}
	return transaction.ID, nil
}

func (s *GormStore) TransactionsByAccount(accountID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("account_id = ?", accountID).Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *GormStore) TransactionsByAccountWithLimit(accountID uint, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.db.Where("account_id = ?", accountID).
		Order("timestamp desc").Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *GormStore) TransactionsByAccountAndType(accountID uint, transactionType models.TransactionType) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.db.Where("account_id = ? AND type = ?", accountID, transactionType).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *GormStore) TransactionsByAccountAndTypeWithLimit(accountID uint, transactionType models.TransactionType, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.db.Where("account_id = ? AND type = ?", accountID, transactionType).
		Order("timestamp desc").Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// translateError maps unique-constraint rejections onto ErrDuplicateEntry.
// gorm's dialect translators report gorm.ErrDuplicatedKey for postgres; the
// sqlite driver used in tests surfaces the raw constraint message instead.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEntry
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicateEntry
	}
	return err
}
