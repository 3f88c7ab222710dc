package store

import (
	"errors"
	"time"

	"github.com/lukasringel/economy-service/internal/models"
)

// ErrDuplicateEntry signals that a unique constraint rejected an insert. The
// database is the final arbiter on uniqueness; callers must translate this
// into their own already-exists failure instead of treating the insert as
// having produced an identity.
var ErrDuplicateEntry = errors.New("duplicate entry")

// ErrNoRows signals that a single-row query matched nothing.
var ErrNoRows = errors.New("no rows")

// UserAccountRow is one row of the user-accounts join. The account columns
// are nil for a user that owns no accounts yet.
type UserAccountRow struct {
	UserID           uint
	Suspended        bool
	CreatedAt        int64
	AccountID        *uint
	AccountEconomyID *uint
	AccountAmount    *float64
}

// Store is the narrow persistence surface the service layer consumes. All
// methods are synchronous; transient database errors propagate as-is.
type Store interface {
	// Economies.
	InsertEconomy(name string, startValue float64) (uint, error)
	AllEconomies() ([]models.Economy, error)

	// Accounts.
	InsertAccount(userID, economyID uint, startAmount float64) (uint, error)
	AccountByID(id uint) (models.AccountRecord, error)
	AccountsByEconomy(economyID uint) ([]models.AccountRecord, error)
	AccountsAboveAmount(economyID uint, amount float64) ([]models.AccountRecord, error)
	AccountsUnderAmount(economyID uint, amount float64) ([]models.AccountRecord, error)
	HasAccount(userID, economyID uint) (bool, error)
	UpdateAccountAmount(id uint, amount float64) error

	// Users and identifiers.
	InsertUser(createdAt int64) (uint, error)
	InsertIdentifier(userID uint, key, value string, createdAt int64) (uint, error)
	ActiveIdentifiersByUser(userID uint) ([]models.ExternalIdentifier, error)
	UserRowsByID(id uint) ([]UserAccountRow, error)
	UserRowsByIdentifier(key, value string) ([]UserAccountRow, error)
	UserRowsBySuspended() ([]UserAccountRow, error)
	UserRowsByCreatedBefore(timestamp int64) ([]UserAccountRow, error)
	UserRowsByCreatedAfter(timestamp int64) ([]UserAccountRow, error)

	// Transactions.
	InsertTransaction(accountID uint, amount float64, timestamp int64, comment *string, transactionType models.TransactionType) (uint, error)
	TransactionsByAccount(accountID uint) ([]models.Transaction, error)
	TransactionsByAccountWithLimit(accountID uint, limit int) ([]models.Transaction, error)
	TransactionsByAccountAndType(accountID uint, transactionType models.TransactionType) ([]models.Transaction, error)
	TransactionsByAccountAndTypeWithLimit(accountID uint, transactionType models.TransactionType, limit int) ([]models.Transaction, error)
}

// Clock provides the current time in epoch millis. Injected so tests can pin
// createdAt and transaction timestamps.
type Clock interface {
	NowMillis() int64
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) NowMillis() int64 {
	return time.Now().UnixMilli()
}
