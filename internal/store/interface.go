package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// Repository is the book session surface consumed by the rollover logic.
type Repository interface {
	// Account Operations
	CreateAccount(p AccountParams) (int64, error)
	RootAccount() (*Account, error)
	AccountByID(id int64) (*Account, error)
	Children(parentID int64) ([]*Account, error)
	Descendants(parentID int64) ([]*Account, error)
	FullName(acc *Account) (string, error)
	AccountByFullName(fullName string) (*Account, error)
	AccountBalance(accountID int64) (decimal.Decimal, error)
	AccountCommodity(acc *Account) (*Commodity, error)

	// Transaction Operations
	CreateTransactionWithSplits(tx Transaction, splits []Split) (int64, error)
	TransactionByID(txID int64) (*Transaction, error)
	DeleteTransaction(txID int64) error
	SplitsByAccount(accountID int64) ([]*Split, error)
	SplitsByTransaction(txID int64) ([]*Split, error)
	CountTransactions() (int64, error)
	CountSplits() (int64, error)

	// Commodity and Price Operations
	CommodityByCode(namespace, code string) (*Commodity, error)
	CommodityByID(id int64) (*Commodity, error)
	ConvertBalance(amount decimal.Decimal, from, to *Commodity, date time.Time) (decimal.Decimal, error)

	Save() error
	Close() error
}
