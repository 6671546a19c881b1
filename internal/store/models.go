package store

import "github.com/shopspring/decimal"

type Account struct {
	ID          int64
	Name        string
	Type        string
	ParentID    *int64
	CommodityID *int64
	Placeholder bool
	Description string
	Hidden      bool
}

type Transaction struct {
	ID          int64
	PostDate    string // constants.DateFormat
	Description string
	CurrencyID  *int64
}

// Split is one side of a transaction. Amount is denominated in the account's
// commodity, Value in the transaction currency.
type Split struct {
	ID            int64
	TransactionID *int64 // nil marks a split with no parent transaction
	AccountID     int64
	Amount        decimal.Decimal
	Value         decimal.Decimal
	Memo          string
}

type Commodity struct {
	ID        int64
	Namespace string
	Code      string
	Fullname  string
	Fraction  int64
}

// Price quotes one unit of Commodity in Currency on QuoteDate.
type Price struct {
	ID          int64
	CommodityID int64
	CurrencyID  int64
	QuoteDate   string
	Value       decimal.Decimal
	Source      string
}
