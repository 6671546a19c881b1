package constants

// Account types stored in the accounts.type column.
const (
	TypeAsset     = "asset"
	TypeLiability = "liability"
	TypeEquity    = "equity"
	TypeIncome    = "income"
	TypeExpense   = "expense"
	TypeTrading   = "trading"
	TypeRoot      = "root"
)

// ExcludedOpeningTypes are the account types that never receive an opening
// transaction. The exclusion is tested per node, not per subtree.
var ExcludedOpeningTypes = map[string]bool{
	TypeIncome:  true,
	TypeExpense: true,
	TypeTrading: true,
	TypeRoot:    true,
	TypeEquity:  true,
}

// ValidAccountTypes is the closed set accepted by the store.
var ValidAccountTypes = map[string]bool{
	TypeAsset:     true,
	TypeLiability: true,
	TypeEquity:    true,
	TypeIncome:    true,
	TypeExpense:   true,
	TypeTrading:   true,
	TypeRoot:      true,
}

const (
	// FullNameSeparator joins account names into a full name, e.g.
	// "Assets.Bank.Checking". Account names themselves must not contain it.
	FullNameSeparator = "."

	RootAccountName = "Root"

	MaxNameLen = 100
)

// NamespaceCurrency is the commodity namespace for ISO 4217 currencies.
const NamespaceCurrency = "CURRENCY"
