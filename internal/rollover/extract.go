package rollover

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/avosch/rollbook/internal/constants"
	"github.com/avosch/rollbook/internal/store"
)

// Snapshot maps account full names to their signed balances, computed once
// from the previous year's tree at read time.
type Snapshot map[string]decimal.Decimal

// SortedNames returns the snapshot's account names in lexical order.
func (s Snapshot) SortedNames() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExtractBalances walks the account tree pre-order and records the balance of
// every postable balance-sheet account. Placeholder nodes and nodes whose
// type is excluded are skipped, but their children are still visited: the
// exclusion is per node, not per subtree. Zero balances are recorded too.
func ExtractBalances(book store.Repository) (Snapshot, error) {
	root, err := book.RootAccount()
	if err != nil {
		return nil, err
	}

	balances := Snapshot{}

	var walk func(acc *store.Account) error
	walk = func(acc *store.Account) error {
		if !acc.Placeholder && !constants.ExcludedOpeningTypes[acc.Type] {
			name, err := book.FullName(acc)
			if err != nil {
				return err
			}
			balance, err := book.AccountBalance(acc.ID)
			if err != nil {
				return err
			}
			balances[name] = balance
		}

		children, err := book.Children(acc.ID)
		if err != nil {
			return err
		}
		for _, child := range children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(root); err != nil {
		return nil, err
	}

	return balances, nil
}
