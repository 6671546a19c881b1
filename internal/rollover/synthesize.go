package rollover

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"github.com/avosch/rollbook/internal/constants"
	"github.com/avosch/rollbook/internal/store"
)

// Params configures the opening transaction synthesis. All four values come
// from the config file.
type Params struct {
	EquityName        string
	EquityOpeningName string
	Description       string
	Currency          string
}

// OpeningEntry reports one synthesized opening transaction.
type OpeningEntry struct {
	AccountName   string
	Balance       decimal.Decimal
	EquityValue   decimal.Decimal
	TransactionID int64
}

// SynthesizeOpening writes one balanced opening transaction per nonzero
// snapshot balance into the new year's book. Each account's transaction is
// opened and committed independently; there is no cross-account atomicity.
func SynthesizeOpening(book store.Repository, balances Snapshot, openingDate time.Time, params Params) ([]OpeningEntry, error) {
	currency, err := book.CommodityByCode(constants.NamespaceCurrency, params.Currency)
	if err != nil {
		return nil, fmt.Errorf("resolving transaction currency '%s': %w", params.Currency, err)
	}

	root, err := book.RootAccount()
	if err != nil {
		return nil, err
	}

	pterm.Info.Println("Preparing opening balances counter account in new year's book.")
	equity, err := ensureEquityAccounts(book, root, currency, params)
	if err != nil {
		return nil, err
	}

	equityCommodity, err := book.AccountCommodity(equity)
	if err != nil {
		return nil, err
	}
	if equityCommodity == nil {
		// A pre-existing opening-balances account without a commodity settles
		// in the transaction currency.
		equityCommodity = currency
	}

	var entries []OpeningEntry

	for _, accountName := range balances.SortedNames() {
		balance := balances[accountName]
		if balance.IsZero() {
			continue
		}

		pterm.Info.Printfln("Creating opening transaction for account %s, amount: %s", accountName, balance)

		account, err := ensureAccountPath(book, root, accountName)
		if err != nil {
			return nil, err
		}

		accountCommodity, err := book.AccountCommodity(account)
		if err != nil {
			return nil, err
		}
		if accountCommodity == nil {
			accountCommodity = currency
		}

		equityValue := balance
		if accountCommodity.ID != equityCommodity.ID {
			equityValue, err = book.ConvertBalance(balance, accountCommodity, equityCommodity, openingDate)
			if err != nil {
				return nil, fmt.Errorf("converting balance of account %s: %w", accountName, err)
			}
		}

		tx := store.Transaction{
			PostDate:    openingDate.Format(constants.DateFormat),
			Description: params.Description,
			CurrencyID:  &currency.ID,
		}
		splits := []store.Split{
			{AccountID: account.ID, Amount: balance, Value: equityValue},
			// Opposite value to balance the transaction.
			{AccountID: equity.ID, Amount: equityValue.Neg(), Value: equityValue.Neg()},
		}

		txID, err := book.CreateTransactionWithSplits(tx, splits)
		if err != nil {
			return nil, fmt.Errorf("creating opening transaction for account %s: %w", accountName, err)
		}

		entries = append(entries, OpeningEntry{
			AccountName:   accountName,
			Balance:       balance,
			EquityValue:   equityValue,
			TransactionID: txID,
		})
	}

	return entries, nil
}

// ensureEquityAccounts creates, when absent, the equity placeholder and the
// opening-balances leaf nested under it, and returns the leaf.
func ensureEquityAccounts(book store.Repository, root *store.Account, currency *store.Commodity, params Params) (*store.Account, error) {
	pterm.Info.Printfln("Looking up --%s--", params.EquityName)
	placeholder, err := book.AccountByFullName(params.EquityName)
	if errors.Is(err, store.ErrRecordNotFound) {
		pterm.Info.Printfln("Creating account: %s", params.EquityName)
		id, cerr := book.CreateAccount(store.AccountParams{
			Name:        params.EquityName,
			Type:        constants.TypeEquity,
			ParentID:    root.ID,
			Placeholder: true,
		})
		if cerr != nil {
			return nil, cerr
		}
		if placeholder, err = book.AccountByID(id); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	// TODO: create per-currency sub-accounts under the opening balances
	// account on demand when a snapshot balance settles in another currency.
	openingFullName := params.EquityName + constants.FullNameSeparator + params.EquityOpeningName
	pterm.Info.Printfln("Looking up --%s--", openingFullName)
	equity, err := book.AccountByFullName(openingFullName)
	if errors.Is(err, store.ErrRecordNotFound) {
		pterm.Info.Printfln("Creating account: %s", params.EquityOpeningName)
		id, cerr := book.CreateAccount(store.AccountParams{
			Name:        params.EquityOpeningName,
			Type:        constants.TypeEquity,
			ParentID:    placeholder.ID,
			CommodityID: &currency.ID,
		})
		if cerr != nil {
			return nil, cerr
		}
		if equity, err = book.AccountByID(id); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	return equity, nil
}

// ensureAccountPath resolves a full name, creating any missing segments as
// bare asset-typed children along the way. Creation is idempotent and keyed
// by full name, so it is safe to interleave with the synthesis loop.
func ensureAccountPath(book store.Repository, root *store.Account, fullName string) (*store.Account, error) {
	account, err := book.AccountByFullName(fullName)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, store.ErrRecordNotFound) {
		return nil, err
	}

	current := root
	prefix := ""
	for _, segment := range strings.Split(fullName, constants.FullNameSeparator) {
		if prefix == "" {
			prefix = segment
		} else {
			prefix = prefix + constants.FullNameSeparator + segment
		}

		next, err := book.AccountByFullName(prefix)
		if errors.Is(err, store.ErrRecordNotFound) {
			id, cerr := book.CreateAccount(store.AccountParams{
				Name:     segment,
				Type:     constants.TypeAsset,
				ParentID: current.ID,
			})
			if cerr != nil {
				return nil, cerr
			}
			if next, err = book.AccountByID(id); err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}

		current = next
	}

	return current, nil
}
