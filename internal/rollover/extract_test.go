package rollover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avosch/rollbook/internal/constants"
	"github.com/avosch/rollbook/internal/store"
)

func TestExtractBalances(t *testing.T) {
	book := newEmptyBook(t)
	root, err := book.RootAccount()
	require.NoError(t, err)
	eur, err := book.CommodityByCode(constants.NamespaceCurrency, "EUR")
	require.NoError(t, err)

	assetsID := createAccount(t, book, store.AccountParams{Name: "Assets", Type: constants.TypeAsset, ParentID: root.ID, Placeholder: true})
	checkingID := createAccount(t, book, store.AccountParams{Name: "Checking", Type: constants.TypeAsset, ParentID: assetsID, CommodityID: &eur.ID})
	incomeID := createAccount(t, book, store.AccountParams{Name: "Income", Type: constants.TypeIncome, ParentID: root.ID, Placeholder: true})
	salaryID := createAccount(t, book, store.AccountParams{Name: "Salary", Type: constants.TypeIncome, ParentID: incomeID, CommodityID: &eur.ID})
	createAccount(t, book, store.AccountParams{Name: "Liabilities", Type: constants.TypeLiability, ParentID: root.ID})

	postTransaction(t, book, "2025-06-01", checkingID, salaryID, "500")

	balances, err := ExtractBalances(book)
	require.NoError(t, err)

	// Income accounts and placeholders never enter the snapshot; a postable
	// balance-sheet account with no activity enters with a zero balance.
	require.Len(t, balances, 2)
	assert.True(t, balances["Assets.Checking"].Equal(dec("500")))
	assert.True(t, balances["Liabilities"].IsZero())
	assert.NotContains(t, balances, "Assets")
	assert.NotContains(t, balances, "Income.Salary")
}

func TestExtractBalancesExclusionIsPerNode(t *testing.T) {
	book := newEmptyBook(t)
	root, err := book.RootAccount()
	require.NoError(t, err)

	// An excluded node's children are still visited: exclusion never prunes
	// the subtree.
	reservesID := createAccount(t, book, store.AccountParams{Name: "Reserves", Type: constants.TypeEquity, ParentID: root.ID})
	createAccount(t, book, store.AccountParams{Name: "Deposit", Type: constants.TypeAsset, ParentID: reservesID})

	balances, err := ExtractBalances(book)
	require.NoError(t, err)

	assert.NotContains(t, balances, "Reserves")
	assert.Contains(t, balances, "Reserves.Deposit")
}

func TestSnapshotSortedNames(t *testing.T) {
	snapshot := Snapshot{
		"Liabilities.Loan": dec("-100"),
		"Assets.Checking":  dec("500"),
		"Assets.Cash":      dec("50"),
	}

	assert.Equal(t, []string{"Assets.Cash", "Assets.Checking", "Liabilities.Loan"}, snapshot.SortedNames())
}
