package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avosch/rollbook/internal/constants"
)

func TestCreateTransactionWithSplits(t *testing.T) {
	book := openTestBook(t)
	root, err := book.RootAccount()
	require.NoError(t, err)
	eur, err := book.CommodityByCode(constants.NamespaceCurrency, "EUR")
	require.NoError(t, err)

	cashID := mustCreateAccount(t, book, AccountParams{Name: "Cash", Type: constants.TypeAsset, ParentID: root.ID})
	foodID := mustCreateAccount(t, book, AccountParams{Name: "Food", Type: constants.TypeExpense, ParentID: root.ID})

	txID, err := book.CreateTransactionWithSplits(
		Transaction{PostDate: "2025-06-15", Description: "groceries", CurrencyID: &eur.ID},
		[]Split{
			{AccountID: foodID, Amount: dec("42.80"), Value: dec("42.80")},
			{AccountID: cashID, Amount: dec("-42.80"), Value: dec("-42.80")},
		},
	)
	require.NoError(t, err)

	tx, err := book.TransactionByID(txID)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", tx.PostDate)
	assert.Equal(t, "groceries", tx.Description)
	require.NotNil(t, tx.CurrencyID)
	assert.Equal(t, eur.ID, *tx.CurrencyID)

	splits, err := book.SplitsByTransaction(txID)
	require.NoError(t, err)
	require.Len(t, splits, 2)

	total := splits[0].Value.Add(splits[1].Value)
	assert.True(t, total.IsZero(), "split values must balance, got %s", total)

	for _, split := range splits {
		require.NotNil(t, split.TransactionID)
		assert.Equal(t, txID, *split.TransactionID)
	}
}

func TestDeleteTransactionCascades(t *testing.T) {
	book := openTestBook(t)
	root, err := book.RootAccount()
	require.NoError(t, err)

	cashID := mustCreateAccount(t, book, AccountParams{Name: "Cash", Type: constants.TypeAsset, ParentID: root.ID})
	rentID := mustCreateAccount(t, book, AccountParams{Name: "Rent", Type: constants.TypeExpense, ParentID: root.ID})

	txID, err := book.CreateTransactionWithSplits(
		Transaction{PostDate: "2025-01-31", Description: "rent"},
		[]Split{
			{AccountID: rentID, Amount: dec("900"), Value: dec("900")},
			{AccountID: cashID, Amount: dec("-900"), Value: dec("-900")},
		},
	)
	require.NoError(t, err)

	require.NoError(t, book.DeleteTransaction(txID))

	count, err := book.CountTransactions()
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	count, err = book.CountSplits()
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	_, err = book.TransactionByID(txID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestDeleteTransactionMissing(t *testing.T) {
	book := openTestBook(t)

	err := book.DeleteTransaction(9999)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestSplitsByAccount(t *testing.T) {
	book := openTestBook(t)
	root, err := book.RootAccount()
	require.NoError(t, err)

	cashID := mustCreateAccount(t, book, AccountParams{Name: "Cash", Type: constants.TypeAsset, ParentID: root.ID})
	otherID := mustCreateAccount(t, book, AccountParams{Name: "Other", Type: constants.TypeExpense, ParentID: root.ID})

	for _, amount := range []string{"10", "20"} {
		_, err := book.CreateTransactionWithSplits(
			Transaction{PostDate: "2025-02-01"},
			[]Split{
				{AccountID: cashID, Amount: dec(amount), Value: dec(amount)},
				{AccountID: otherID, Amount: dec(amount).Neg(), Value: dec(amount).Neg()},
			},
		)
		require.NoError(t, err)
	}

	splits, err := book.SplitsByAccount(cashID)
	require.NoError(t, err)
	require.Len(t, splits, 2)
	assert.True(t, splits[0].Amount.Equal(dec("10")))
	assert.True(t, splits[1].Amount.Equal(dec("20")))
}
