package store

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avosch/rollbook/internal/constants"
)

func openTestBook(t *testing.T) *Book {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.book")
	book, err := Open(path, OpenNormal)
	require.NoError(t, err)
	t.Cleanup(func() { book.Close() })
	return book
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestOpenCreatesSchema(t *testing.T) {
	book := openTestBook(t)

	root, err := book.RootAccount()
	require.NoError(t, err)
	assert.Equal(t, constants.TypeRoot, root.Type)
	assert.Nil(t, root.ParentID)
	assert.True(t, root.Placeholder)

	// Seeded currencies are resolvable by code.
	eur, err := book.CommodityByCode(constants.NamespaceCurrency, "EUR")
	require.NoError(t, err)
	assert.Equal(t, "EUR", eur.Code)
	assert.EqualValues(t, 100, eur.Fraction)

	jpy, err := book.CommodityByCode(constants.NamespaceCurrency, "JPY")
	require.NoError(t, err)
	assert.EqualValues(t, 1, jpy.Fraction)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.book")

	book, err := Open(path, OpenNormal)
	require.NoError(t, err)
	require.NoError(t, book.Save())
	require.NoError(t, book.Close())

	// Reopening an already-migrated book must not fail.
	book, err = Open(path, OpenNormal)
	require.NoError(t, err)
	defer book.Close()

	_, err = book.RootAccount()
	require.NoError(t, err)
}

func TestOpenReadOnlyRejectsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.book")

	book, err := Open(path, OpenNormal)
	require.NoError(t, err)
	require.NoError(t, book.Close())

	ro, err := Open(path, OpenReadOnly)
	require.NoError(t, err)
	defer ro.Close()

	root, err := ro.RootAccount()
	require.NoError(t, err)

	_, err = ro.CreateAccount(AccountParams{Name: "Assets", Type: constants.TypeAsset, ParentID: root.ID})
	assert.ErrorIs(t, err, ErrReadOnly)

	err = ro.DeleteTransaction(1)
	assert.ErrorIs(t, err, ErrReadOnly)
}

func TestCommodityByCodeUnknown(t *testing.T) {
	book := openTestBook(t)

	_, err := book.CommodityByCode(constants.NamespaceCurrency, "XXX")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestCreateCommodity(t *testing.T) {
	book := openTestBook(t)

	id, err := book.CreateCommodity(constants.NamespaceCurrency, "PLN", "Zloty", 100)
	require.NoError(t, err)

	got, err := book.CommodityByID(id)
	require.NoError(t, err)
	assert.Equal(t, "PLN", got.Code)

	_, err = book.CreateCommodity(constants.NamespaceCurrency, "PLN", "Zloty", 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
