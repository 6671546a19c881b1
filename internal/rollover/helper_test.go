package rollover

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/avosch/rollbook/internal/constants"
	"github.com/avosch/rollbook/internal/store"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func day(s string) time.Time {
	d, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func testParams() Params {
	return Params{
		EquityName:        "Equity",
		EquityOpeningName: "Opening Balances",
		Description:       "Opening Balance",
		Currency:          "EUR",
	}
}

func openBook(t *testing.T, path string) *store.Book {
	t.Helper()
	book, err := store.Open(path, store.OpenNormal)
	require.NoError(t, err)
	return book
}

func newEmptyBook(t *testing.T) *store.Book {
	t.Helper()
	book := openBook(t, filepath.Join(t.TempDir(), "test.book"))
	t.Cleanup(func() { book.Close() })
	return book
}

func createAccount(t *testing.T, book *store.Book, p store.AccountParams) int64 {
	t.Helper()
	id, err := book.CreateAccount(p)
	require.NoError(t, err)
	return id
}

func postTransaction(t *testing.T, book *store.Book, date string, debitAccount, creditAccount int64, amount string) {
	t.Helper()
	_, err := book.CreateTransactionWithSplits(
		store.Transaction{PostDate: date, Description: "posting"},
		[]store.Split{
			{AccountID: debitAccount, Amount: dec(amount), Value: dec(amount)},
			{AccountID: creditAccount, Amount: dec(amount).Neg(), Value: dec(amount).Neg()},
		},
	)
	require.NoError(t, err)
}

// buildPreviousYear writes a small closed-out book to dir and returns its
// path: Assets.Checking holds 500 EUR earned through Income.Salary over two
// transactions.
func buildPreviousYear(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "2025.book")

	book := openBook(t, path)
	defer book.Close()

	root, err := book.RootAccount()
	require.NoError(t, err)
	eur, err := book.CommodityByCode(constants.NamespaceCurrency, "EUR")
	require.NoError(t, err)

	assetsID := createAccount(t, book, store.AccountParams{Name: "Assets", Type: constants.TypeAsset, ParentID: root.ID, Placeholder: true})
	checkingID := createAccount(t, book, store.AccountParams{Name: "Checking", Type: constants.TypeAsset, ParentID: assetsID, CommodityID: &eur.ID})
	incomeID := createAccount(t, book, store.AccountParams{Name: "Income", Type: constants.TypeIncome, ParentID: root.ID, Placeholder: true})
	salaryID := createAccount(t, book, store.AccountParams{Name: "Salary", Type: constants.TypeIncome, ParentID: incomeID, CommodityID: &eur.ID})

	postTransaction(t, book, "2025-03-31", checkingID, salaryID, "700")
	postTransaction(t, book, "2025-09-30", salaryID, checkingID, "200")

	require.NoError(t, book.Save())
	return path
}

// injectSplit inserts a split row directly, bypassing the store API. A nil
// transactionID produces a split with no parent transaction; a stale ID
// produces a dangling reference. Foreign keys stay off on this connection so
// both anomalies can be written.
func injectSplit(t *testing.T, path string, accountID int64, transactionID any) {
	t.Helper()
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		INSERT INTO splits (transaction_id, account_id, amount, value, memo)
		VALUES (?, ?, '10', '10', '')
	`, transactionID, accountID)
	require.NoError(t, err)
}
