package rollover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avosch/rollbook/internal/store"
)

func TestPrepareNewYearFile(t *testing.T) {
	dir := t.TempDir()
	previous := buildPreviousYear(t, dir)
	target := filepath.Join(dir, "2026.book")

	book, err := PrepareNewYearFile(previous, target)
	require.NoError(t, err)
	defer book.Close()

	// The copy keeps the account hierarchy but holds no transactions.
	count, err := book.CountTransactions()
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	count, err = book.CountSplits()
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	checking, err := book.AccountByFullName("Assets.Checking")
	require.NoError(t, err)
	assert.NotNil(t, checking.CommodityID)

	// The previous year's book is untouched.
	prev, err := store.Open(previous, store.OpenReadOnly)
	require.NoError(t, err)
	defer prev.Close()

	count, err = prev.CountTransactions()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestPrepareNewYearFileTargetExists(t *testing.T) {
	dir := t.TempDir()
	previous := buildPreviousYear(t, dir)
	target := filepath.Join(dir, "2026.book")
	require.NoError(t, os.WriteFile(target, []byte("occupied"), 0o644))

	_, err := PrepareNewYearFile(previous, target)
	assert.ErrorIs(t, err, ErrTargetExists)

	// The existing file is never overwritten.
	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "occupied", string(content))
}

func TestPrepareNewYearFileOrphanSplits(t *testing.T) {
	dir := t.TempDir()
	previous := buildPreviousYear(t, dir)

	prev, err := store.Open(previous, store.OpenReadOnly)
	require.NoError(t, err)
	checking, err := prev.AccountByFullName("Assets.Checking")
	require.NoError(t, err)
	require.NoError(t, prev.Close())

	// One split with no parent transaction, one referencing a transaction
	// that does not exist.
	injectSplit(t, previous, checking.ID, nil)
	injectSplit(t, previous, checking.ID, int64(9999))

	target := filepath.Join(dir, "2026.book")
	book, err := PrepareNewYearFile(previous, target)
	require.NoError(t, err, "orphan splits must not abort the purge")
	defer book.Close()

	count, err := book.CountTransactions()
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	// The anomalous splits are skipped, not destroyed.
	count, err = book.CountSplits()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
