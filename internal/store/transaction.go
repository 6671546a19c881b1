package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// CreateTransactionWithSplits writes a transaction and its splits inside a
// single database transaction. The begin/commit pair is the edit scope: a
// failure anywhere rolls the whole entry back and leaves the book unchanged.
func (b *Book) CreateTransactionWithSplits(tx Transaction, splits []Split) (int64, error) {
	if err := b.writable(); err != nil {
		return 0, err
	}

	dbTx, err := b.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to start database transaction : %w", err)
	}
	defer dbTx.Rollback()

	stmtTx, err := dbTx.Prepare(`
		INSERT INTO transactions (post_date, description, currency_id)
		VALUES (?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare transaction SQL : %w", err)
	}
	defer stmtTx.Close()

	var newTxID int64
	if err = stmtTx.QueryRow(tx.PostDate, tx.Description, tx.CurrencyID).Scan(&newTxID); err != nil {
		return 0, fmt.Errorf("failed to insert transaction : %w", err)
	}

	stmtSplit, err := dbTx.Prepare(`
		INSERT INTO splits (transaction_id, account_id, amount, value, memo)
		VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare split SQL : %w", err)
	}
	defer stmtSplit.Close()

	for _, split := range splits {
		_, err := stmtSplit.Exec(newTxID, split.AccountID, split.Amount.String(), split.Value.String(), split.Memo)
		if err != nil {
			return 0, fmt.Errorf("failed to insert split : %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return 0, err
	}

	return newTxID, nil
}

// TransactionByID retrieves a transaction without its splits.
func (b *Book) TransactionByID(txID int64) (*Transaction, error) {
	tx := &Transaction{}
	var currencyID sql.NullInt64

	err := b.db.QueryRow(`
		SELECT id, post_date, description, currency_id
		FROM transactions
		WHERE id = ?
	`, txID).Scan(&tx.ID, &tx.PostDate, &tx.Description, &currencyID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction with ID %d: %w", txID, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}

	if currencyID.Valid {
		tx.CurrencyID = &currencyID.Int64
	}

	return tx, nil
}

// DeleteTransaction removes a transaction; its splits go with it via the
// cascading foreign key.
func (b *Book) DeleteTransaction(txID int64) error {
	if err := b.writable(); err != nil {
		return err
	}

	result, err := b.db.Exec("DELETE FROM transactions WHERE id = ?", txID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("transaction with ID %d: %w", txID, ErrRecordNotFound)
	}

	return nil
}

// SplitsByAccount returns the splits posted to an account in insertion order.
func (b *Book) SplitsByAccount(accountID int64) ([]*Split, error) {
	rows, err := b.db.Query(`
		SELECT id, transaction_id, account_id, amount, value, memo
		FROM splits
		WHERE account_id = ?
		ORDER BY id
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query splits: %w", err)
	}
	defer rows.Close()

	var splits []*Split
	for rows.Next() {
		split, err := scanSplit(rows)
		if err != nil {
			return nil, err
		}
		splits = append(splits, split)
	}

	return splits, rows.Err()
}

// SplitsByTransaction returns the splits belonging to a transaction.
func (b *Book) SplitsByTransaction(txID int64) ([]*Split, error) {
	rows, err := b.db.Query(`
		SELECT id, transaction_id, account_id, amount, value, memo
		FROM splits
		WHERE transaction_id = ?
		ORDER BY id
	`, txID)
	if err != nil {
		return nil, fmt.Errorf("failed to query splits: %w", err)
	}
	defer rows.Close()

	var splits []*Split
	for rows.Next() {
		split, err := scanSplit(rows)
		if err != nil {
			return nil, err
		}
		splits = append(splits, split)
	}

	return splits, rows.Err()
}

func scanSplit(rows *sql.Rows) (*Split, error) {
	split := &Split{}
	var txID sql.NullInt64
	var amount, value string

	if err := rows.Scan(&split.ID, &txID, &split.AccountID, &amount, &value, &split.Memo); err != nil {
		return nil, fmt.Errorf("failed to scan split: %w", err)
	}

	if txID.Valid {
		split.TransactionID = &txID.Int64
	}

	var err error
	if split.Amount, err = parseAmount(amount); err != nil {
		return nil, err
	}
	if split.Value, err = parseAmount(value); err != nil {
		return nil, err
	}

	return split, nil
}

// CountTransactions reports the number of transactions in the book.
func (b *Book) CountTransactions() (int64, error) {
	var n int64
	if err := b.db.QueryRow("SELECT COUNT(*) FROM transactions").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return n, nil
}

// CountSplits reports the number of splits in the book.
func (b *Book) CountSplits() (int64, error) {
	var n int64
	if err := b.db.QueryRow("SELECT COUNT(*) FROM splits").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count splits: %w", err)
	}
	return n, nil
}
