package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avosch/rollbook/internal/constants"
)

// AccountParams describes a new account. ParentID must reference an existing
// account; CommodityID may be nil for accounts with no native commodity.
type AccountParams struct {
	Name        string
	Type        string
	ParentID    int64
	CommodityID *int64
	Placeholder bool
	Description string
}

func (b *Book) CreateAccount(p AccountParams) (int64, error) {
	if err := b.writable(); err != nil {
		return 0, err
	}
	if !constants.ValidAccountTypes[p.Type] {
		return 0, fmt.Errorf("invalid account type '%s'", p.Type)
	}
	if strings.Contains(p.Name, constants.FullNameSeparator) {
		return 0, fmt.Errorf("account name '%s' must not contain '%s'", p.Name, constants.FullNameSeparator)
	}

	stmt, err := b.db.Prepare(`
		INSERT INTO accounts (name, type, parent_id, commodity_id, placeholder, description)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer stmt.Close()

	var newID int64
	err = stmt.QueryRow(p.Name, p.Type, p.ParentID, p.CommodityID, p.Placeholder, p.Description).Scan(&newID)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, fmt.Errorf("%w: '%s'", ErrAccountExists, p.Name)
		}
		return 0, fmt.Errorf("failed to insert account : %w", err)
	}

	return newID, nil
}

const accountColumns = "id, name, type, parent_id, commodity_id, placeholder, description, hidden"

func scanAccount(row interface{ Scan(...any) error }) (*Account, error) {
	acc := &Account{}
	var parentID, commodityID sql.NullInt64

	err := row.Scan(
		&acc.ID, &acc.Name, &acc.Type,
		&parentID, &commodityID,
		&acc.Placeholder, &acc.Description, &acc.Hidden,
	)
	if err != nil {
		return nil, err
	}

	if parentID.Valid {
		acc.ParentID = &parentID.Int64
	}
	if commodityID.Valid {
		acc.CommodityID = &commodityID.Int64
	}

	return acc, nil
}

// RootAccount returns the single root node of the account tree.
func (b *Book) RootAccount() (*Account, error) {
	row := b.db.QueryRow("SELECT " + accountColumns + " FROM accounts WHERE type = 'root' AND parent_id IS NULL")
	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("book has no root account: %w", ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query root account: %w", err)
	}
	return acc, nil
}

func (b *Book) AccountByID(id int64) (*Account, error) {
	row := b.db.QueryRow("SELECT "+accountColumns+" FROM accounts WHERE id = ?", id)
	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account with ID %d: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account with ID %d: %w", id, err)
	}
	return acc, nil
}

// Children returns the direct children of an account in creation order.
func (b *Book) Children(parentID int64) ([]*Account, error) {
	rows, err := b.db.Query("SELECT "+accountColumns+" FROM accounts WHERE parent_id = ? ORDER BY id", parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query child accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

// Descendants returns every account below the given one, pre-order.
func (b *Book) Descendants(parentID int64) ([]*Account, error) {
	children, err := b.Children(parentID)
	if err != nil {
		return nil, err
	}

	var all []*Account
	for _, child := range children {
		all = append(all, child)
		sub, err := b.Descendants(child.ID)
		if err != nil {
			return nil, err
		}
		all = append(all, sub...)
	}

	return all, nil
}

// FullName returns the dot-joined path of an account below the root. The root
// itself has an empty full name.
func (b *Book) FullName(acc *Account) (string, error) {
	var segments []string
	current := acc

	for current.ParentID != nil {
		segments = append([]string{current.Name}, segments...)
		parent, err := b.AccountByID(*current.ParentID)
		if err != nil {
			return "", fmt.Errorf("resolving parent of account '%s': %w", current.Name, err)
		}
		current = parent
	}

	return strings.Join(segments, constants.FullNameSeparator), nil
}

// AccountByFullName resolves a dot-joined full name starting at the root.
func (b *Book) AccountByFullName(fullName string) (*Account, error) {
	root, err := b.RootAccount()
	if err != nil {
		return nil, err
	}

	current := root
	for _, segment := range strings.Split(fullName, constants.FullNameSeparator) {
		row := b.db.QueryRow(
			"SELECT "+accountColumns+" FROM accounts WHERE parent_id = ? AND name = ?",
			current.ID, segment,
		)
		next, err := scanAccount(row)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, fmt.Errorf("account '%s': %w", fullName, ErrRecordNotFound)
			}
			return nil, fmt.Errorf("failed to resolve account '%s': %w", fullName, err)
		}
		current = next
	}

	return current, nil
}

// AccountBalance sums the split amounts posted to an account, in the
// account's own commodity.
func (b *Book) AccountBalance(accountID int64) (decimal.Decimal, error) {
	rows, err := b.db.Query("SELECT amount FROM splits WHERE account_id = ?", accountID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to query splits for balance: %w", err)
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return decimal.Zero, fmt.Errorf("failed to scan split amount: %w", err)
		}
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Zero, fmt.Errorf("corrupt split amount '%s': %w", raw, err)
		}
		total = total.Add(amount)
	}

	return total, rows.Err()
}

// AccountCommodity returns the account's native commodity, or nil when the
// account has none.
func (b *Book) AccountCommodity(acc *Account) (*Commodity, error) {
	if acc.CommodityID == nil {
		return nil, nil
	}
	return b.CommodityByID(*acc.CommodityID)
}
