package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// CommodityByCode looks a commodity up by namespace and code, e.g.
// ("CURRENCY", "EUR"). An unresolvable code is an error, not a nil result.
func (b *Book) CommodityByCode(namespace, code string) (*Commodity, error) {
	c := &Commodity{}
	err := b.db.QueryRow(`
		SELECT id, namespace, code, fullname, fraction
		FROM commodities
		WHERE namespace = ? AND code = ?
	`, namespace, code).Scan(&c.ID, &c.Namespace, &c.Code, &c.Fullname, &c.Fraction)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("commodity %s/%s: %w", namespace, code, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query commodity %s/%s: %w", namespace, code, err)
	}

	return c, nil
}

func (b *Book) CommodityByID(id int64) (*Commodity, error) {
	c := &Commodity{}
	err := b.db.QueryRow(`
		SELECT id, namespace, code, fullname, fraction
		FROM commodities
		WHERE id = ?
	`, id).Scan(&c.ID, &c.Namespace, &c.Code, &c.Fullname, &c.Fraction)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("commodity with ID %d: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query commodity with ID %d: %w", id, err)
	}

	return c, nil
}

func (b *Book) CreateCommodity(namespace, code, fullname string, fraction int64) (int64, error) {
	if err := b.writable(); err != nil {
		return 0, err
	}

	var newID int64
	err := b.db.QueryRow(`
		INSERT INTO commodities (namespace, code, fullname, fraction)
		VALUES (?, ?, ?, ?)
		RETURNING id;
	`, namespace, code, fullname, fraction).Scan(&newID)

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, fmt.Errorf("commodity '%s/%s' already exists", namespace, code)
		}
		return 0, fmt.Errorf("failed to insert commodity : %w", err)
	}

	return newID, nil
}
