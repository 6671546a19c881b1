package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avosch/rollbook/internal/constants"
)

// conversionScale bounds the precision of divided exchange rates.
const conversionScale = 8

func parseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("corrupt decimal value '%s': %w", raw, err)
	}
	return d, nil
}

// AddPrice records the value of one unit of commodity in currency on date.
func (b *Book) AddPrice(commodityID, currencyID int64, date time.Time, value decimal.Decimal, source string) (int64, error) {
	if err := b.writable(); err != nil {
		return 0, err
	}

	var newID int64
	err := b.db.QueryRow(`
		INSERT INTO prices (commodity_id, currency_id, quote_date, value, source)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id;
	`, commodityID, currencyID, date.Format(constants.DateFormat), value.String(), source).Scan(&newID)

	if err != nil {
		return 0, fmt.Errorf("failed to insert price : %w", err)
	}

	return newID, nil
}

// Prices returns every quote in the book, newest first.
func (b *Book) Prices() ([]*Price, error) {
	rows, err := b.db.Query(`
		SELECT id, commodity_id, currency_id, quote_date, value, source
		FROM prices
		ORDER BY quote_date DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query prices: %w", err)
	}
	defer rows.Close()

	var prices []*Price
	for rows.Next() {
		p := &Price{}
		var raw string
		if err := rows.Scan(&p.ID, &p.CommodityID, &p.CurrencyID, &p.QuoteDate, &raw, &p.Source); err != nil {
			return nil, fmt.Errorf("failed to scan price: %w", err)
		}
		if p.Value, err = parseAmount(raw); err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}

	return prices, rows.Err()
}

// NearestPriceBefore returns the latest quote for the commodity/currency pair
// dated on or before the given date.
func (b *Book) NearestPriceBefore(commodityID, currencyID int64, date time.Time) (decimal.Decimal, error) {
	var raw string
	err := b.db.QueryRow(`
		SELECT value
		FROM prices
		WHERE commodity_id = ? AND currency_id = ? AND quote_date <= ?
		ORDER BY quote_date DESC, id DESC
		LIMIT 1
	`, commodityID, currencyID, date.Format(constants.DateFormat)).Scan(&raw)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, ErrNoPrice
		}
		return decimal.Zero, fmt.Errorf("failed to query price: %w", err)
	}

	return parseAmount(raw)
}

// ConvertBalance converts an amount between commodities using the nearest
// on-or-before quote. When no direct quote exists the inverse pair is tried.
func (b *Book) ConvertBalance(amount decimal.Decimal, from, to *Commodity, date time.Time) (decimal.Decimal, error) {
	if from.ID == to.ID {
		return amount, nil
	}

	rate, err := b.NearestPriceBefore(from.ID, to.ID, date)
	if err == nil {
		return amount.Mul(rate), nil
	}
	if !errors.Is(err, ErrNoPrice) {
		return decimal.Zero, err
	}

	inverse, err := b.NearestPriceBefore(to.ID, from.ID, date)
	if err != nil {
		if errors.Is(err, ErrNoPrice) {
			return decimal.Zero, fmt.Errorf("%w for %s to %s on or before %s",
				ErrNoPrice, from.Code, to.Code, date.Format(constants.DateFormat))
		}
		return decimal.Zero, err
	}
	if inverse.IsZero() {
		return decimal.Zero, fmt.Errorf("inverse quote for %s to %s is zero, cannot convert", to.Code, from.Code)
	}

	return amount.DivRound(inverse, conversionScale), nil
}
