package wealthdesk

import (
	"database/sql/driver"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Amount wraps decimal.Decimal for monetary and market values.
// Values are stored in SQLite as TEXT and round-trip losslessly;
// arithmetic (percent-complete, totals) never goes through float64.
type Amount struct {
	decimal.Decimal
}

// String renders the value at its original scale. decimal.Decimal.String
// drops trailing zeros ("145000.00" becomes "145000"); keeping the parsed
// exponent means stored and serialized values match their input exactly.
func (a Amount) String() string {
	if exp := a.Exponent(); exp < 0 {
		return a.StringFixed(-exp)
	}
	return a.Decimal.String()
}

// MarshalJSON outputs the exact decimal string, quoted.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}

// UnmarshalJSON accepts both JSON numbers and quoted strings.
func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.Decimal.UnmarshalJSON(data)
}

// Scan implements sql.Scanner, reading TEXT columns as exact decimals.
func (a *Amount) Scan(src any) error {
	if src == nil {
		a.Decimal = decimal.Zero
		return nil
	}
	switch v := src.(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("scan amount %q: %w", v, err)
		}
		a.Decimal = d
		return nil
	case []byte:
		return a.Scan(string(v))
	case int64:
		a.Decimal = decimal.NewFromInt(v)
		return nil
	case float64:
		a.Decimal = decimal.NewFromFloat(v)
		return nil
	}
	return a.Decimal.Scan(src)
}

// Value implements driver.Valuer, writing the exact decimal string.
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// ParseAmount parses an exact-decimal string.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{d}, nil
}

// MustAmount parses an exact-decimal string and panics on bad input.
// Intended for seed data and tests.
func MustAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// NewAmountFromInt creates an Amount from an int64.
func NewAmountFromInt(i int64) Amount {
	return Amount{decimal.NewFromInt(i)}
}

// Signed renders the amount with an explicit leading sign, as used for
// market change columns ("+0.68", "-1.42").
func (a Amount) Signed() string {
	if a.Sign() >= 0 {
		return "+" + a.String()
	}
	return a.String()
}
