package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point currency amount. It is rendered with exactly two
// fraction digits everywhere it leaves the process: as a quoted string in
// JSON and as the text form of a decimal(10,2) column in the database.
type Money struct {
	d decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{d: d}
}

func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{d: d}, nil
}

func (m Money) Decimal() decimal.Decimal {
	return m.d
}

func (m Money) Add(other Money) Money {
	return Money{d: m.d.Add(other.d)}
}

func (m Money) Equal(other Money) bool {
	return m.d.Equal(other.d)
}

func (m Money) String() string {
	return m.d.StringFixed(2)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts both "123.45" and bare 123.45 so older clients that
// posted JSON numbers keep working.
func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var d decimal.Decimal
		if err := json.Unmarshal(data, &d); err != nil {
			return fmt.Errorf("invalid money value %s", string(data))
		}
		m.d = d
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid money value %q", s)
	}
	m.d = d
	return nil
}

func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

func (m *Money) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		m.d = decimal.Zero
		return nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return err
		}
		m.d = d
		return nil
	case []byte:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return err
		}
		m.d = d
		return nil
	case float64:
		m.d = decimal.NewFromFloat(v)
		return nil
	case int64:
		m.d = decimal.NewFromInt(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Money", value)
	}
}
