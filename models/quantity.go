package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// quantityKind discriminates the three states of a [Quantity].
type quantityKind int

const (
	quantityAbsent quantityKind = iota
	quantityString
	quantityNumber
)

// Quantity is the loosely typed amount descriptor of an item: clients may
// send it as a JSON string ("2 packs") or a JSON number (3), or omit it
// entirely. It is modelled as a tagged variant rather than an interface{}
// so that callers always know which representation they hold.
//
// Persistence collapses the variant to text: numbers are stored with minimal
// digits and scanned back as the string form, matching the TEXT column
// affinity of the underlying schema.
type Quantity struct {
	kind quantityKind
	str  string
	num  float64
}

// StringQuantity returns a Quantity holding the string form s.
func StringQuantity(s string) Quantity {
	return Quantity{kind: quantityString, str: s}
}

// NumberQuantity returns a Quantity holding the numeric form n.
func NumberQuantity(n float64) Quantity {
	return Quantity{kind: quantityNumber, num: n}
}

// Present reports whether a quantity value was supplied at all.
func (q Quantity) Present() bool {
	return q.kind != quantityAbsent
}

// String returns the textual form of the quantity. Numbers are formatted
// with the minimal number of digits; an absent quantity yields "".
func (q Quantity) String() string {
	switch q.kind {
	case quantityString:
		return q.str
	case quantityNumber:
		return strconv.FormatFloat(q.num, 'f', -1, 64)
	default:
		return ""
	}
}

// MarshalJSON encodes the variant back into the shape the client submitted:
// a string, a number, or null when absent.
func (q Quantity) MarshalJSON() ([]byte, error) {
	switch q.kind {
	case quantityString:
		return json.Marshal(q.str)
	case quantityNumber:
		return json.Marshal(q.num)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a JSON string or number. Null resets the quantity to
// absent. Any other JSON type is an error; the validator reports the same
// condition as a field-level message before decoding is ever attempted.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*q = Quantity{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*q = StringQuantity(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*q = NumberQuantity(n)
		return nil
	}

	return errors.New("quantity must be a string or number")
}

// Value implements [driver.Valuer]. Absent quantities persist as NULL,
// everything else as text.
func (q Quantity) Value() (driver.Value, error) {
	if !q.Present() {
		return nil, nil
	}
	return q.String(), nil
}

// Scan implements [sql.Scanner]. NULL restores the absent state; text
// columns restore the string form.
func (q *Quantity) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*q = Quantity{}
	case string:
		*q = StringQuantity(v)
	case []byte:
		*q = StringQuantity(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Quantity", src)
	}
	return nil
}
