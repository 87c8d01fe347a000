package semblance

import (
	"fmt"

	"github.com/cockroachdb/apd"

	"github.com/likeness/semblance/engine"
)

// Quantity is a concrete leaf value: an arbitrary-precision decimal amount
// with an opaque unit label. Quantities are never generic and never absent.
// Quantities with different units are simply incomparable; the engine treats
// them as unrelated, not as an error.
type Quantity struct {
	amount *apd.Decimal
	unit   string
}

// NewQuantity parses amount as a decimal.
func NewQuantity(amount, unit string) (Quantity, error) {
	d, _, err := apd.NewFromString(amount)
	if err != nil {
		return Quantity{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	return Quantity{amount: d, unit: unit}, nil
}

// MustQuantity is NewQuantity for literals; it panics on a malformed amount.
func MustQuantity(amount, unit string) Quantity {
	q, err := NewQuantity(amount, unit)
	if err != nil {
		panic(err)
	}
	return q
}

// Amount returns the decimal amount.
func (q Quantity) Amount() *apd.Decimal { return q.amount }

// Unit returns the unit label.
func (q Quantity) Unit() string { return q.unit }

// Cmp compares the amounts. It reports false if the units differ.
func (q Quantity) Cmp(o Quantity) (int, bool) {
	if q.unit != o.unit {
		return 0, false
	}
	return q.amount.Cmp(o.amount), true
}

func (q Quantity) Generic() bool { return false }

func (q Quantity) Absent() bool { return false }

func (q Quantity) Name() string { return "" }

func (q Quantity) Terms() []engine.Term { return nil }

func (q Quantity) Key() string { return q.String() }

func (q Quantity) String() string {
	if q.amount == nil {
		return "0 " + q.unit
	}
	if q.unit == "" {
		return q.amount.String()
	}
	return q.amount.String() + " " + q.unit
}

func (q Quantity) SameKind(other engine.Term) bool {
	_, ok := other.(Quantity)
	return ok
}

func (q Quantity) LeafImplies(other engine.Term) bool {
	c, ok := q.Cmp(other.(Quantity))
	return ok && c == 0
}

func (q Quantity) LeafMeans(other engine.Term) bool {
	c, ok := q.Cmp(other.(Quantity))
	return ok && c == 0
}

func (q Quantity) LeafContradicts(other engine.Term) bool {
	c, ok := q.Cmp(other.(Quantity))
	return ok && c != 0
}

func (q Quantity) Interchangeable() [][]int { return nil }

func (q Quantity) WithTerms([]engine.Term) engine.Term { return q }
