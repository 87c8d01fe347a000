package semblance

import "fmt"

// Sign is the relation a comparison asserts between its subject and its
// quantity.
type Sign string

const (
	Equal          Sign = "="
	NotEqual       Sign = "!="
	GreaterThan    Sign = ">"
	GreaterOrEqual Sign = ">="
	LessThan       Sign = "<"
	LessOrEqual    Sign = "<="
)

func (s Sign) negated() Sign {
	switch s {
	case Equal:
		return NotEqual
	case NotEqual:
		return Equal
	case GreaterThan:
		return LessOrEqual
	case GreaterOrEqual:
		return LessThan
	case LessThan:
		return GreaterOrEqual
	case LessOrEqual:
		return GreaterThan
	default:
		return s
	}
}

func (s Sign) valid() bool {
	switch s {
	case Equal, NotEqual, GreaterThan, GreaterOrEqual, LessThan, LessOrEqual:
		return true
	default:
		return false
	}
}

// Comparison is template content plus a sign and a quantity: "the distance
// between $place1 and $place2 was" with "> 30 kilometers". Its relations are
// interval containment and disjointness over the quantity's decimal amount;
// the content and the unit must agree, otherwise two comparisons are simply
// unrelated.
//
// Truth normalization happens here and only here: building a comparison with
// truth false flips the sign, so a stored comparison is always affirmative.
type Comparison struct {
	content  string
	sign     Sign
	quantity Quantity
	slots    []string
	groups   [][]int
}

// NewComparison parses content into a comparison asserting sign against
// quantity. Passing truth false negates the sign instead of storing a truth
// flag.
func NewComparison(content string, sign Sign, quantity Quantity, truth bool) (Comparison, error) {
	if !sign.valid() {
		return Comparison{}, fmt.Errorf("sign %q: %w", string(sign), ErrUnknownSign)
	}
	slots, groups, err := parseTemplate(content)
	if err != nil {
		return Comparison{}, err
	}
	if !truth {
		sign = sign.negated()
	}
	return Comparison{content: content, sign: sign, quantity: quantity, slots: slots, groups: groups}, nil
}

// MustComparison is NewComparison for literals; it panics on a malformed
// template or sign.
func MustComparison(content string, sign Sign, quantity Quantity, truth bool) Comparison {
	c, err := NewComparison(content, sign, quantity, truth)
	if err != nil {
		panic(err)
	}
	return c
}

// Truth is always true: a negated comparison is stored with its sign
// flipped.
func (c Comparison) Truth() bool { return true }

// Sign returns the normalized sign.
func (c Comparison) Sign() Sign { return c.sign }

// Quantity returns the quantity compared against.
func (c Comparison) Quantity() Quantity { return c.quantity }

func (c Comparison) Content() string { return c.content }

func (c Comparison) Slots() []string {
	ss := make([]string, len(c.slots))
	copy(ss, c.slots)
	return ss
}

func (c Comparison) Interchangeable() [][]int { return c.groups }

// Negated returns the comparison with its sign flipped.
func (c Comparison) Negated() Clause {
	c.sign = c.sign.negated()
	return c
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s %s %s", c.content, c.sign, c.quantity)
}

// implies reports whether every amount satisfying c also satisfies o.
func (c Comparison) implies(o Clause) bool {
	q, ok := o.(Comparison)
	if !ok || c.content != q.content {
		return false
	}
	cmp, ok := c.quantity.Cmp(q.quantity)
	if !ok {
		return false
	}
	switch q.sign {
	case Equal:
		return c.sign == Equal && cmp == 0
	case NotEqual:
		switch c.sign {
		case Equal:
			return cmp != 0
		case NotEqual:
			return cmp == 0
		case GreaterThan:
			return cmp >= 0
		case GreaterOrEqual:
			return cmp > 0
		case LessThan:
			return cmp <= 0
		case LessOrEqual:
			return cmp < 0
		}
	case GreaterThan:
		switch c.sign {
		case Equal, GreaterOrEqual:
			return cmp > 0
		case GreaterThan:
			return cmp >= 0
		}
	case GreaterOrEqual:
		switch c.sign {
		case Equal, GreaterThan, GreaterOrEqual:
			return cmp >= 0
		}
	case LessThan:
		switch c.sign {
		case Equal, LessOrEqual:
			return cmp < 0
		case LessThan:
			return cmp <= 0
		}
	case LessOrEqual:
		switch c.sign {
		case Equal, LessThan, LessOrEqual:
			return cmp <= 0
		}
	}
	return false
}

func (c Comparison) means(o Clause) bool {
	q, ok := o.(Comparison)
	if !ok || c.content != q.content || c.sign != q.sign {
		return false
	}
	cmp, ok := c.quantity.Cmp(q.quantity)
	return ok && cmp == 0
}

// contradicts reports whether no amount can satisfy both comparisons.
func (c Comparison) contradicts(o Clause) bool {
	q, ok := o.(Comparison)
	if !ok || c.content != q.content {
		return false
	}
	cmp, ok := c.quantity.Cmp(q.quantity)
	if !ok {
		return false
	}
	switch {
	case c.sign == Equal && q.sign == Equal:
		return cmp != 0
	case c.sign == Equal && q.sign == NotEqual, c.sign == NotEqual && q.sign == Equal:
		return cmp == 0
	case c.sign == Equal && q.sign == GreaterThan:
		return cmp <= 0
	case c.sign == GreaterThan && q.sign == Equal:
		return cmp >= 0
	case c.sign == Equal && q.sign == GreaterOrEqual:
		return cmp < 0
	case c.sign == GreaterOrEqual && q.sign == Equal:
		return cmp > 0
	case c.sign == Equal && q.sign == LessThan:
		return cmp >= 0
	case c.sign == LessThan && q.sign == Equal:
		return cmp <= 0
	case c.sign == Equal && q.sign == LessOrEqual:
		return cmp > 0
	case c.sign == LessOrEqual && q.sign == Equal:
		return cmp < 0
	case c.sign == GreaterThan && q.sign == LessThan,
		c.sign == GreaterThan && q.sign == LessOrEqual,
		c.sign == GreaterOrEqual && q.sign == LessThan:
		return cmp >= 0
	case c.sign == GreaterOrEqual && q.sign == LessOrEqual:
		return cmp > 0
	case c.sign == LessThan && q.sign == GreaterThan,
		c.sign == LessOrEqual && q.sign == GreaterThan,
		c.sign == LessThan && q.sign == GreaterOrEqual:
		return cmp <= 0
	case c.sign == LessOrEqual && q.sign == GreaterOrEqual:
		return cmp < 0
	default:
		return false
	}
}
