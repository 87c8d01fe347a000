package semblance

import (
	"fmt"

	"github.com/likeness/semblance/engine"
)

// Statement is a clause plus the ordered terms filling its placeholder
// slots: the Fact shape. Statements are immutable values; MakeAbsent and
// MakeGeneric return modified copies.
type Statement struct {
	clause  Clause
	terms   []engine.Term
	absent  bool
	generic bool
}

// NewStatement fills c's placeholders with terms, positionally.
func NewStatement(c Clause, terms ...engine.Term) (Statement, error) {
	if len(terms) != len(c.Slots()) {
		return Statement{}, fmt.Errorf("%q has %d placeholders, got %d terms: %w",
			c.Content(), len(c.Slots()), len(terms), ErrArgumentCount)
	}
	ts := make([]engine.Term, len(terms))
	copy(ts, terms)
	return Statement{clause: c, terms: ts}, nil
}

// MustStatement is NewStatement for literals; it panics on an argument count
// mismatch.
func MustStatement(c Clause, terms ...engine.Term) Statement {
	s, err := NewStatement(c, terms...)
	if err != nil {
		panic(err)
	}
	return s
}

// Clause returns the statement's clause.
func (s Statement) Clause() Clause { return s.clause }

// MakeAbsent returns a statement asserting the negation of what the present
// statement asserts.
func (s Statement) MakeAbsent() Statement {
	s.absent = true
	return s
}

// MakeGeneric returns a statement standing for any statement of compatible
// shape.
func (s Statement) MakeGeneric() Statement {
	s.generic = true
	return s
}

// Negated returns a statement asserting the opposite clause over the same
// terms.
func (s Statement) Negated() Statement {
	s.clause = s.clause.Negated()
	return s
}

func (s Statement) Generic() bool { return s.generic }

func (s Statement) Absent() bool { return s.absent }

func (s Statement) Name() string { return "" }

func (s Statement) Terms() []engine.Term {
	ts := make([]engine.Term, len(s.terms))
	copy(ts, s.terms)
	return ts
}

func (s Statement) Key() string { return s.String() }

func (s Statement) String() string {
	i := 0
	filled := placeholderPattern.ReplaceAllStringFunc(s.clause.Content(), func(string) string {
		t := s.terms[i]
		i++
		return t.String()
	})
	if c, ok := s.clause.(Comparison); ok {
		filled = fmt.Sprintf("%s %s %s", filled, c.sign, c.quantity)
	} else if p, ok := s.clause.(Predicate); ok && !p.truth {
		filled = "it was false that " + filled
	}
	str := "the statement that " + filled
	if s.generic {
		str = "<" + str + ">"
	}
	if s.absent {
		str = "absent " + str
	}
	return str
}

func (s Statement) SameKind(other engine.Term) bool {
	_, ok := other.(Statement)
	return ok
}

func (s Statement) LeafImplies(other engine.Term) bool {
	return s.clause.implies(other.(Statement).clause)
}

func (s Statement) LeafMeans(other engine.Term) bool {
	return s.clause.means(other.(Statement).clause)
}

func (s Statement) LeafContradicts(other engine.Term) bool {
	return s.clause.contradicts(other.(Statement).clause)
}

func (s Statement) Interchangeable() [][]int { return s.clause.Interchangeable() }

func (s Statement) WithTerms(ts []engine.Term) engine.Term {
	n := make([]engine.Term, len(ts))
	copy(n, ts)
	s.terms = n
	return s
}
