package engine

import "fmt"

// Term is the capability contract a concrete variant implements to take part
// in comparisons. Terms are immutable values: negation, making generic, and
// substitution all construct new terms.
type Term interface {
	fmt.Stringer

	// Generic reports whether the term is a placeholder substitutable by
	// any term of compatible shape.
	Generic() bool

	// Absent reports whether the term asserts the negation of its
	// non-absent counterpart.
	Absent() bool

	// Name returns the term's identifier, or "" if it has none. Terms with
	// the same name within one comparison refer to the same logical object.
	Name() string

	// Terms returns the term's immediate children in order. Leaf terms
	// return nil and carry their payload in the leaf relations instead.
	Terms() []Term

	// Key returns a stable printable identity. Equal terms must produce
	// equal keys.
	Key() string

	// SameKind reports whether other is of the same concrete variant.
	// Terms of different variants are never comparable.
	SameKind(other Term) bool

	// LeafImplies, LeafMeans and LeafContradicts are the variant-specific
	// relations on the term's own payload, consulted alongside the
	// structural comparison of children. They are only called with an
	// argument for which SameKind holds.
	LeafImplies(other Term) bool
	LeafMeans(other Term) bool
	LeafContradicts(other Term) bool

	// Interchangeable returns groups of child positions whose reordering
	// preserves meaning. Each group has at least two positions; that is
	// enforced at construction time, not here.
	Interchangeable() [][]int

	// WithTerms returns a copy of the term with its children replaced.
	WithTerms(ts []Term) Term
}

// GenericTerms collects the generic placeholders reachable from t, outermost
// first, deduplicated by key. A generic term stands for itself as a whole, so
// its own children are not descended into.
func GenericTerms(t Term) []Term {
	var out []Term
	seen := map[string]bool{}
	appendGenericTerms(&out, seen, t)
	return out
}

func appendGenericTerms(out *[]Term, seen map[string]bool, t Term) {
	if t == nil {
		return
	}
	if t.Generic() {
		if !seen[t.Key()] {
			seen[t.Key()] = true
			*out = append(*out, t)
		}
		return
	}
	for _, c := range t.Terms() {
		appendGenericTerms(out, seen, c)
	}
}

// NewContext returns a term structurally identical to t with its generic
// placeholders substituted per r. Terms without a binding are kept; t itself
// is returned unchanged when nothing applies.
func NewContext(t Term, r *Register) Term {
	if t == nil || r.Len() == 0 {
		return t
	}
	if t.Generic() {
		if v, ok := r.Get(t); ok {
			return v
		}
		return t
	}
	children := t.Terms()
	if len(children) == 0 {
		return t
	}
	changed := false
	ts := make([]Term, len(children))
	for i, c := range children {
		ts[i] = NewContext(c, r)
		if ts[i].Key() != c.Key() {
			changed = true
		}
	}
	if !changed {
		return t
	}
	return t.WithTerms(ts)
}
