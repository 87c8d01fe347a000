package engine

import (
	"sort"
	"strings"
)

// Pair is one key-value binding of a Register.
type Pair struct {
	Key   Term
	Value Term
}

// Register is an invertible partial mapping from terms on one side of a
// comparison to terms on the other side. A nil *Register is a valid empty
// register. Registers are value objects: every operation returns a new
// register and never mutates the receiver.
type Register struct {
	pairs []Pair
}

// NewRegister creates an empty register.
func NewRegister() *Register {
	return &Register{}
}

// FromPairs creates a register holding the given pairs, in order.
// Later pairs overwrite earlier pairs with the same key.
func FromPairs(pairs ...Pair) *Register {
	var r *Register
	for _, p := range pairs {
		r = r.Insert(p.Key, p.Value)
	}
	return r
}

// Len returns the number of pairs in the register.
func (r *Register) Len() int {
	if r == nil {
		return 0
	}
	return len(r.pairs)
}

// Pairs returns the register's pairs in insertion order.
func (r *Register) Pairs() []Pair {
	if r == nil {
		return nil
	}
	ps := make([]Pair, len(r.pairs))
	copy(ps, r.pairs)
	return ps
}

// Insert returns a register with key bound to value in the forward direction
// and value bound to key in the backward direction. An existing binding for
// the same key is overwritten silently; callers that need conflict detection
// use MergedWith instead.
func (r *Register) Insert(key, value Term) *Register {
	n := &Register{pairs: make([]Pair, 0, r.Len()+1)}
	k := key.Key()
	for _, p := range r.Pairs() {
		if p.Key.Key() == k {
			continue
		}
		n.pairs = append(n.pairs, p)
	}
	n.pairs = append(n.pairs, Pair{Key: key, Value: value})
	return n
}

// Get returns the term bound to key in the forward direction.
func (r *Register) Get(key Term) (Term, bool) {
	if r == nil {
		return nil, false
	}
	k := key.Key()
	for _, p := range r.pairs {
		if p.Key.Key() == k {
			return p.Value, true
		}
	}
	return nil, false
}

// GetReverse returns the term bound to value in the backward direction.
func (r *Register) GetReverse(value Term) (Term, bool) {
	if r == nil {
		return nil, false
	}
	k := value.Key()
	for _, p := range r.pairs {
		if p.Value.Key() == k {
			return p.Key, true
		}
	}
	return nil, false
}

// MergedWith adds every pair of other into a copy of r. It fails if a key
// already maps to a different value, or if a value would end up the target of
// two distinct keys. Both checks run against the partially merged state, so a
// conflict between two of other's own pairs is caught as well.
func (r *Register) MergedWith(other *Register) (*Register, bool) {
	merged := &Register{pairs: r.Pairs()}
	for _, p := range other.Pairs() {
		if v, ok := merged.Get(p.Key); ok {
			if v.Key() != p.Value.Key() {
				return nil, false
			}
			continue
		}
		if k, ok := merged.GetReverse(p.Value); ok {
			if k.Key() != p.Key.Key() {
				return nil, false
			}
			continue
		}
		merged.pairs = append(merged.pairs, p)
	}
	return merged, true
}

// Reversed returns a register with the forward and backward directions
// swapped, flipping the viewpoint of the comparison that produced it.
func (r *Register) Reversed() *Register {
	n := &Register{pairs: make([]Pair, 0, r.Len())}
	for _, p := range r.Pairs() {
		n.pairs = append(n.pairs, Pair{Key: p.Value, Value: p.Key})
	}
	return n
}

// ReplaceKeys returns a register whose keys are substituted via mapping,
// keyed by Term.Key. Values are left untouched. Keys without a replacement
// are kept as they are.
func (r *Register) ReplaceKeys(mapping map[string]Term) *Register {
	n := &Register{pairs: make([]Pair, 0, r.Len())}
	for _, p := range r.Pairs() {
		if t, ok := mapping[p.Key.Key()]; ok {
			p.Key = t
		}
		n.pairs = append(n.pairs, p)
	}
	return n
}

func (r *Register) String() string {
	if r.Len() == 0 {
		return "no bindings"
	}
	ls := make([]string, 0, r.Len())
	for _, p := range r.pairs {
		ls = append(ls, p.Key.String()+" is like "+p.Value.String())
	}
	return strings.Join(ls, ", and ")
}

// key returns a canonical identity for the whole register, used to skip
// duplicate candidates during a search.
func (r *Register) key() string {
	if r.Len() == 0 {
		return ""
	}
	ls := make([]string, 0, len(r.pairs))
	for _, p := range r.pairs {
		ls = append(ls, p.Key.Key()+"="+p.Value.Key())
	}
	sort.Strings(ls)
	return strings.Join(ls, ";")
}
