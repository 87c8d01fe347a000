package engine

import (
	"fmt"
	"strings"
)

// Relation identifies which relation an explanation witnesses.
type Relation int

const (
	// Implication is the "self implies other" relation.
	Implication Relation = iota
	// SameMeaning is the "self means the same as other" relation.
	SameMeaning
	// Contradiction is the "self contradicts other" relation.
	Contradiction
	// Consistency is the "self is consistent with other" relation.
	Consistency
)

func (r Relation) String() string {
	switch r {
	case Implication:
		return "IMPLIES"
	case SameMeaning:
		return "MEANS"
	case Contradiction:
		return "CONTRADICTS"
	case Consistency:
		return "IS CONSISTENT WITH"
	default:
		return fmt.Sprintf("unknown relation %d", int(r))
	}
}

// Match is one matched pair of terms on a successful search path.
type Match struct {
	Left  Term
	Right Term
}

// Explanation is a witness for a relation: the matched pairs on one
// successful search path together with the register that makes the relation
// hold. Explanations are value objects; AddMatch returns a new explanation
// and never mutates the receiver.
type Explanation struct {
	context  *Register
	matches  []Match
	relation Relation
}

// NewExplanation creates an explanation holding r and no matches yet.
func NewExplanation(r *Register) *Explanation {
	return &Explanation{context: r}
}

// Context returns the witness register.
func (e *Explanation) Context() *Register {
	if e == nil {
		return nil
	}
	return e.context
}

// Matches returns the matched pairs in the order they were recorded.
func (e *Explanation) Matches() []Match {
	if e == nil {
		return nil
	}
	ms := make([]Match, len(e.matches))
	copy(ms, e.matches)
	return ms
}

// Relation returns the relation under test.
func (e *Explanation) Relation() Relation {
	if e == nil {
		return Implication
	}
	return e.relation
}

// AddMatch returns an explanation extended by one matched pair.
func (e *Explanation) AddMatch(left, right Term) *Explanation {
	n := &Explanation{
		context:  e.Context(),
		matches:  make([]Match, 0, len(e.Matches())+1),
		relation: e.Relation(),
	}
	n.matches = append(n.matches, e.Matches()...)
	n.matches = append(n.matches, Match{Left: left, Right: right})
	return n
}

func (e *Explanation) withContext(r *Register) *Explanation {
	n := *e
	n.context = r
	return &n
}

// WithRelation returns an explanation annotated as witnessing r.
func (e *Explanation) WithRelation(r Relation) *Explanation {
	n := *e
	n.relation = r
	return &n
}

func (e *Explanation) String() string {
	var sb strings.Builder
	sb.WriteString("Because ")
	sb.WriteString(e.Context().String())
	sb.WriteString(",\n")
	for _, m := range e.Matches() {
		fmt.Fprintf(&sb, "  %s %s %s\n", m.Left, e.Relation(), m.Right)
	}
	return sb.String()
}
