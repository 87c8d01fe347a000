package engine

// The relation engine. Every boolean relation is defined as "the witness
// stream is non-empty" and never computed independently, so yes/no answers
// and witness generation cannot disagree.

// Implies reports whether a implies b.
func Implies(a, b Term) bool {
	return ExplanationsImplication(a, b, nil).Iter().Next()
}

// Means reports whether a means the same as b.
func Means(a, b Term) bool {
	return ExplanationsSameMeaning(a, b, nil).Iter().Next()
}

// Contradicts reports whether a contradicts b.
func Contradicts(a, b Term) bool {
	return ExplanationsContradiction(a, b, nil).Iter().Next()
}

// ConsistentWith reports whether some binding of generic terms leaves a and b
// free of contradiction.
func ConsistentWith(a, b Term) bool {
	return ExplanationsConsistentWith(a, b, nil).Iter().Next()
}

// ExplanationsImplication yields every explanation extending ctx under which
// a implies b.
func ExplanationsImplication(a, b Term, ctx *Register) *Promise {
	return annotate(implication(a, b, ctx), Implication, a, b)
}

// ExplanationsSameMeaning yields every explanation extending ctx under which
// a and b mean the same.
func ExplanationsSameMeaning(a, b Term, ctx *Register) *Promise {
	return annotate(sameMeaning(a, b, ctx), SameMeaning, a, b)
}

// ExplanationsContradiction yields every explanation extending ctx under
// which a contradicts b.
func ExplanationsContradiction(a, b Term, ctx *Register) *Promise {
	return annotate(contradiction(a, b, ctx), Contradiction, a, b)
}

// ExplanationsConsistentWith yields every candidate binding extending ctx
// under which a does not contradict b.
func ExplanationsConsistentWith(a, b Term, ctx *Register) *Promise {
	return annotate(consistency(a, b, ctx), Consistency, a, b)
}

// PossibleContexts yields every candidate binding of a's unbound generic
// terms to b's, extending ctx.
func PossibleContexts(a, b Term, ctx *Register) *Promise {
	return possibleContexts(GenericTerms(a), GenericTerms(b), ctx)
}

// ExplainImplication returns the first witness that a implies b.
func ExplainImplication(a, b Term) (*Explanation, bool) {
	return first(ExplanationsImplication(a, b, nil))
}

// ExplainSameMeaning returns the first witness that a and b mean the same.
func ExplainSameMeaning(a, b Term) (*Explanation, bool) {
	return first(ExplanationsSameMeaning(a, b, nil))
}

// ExplainContradiction returns the first witness that a contradicts b.
func ExplainContradiction(a, b Term) (*Explanation, bool) {
	return first(ExplanationsContradiction(a, b, nil))
}

// Union returns the most specific of the two terms, re-expressed in the
// other's context, if either implies the other. It returns false if neither
// does.
func Union(a, b Term) (Term, bool) {
	if it := ExplanationsImplication(a, b, nil).Contexts(); it.Next() {
		return NewContext(a, it.Current()), true
	}
	if it := ExplanationsImplication(b, a, nil).Contexts(); it.Next() {
		return NewContext(b, it.Current()), true
	}
	return nil, false
}

func first(p *Promise) (*Explanation, bool) {
	it := p.Iter()
	if !it.Next() {
		return nil, false
	}
	return it.Current(), true
}

func annotate(p *Promise, rel Relation, a, b Term) *Promise {
	return p.transform(func(e *Explanation) *Explanation {
		e = e.WithRelation(rel)
		if a != nil && b != nil {
			e = e.AddMatch(a, b)
		}
		return e
	})
}

// explanationsFor dispatches a relation test on one pair of terms. It is the
// entry point the sequence and group matchers call back into.
func explanationsFor(rel Relation, a, b Term, ctx *Register) *Promise {
	switch rel {
	case Implication:
		return implication(a, b, ctx)
	case SameMeaning:
		return sameMeaning(a, b, ctx)
	case Contradiction:
		return contradiction(a, b, ctx)
	case Consistency:
		return consistency(a, b, ctx)
	default:
		return Fail()
	}
}

// implication dispatches on the absent flags of both sides. An absent term on
// the left is handled by flipping the viewpoint with Reversed.
func implication(a, b Term, ctx *Register) *Promise {
	if b == nil {
		// Anything implies the absence of a term slot.
		return Unit(NewExplanation(ctx))
	}
	if a == nil {
		return Fail()
	}
	if !a.SameKind(b) {
		return Fail()
	}
	switch {
	case !a.Absent() && !b.Absent():
		return impliesIfPresent(a, b, ctx)
	case !a.Absent() && b.Absent():
		return contradictsIfPresent(a, b, ctx)
	case a.Absent() && !b.Absent():
		return reversedEach(contradictsIfPresent(b, a, ctx.Reversed()))
	default:
		return reversedEach(impliesIfPresent(b, a, ctx.Reversed()))
	}
}

func sameMeaning(a, b Term, ctx *Register) *Promise {
	if a == nil && b == nil {
		return Unit(NewExplanation(ctx))
	}
	if a == nil || b == nil {
		return Fail()
	}
	if !a.SameKind(b) || a.Absent() != b.Absent() {
		return Fail()
	}
	if a.Generic() || b.Generic() {
		return bindGeneric(a, b, ctx)
	}
	if !a.LeafMeans(b) {
		return Fail()
	}
	return matchOrderings(a, b, SameMeaning, ctx)
}

func contradiction(a, b Term, ctx *Register) *Promise {
	if a == nil || b == nil {
		// The absence of a term contradicts nothing.
		return Fail()
	}
	if !a.SameKind(b) {
		return Fail()
	}
	switch {
	case !a.Absent() && !b.Absent():
		return contradictsIfPresent(a, b, ctx)
	case !a.Absent() && b.Absent():
		return impliesIfPresent(a, b, ctx)
	case a.Absent() && !b.Absent():
		return reversedEach(impliesIfPresent(b, a, ctx.Reversed()))
	default:
		// Absence of X never contradicts absence of Y.
		return Fail()
	}
}

func consistency(a, b Term, ctx *Register) *Promise {
	if a == nil || b == nil {
		return Unit(NewExplanation(ctx))
	}
	if !a.SameKind(b) {
		return Fail()
	}
	return possibleContexts(GenericTerms(a), GenericTerms(b), ctx).filter(func(e *Explanation) bool {
		return !contradiction(a, b, e.Context()).Iter().Next()
	})
}

// impliesIfPresent is the positive-form implication test: both sides
// non-absent. A generic on either side reduces to a single-pair binding;
// otherwise the leaf relation and the structural comparison of children must
// both succeed.
func impliesIfPresent(a, b Term, ctx *Register) *Promise {
	if a.Generic() || b.Generic() {
		return bindGeneric(a, b, ctx)
	}
	if !a.LeafImplies(b) {
		return Fail()
	}
	return matchOrderings(a, b, Implication, ctx)
}

// contradictsIfPresent is the positive-form contradiction test. Generic terms
// never force a contradiction. A contradiction needs the leaf relation to
// genuinely contradict while the children align in meaning under globally
// consistent bindings.
func contradictsIfPresent(a, b Term, ctx *Register) *Promise {
	if a.Generic() || b.Generic() {
		return Fail()
	}
	if !a.LeafContradicts(b) {
		return Fail()
	}
	return matchOrderings(a, b, SameMeaning, ctx)
}

// bindGeneric records that a plays the role of b. The merge fails if either
// term is already bound to something else under ctx.
func bindGeneric(a, b Term, ctx *Register) *Promise {
	merged, ok := ctx.MergedWith(NewRegister().Insert(a, b))
	if !ok {
		return Fail()
	}
	return Unit(NewExplanation(merged))
}

// possibleContexts enumerates candidate bindings assigning each of self's
// unbound generic terms to one of other's, one-to-one. When either side runs
// out of unbound generics the accumulated register is yielded as is.
func possibleContexts(self, other []Term, ctx *Register) *Promise {
	unusedSelf := make([]Term, 0, len(self))
	for _, t := range self {
		if _, ok := ctx.Get(t); !ok {
			unusedSelf = append(unusedSelf, t)
		}
	}
	unusedOther := make([]Term, 0, len(other))
	for _, t := range other {
		if _, ok := ctx.GetReverse(t); !ok {
			unusedOther = append(unusedOther, t)
		}
	}
	return assignGenerics(unusedSelf, unusedOther, ctx)
}

func assignGenerics(self, other []Term, ctx *Register) *Promise {
	if len(self) == 0 || len(other) == 0 {
		return Unit(NewExplanation(ctx))
	}
	g, rest := self[0], self[1:]
	var ks []func() *Promise
	for i, h := range other {
		if !g.SameKind(h) {
			continue
		}
		i, h := i, h
		ks = append(ks, func() *Promise {
			merged, ok := ctx.MergedWith(NewRegister().Insert(g, h))
			if !ok {
				return Fail()
			}
			remaining := make([]Term, 0, len(other)-1)
			remaining = append(remaining, other[:i]...)
			remaining = append(remaining, other[i+1:]...)
			return assignGenerics(rest, remaining, merged)
		})
	}
	if len(ks) == 0 {
		// No compatible counterpart for g; leave it unbound.
		return assignGenerics(rest, other, ctx)
	}
	return Delay(ks...)
}

func reversedEach(p *Promise) *Promise {
	return p.transform(func(e *Explanation) *Explanation {
		return e.withContext(e.Context().Reversed())
	})
}
