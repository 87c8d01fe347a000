package engine

import "strings"

// Group is an unordered collection of terms, such as the inputs of a
// procedure. Order carries no meaning for its relations, but reduction and
// union produce deterministic member orders.
type Group []Term

// NewGroup creates a group of the given terms.
func NewGroup(ts ...Term) Group {
	return Group(ts)
}

// matchAll matches every term of needed against some member of the pool g,
// with replacement, threading one register through the whole assignment and
// recording each matched pair on the explanation.
func (g Group) matchAll(needed []Term, rel Relation, e *Explanation) *Promise {
	if len(needed) == 0 {
		return Unit(e)
	}
	n, rest := needed[0], needed[1:]
	ks := make([]func() *Promise, 0, len(g))
	for _, p := range g {
		p := p
		ks = append(ks, func() *Promise {
			return explanationsFor(rel, p, n, e.Context()).Then(func(found *Explanation) *Promise {
				return g.matchAll(rest, rel, e.withContext(found.Context()).AddMatch(p, n))
			})
		})
	}
	return Delay(ks...)
}

// Implies reports whether g has all the factors of other: every member of
// other is implied by some member of g under one consistent register.
func (g Group) Implies(other Group) bool {
	return g.ExplanationsImplication(other, nil).Iter().Next()
}

// Means reports whether g and other have the same meaning: each side's
// members are matched by meaning from the other under one shared register.
func (g Group) Means(other Group) bool {
	return g.ExplanationsSameMeaning(other, nil).Iter().Next()
}

// Contradicts reports whether any member of g contradicts any member of
// other under some consistent binding.
func (g Group) Contradicts(other Group) bool {
	return g.ExplanationsContradiction(other, nil).Iter().Next()
}

// ConsistentWith reports whether some binding of generic terms leaves g and
// other free of contradiction.
func (g Group) ConsistentWith(other Group) bool {
	return g.ExplanationsConsistentWith(other, nil).Iter().Next()
}

// ExplanationsImplication yields every explanation extending ctx under which
// g implies other.
func (g Group) ExplanationsImplication(other Group, ctx *Register) *Promise {
	return g.matchAll(other, Implication, NewExplanation(ctx).WithRelation(Implication))
}

// ExplanationsSameMeaning yields every explanation extending ctx under which
// g and other mean the same.
func (g Group) ExplanationsSameMeaning(other Group, ctx *Register) *Promise {
	fwd := g.matchAll(other, SameMeaning, NewExplanation(ctx).WithRelation(SameMeaning))
	return fwd.Then(func(e *Explanation) *Promise {
		back := other.matchAll(g, SameMeaning, NewExplanation(e.Context().Reversed()))
		return back.transform(func(be *Explanation) *Explanation {
			return e.withContext(be.Context().Reversed())
		})
	})
}

// ExplanationsContradiction yields every explanation extending ctx under
// which some member of g contradicts some member of other.
func (g Group) ExplanationsContradiction(other Group, ctx *Register) *Promise {
	base := NewExplanation(ctx).WithRelation(Contradiction)
	ks := make([]func() *Promise, 0, len(g)*len(other))
	for _, p := range g {
		for _, n := range other {
			p, n := p, n
			ks = append(ks, func() *Promise {
				return explanationsFor(Contradiction, p, n, ctx).transform(func(e *Explanation) *Explanation {
					return base.withContext(e.Context()).AddMatch(p, n)
				})
			})
		}
	}
	return Delay(ks...)
}

// ExplanationsConsistentWith yields every candidate binding extending ctx
// under which g does not contradict other.
func (g Group) ExplanationsConsistentWith(other Group, ctx *Register) *Promise {
	return possibleContexts(g.GenericTerms(), other.GenericTerms(), ctx).
		filter(func(e *Explanation) bool {
			return !g.ExplanationsContradiction(other, e.Context()).Iter().Next()
		}).
		transform(func(e *Explanation) *Explanation {
			return e.WithRelation(Consistency)
		})
}

// DropImplied reduces the group by discarding every member implied by
// another remaining member. The result keeps first-appearance order and
// contains no member implying another, so reducing twice changes nothing.
func (g Group) DropImplied() Group {
	kept := make(Group, 0, len(g))
	for _, t := range g {
		implied := false
		for _, k := range kept {
			if Implies(k, t) {
				implied = true
				break
			}
		}
		if implied {
			continue
		}
		next := make(Group, 0, len(kept)+1)
		for _, k := range kept {
			if !Implies(t, k) {
				next = append(next, k)
			}
		}
		kept = append(next, t)
	}
	return kept
}

// InternallyConsistent reports whether no two members must contradict under
// the identity binding of the group's own generic terms.
func (g Group) InternallyConsistent() bool {
	identity := NewRegister()
	for _, t := range g.GenericTerms() {
		identity = identity.Insert(t, t)
	}
	for i := 0; i < len(g); i++ {
		for j := i + 1; j < len(g); j++ {
			if contradiction(g[i], g[j], identity).Iter().Next() {
				return false
			}
		}
	}
	return true
}

// Union combines the two groups under the first binding that keeps them
// consistent, re-expressing other's members in g's frame, and reduces the
// result. It returns false if no consistent combination exists.
func (g Group) Union(other Group) (Group, bool) {
	it := g.ExplanationsConsistentWith(other, nil).Iter()
	for it.Next() {
		mapped := other.NewContext(it.Current().Context().Reversed())
		combined := make(Group, 0, len(g)+len(mapped))
		combined = append(combined, g...)
		combined = append(combined, mapped...)
		if !combined.InternallyConsistent() {
			continue
		}
		return combined.DropImplied(), true
	}
	return nil, false
}

// GenericTerms collects the generic placeholders of all members, first
// appearance first, deduplicated by key.
func (g Group) GenericTerms() []Term {
	var out []Term
	seen := map[string]bool{}
	for _, t := range g {
		appendGenericTerms(&out, seen, t)
	}
	return out
}

// NewContext returns a group with every member's generic placeholders
// substituted per r.
func (g Group) NewContext(r *Register) Group {
	out := make(Group, len(g))
	for i, t := range g {
		out[i] = NewContext(t, r)
	}
	return out
}

func (g Group) String() string {
	ls := make([]string, len(g))
	for i, t := range g {
		ls[i] = t.String()
	}
	return "{" + strings.Join(ls, "; ") + "}"
}
