package engine

// The sequence matcher walks two ordered child sequences position by
// position, asking the relation engine for every register extending the
// current one that satisfies the relation at that position, and backtracking
// through the candidates. The permutation engine wraps it for terms with
// interchangeable argument positions.

// matchOrderings matches a's children against b's under every
// meaning-preserving ordering of a's children. The identity ordering is
// canonical and tried first. Every discovered register is also re-expressed
// under each meaning-preserving re-keying of a's interchangeable generic
// children via ReplaceKeys, and duplicates are dropped, so callers never
// observe which physical ordering produced a match.
func matchOrderings(a, b Term, rel Relation, ctx *Register) *Promise {
	self, other := a.Terms(), b.Terms()
	ords := orderings(len(self), a.Interchangeable())
	if len(ords) == 1 {
		return matchSequences(self, other, rel, ctx)
	}
	return Delay(func() *Promise {
		seen := map[string]bool{}
		ks := make([]func() *Promise, 0, len(ords))
		for _, ord := range ords {
			ord := ord
			ks = append(ks, func() *Promise {
				return matchSequences(permute(self, ord), other, rel, ctx).
					Then(func(e *Explanation) *Promise {
						return interchangeableVariants(e, self, ords)
					}).
					filter(func(e *Explanation) bool {
						k := e.Context().key()
						if seen[k] {
							return false
						}
						seen[k] = true
						return true
					})
			})
		}
		return Delay(ks...)
	})
}

// interchangeableVariants yields e itself, then e with its register's keys
// swapped per each reordering of self's children that moves generic children
// only. Reorderings touching a concrete child are skipped: a concrete child
// is never a meaningful register key.
func interchangeableVariants(e *Explanation, self []Term, ords [][]int) *Promise {
	ks := []func() *Promise{func() *Promise { return Unit(e) }}
	for _, ord := range ords[1:] {
		mapping := map[string]Term{}
		genericOnly := true
		for i, j := range ord {
			if i == j {
				continue
			}
			if !self[i].Generic() || !self[j].Generic() {
				genericOnly = false
				break
			}
			mapping[self[j].Key()] = self[i]
		}
		if !genericOnly || len(mapping) == 0 {
			continue
		}
		ks = append(ks, func() *Promise {
			return Unit(e.withContext(e.Context().ReplaceKeys(mapping)))
		})
	}
	return Delay(ks...)
}

// matchSequences matches two ordered sequences positionally, conceptually
// padding the shorter one with absent slots. An empty left slot against a
// filled right slot fails the branch; a filled left slot against an empty
// right slot is vacuously fine for implication only. Candidate registers
// already seen at this position are skipped.
func matchSequences(self, other []Term, rel Relation, ctx *Register) *Promise {
	if len(self) == 0 && len(other) == 0 {
		return Unit(NewExplanation(ctx))
	}
	var a, b Term
	if len(self) > 0 {
		a, self = self[0], self[1:]
	}
	if len(other) > 0 {
		b, other = other[0], other[1:]
	}
	if a == nil {
		return Fail()
	}
	if b == nil {
		if rel != Implication {
			return Fail()
		}
		return matchSequences(self, other, rel, ctx)
	}
	restSelf, restOther := self, other
	return Delay(func() *Promise {
		seen := map[string]bool{}
		var ks []func() *Promise
		it := explanationsFor(rel, a, b, ctx).Iter()
		for it.Next() {
			c := it.Current().Context()
			k := c.key()
			if seen[k] {
				continue
			}
			seen[k] = true
			ks = append(ks, func() *Promise {
				return matchSequences(restSelf, restOther, rel, c)
			})
		}
		return Delay(ks...)
	})
}

// orderings produces every child ordering reachable by permuting each
// interchangeable position group, identity first. Orderings are index
// vectors: position i of the produced sequence holds the child originally at
// ord[i].
func orderings(n int, groups [][]int) [][]int {
	identity := make([]int, n)
	for i := range identity {
		identity[i] = i
	}
	out := [][]int{identity}
	for _, g := range groups {
		if len(g) < 2 {
			continue
		}
		perms := permutations(g)
		next := make([][]int, 0, len(out)*len(perms))
		for _, ord := range out {
			for _, p := range perms {
				o := make([]int, n)
				copy(o, ord)
				for i, pos := range g {
					o[pos] = ord[p[i]]
				}
				next = append(next, o)
			}
		}
		out = next
	}
	return out
}

// permutations enumerates every ordering of idx, the unchanged ordering
// first.
func permutations(idx []int) [][]int {
	if len(idx) <= 1 {
		return [][]int{append([]int(nil), idx...)}
	}
	out := make([][]int, 0, len(idx))
	for i := range idx {
		rest := make([]int, 0, len(idx)-1)
		rest = append(rest, idx[:i]...)
		rest = append(rest, idx[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]int{idx[i]}, p...))
		}
	}
	return out
}

func permute(ts []Term, ord []int) []Term {
	out := make([]Term, len(ts))
	for i, j := range ord {
		out[i] = ts[j]
	}
	return out
}
