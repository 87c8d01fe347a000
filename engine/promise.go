package engine

// Promise is a delayed enumeration of explanations. The zero value is an
// empty enumeration. A promise is either a leaf carrying at most one
// explanation or a node of delayed alternatives tried left to right.
type Promise struct {
	delayed []func() *Promise

	expl *Explanation
}

// Delay delays the executions of ks, each of which produces the next branch
// of the enumeration.
func Delay(ks ...func() *Promise) *Promise {
	return &Promise{delayed: ks}
}

// Unit returns a promise that yields e and nothing else.
func Unit(e *Explanation) *Promise {
	return &Promise{expl: e}
}

// Fail returns a promise that yields nothing.
func Fail() *Promise {
	return &Promise{}
}

// Then returns a promise which feeds every explanation yielded by p into f
// and yields whatever the resulting promises yield. The composition is lazy:
// f runs only as far as the caller pulls.
func (p *Promise) Then(f func(*Explanation) *Promise) *Promise {
	if p == nil {
		return Fail()
	}
	if len(p.delayed) == 0 {
		if p.expl == nil {
			return Fail()
		}
		return f(p.expl)
	}
	ks := make([]func() *Promise, len(p.delayed))
	for i, k := range p.delayed {
		k := k
		ks[i] = func() *Promise { return k().Then(f) }
	}
	return Delay(ks...)
}

func (p *Promise) transform(f func(*Explanation) *Explanation) *Promise {
	return p.Then(func(e *Explanation) *Promise { return Unit(f(e)) })
}

func (p *Promise) filter(keep func(*Explanation) bool) *Promise {
	return p.Then(func(e *Explanation) *Promise {
		if !keep(e) {
			return Fail()
		}
		return Unit(e)
	})
}

// Explanations is an external iterator over the explanations a promise
// yields. Everytime Next is called, it searches for the next explanation.
type Explanations struct {
	stack []*Promise
	cur   *Explanation
}

// Iter returns an iterator over p. Iterating does not consume p; the same
// promise can be iterated again from the start.
func (p *Promise) Iter() *Explanations {
	if p == nil {
		return &Explanations{}
	}
	return &Explanations{stack: []*Promise{p}}
}

// Next advances the iterator to the next explanation. It returns false once
// the enumeration is exhausted. (i.e. trampoline)
func (e *Explanations) Next() bool {
	for len(e.stack) > 0 {
		var p *Promise
		p, e.stack = e.stack[len(e.stack)-1], e.stack[:len(e.stack)-1]

		if len(p.delayed) == 0 {
			if p.expl == nil {
				continue
			}
			e.cur = p.expl
			return true
		}

		// Try the alternatives from left to right.
		q, rest := p.delayed[0](), p.delayed[1:]
		if len(rest) > 0 {
			e.stack = append(e.stack, &Promise{delayed: rest})
		}
		if q != nil {
			e.stack = append(e.stack, q)
		}
	}
	return false
}

// Current returns the explanation found by the last call to Next.
func (e *Explanations) Current() *Explanation {
	return e.cur
}

// Collect drains the iterator and returns every remaining explanation.
func (e *Explanations) Collect() []*Explanation {
	var es []*Explanation
	for e.Next() {
		es = append(es, e.cur)
	}
	return es
}

// Registers is an external iterator over the context registers a promise
// yields, discarding the match traces.
type Registers struct {
	expls Explanations
}

// Contexts returns a register iterator over p.
func (p *Promise) Contexts() *Registers {
	return &Registers{expls: *p.Iter()}
}

// Next advances the iterator to the next register.
func (r *Registers) Next() bool {
	return r.expls.Next()
}

// Current returns the register found by the last call to Next.
func (r *Registers) Current() *Register {
	return r.expls.Current().Context()
}

// Collect drains the iterator and returns every remaining register.
func (r *Registers) Collect() []*Register {
	var rs []*Register
	for r.Next() {
		rs = append(rs, r.Current())
	}
	return rs
}
