package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromise_Iter(t *testing.T) {
	e := func(name string) *Explanation {
		return NewExplanation(NewRegister().Insert(gen("x"), leaf(name)))
	}

	t.Run("alternatives left to right", func(t *testing.T) {
		var order []int
		p := Delay(func() *Promise {
			order = append(order, 1)
			return Fail()
		}, func() *Promise {
			order = append(order, 2)
			return Delay(func() *Promise {
				order = append(order, 3)
				return Unit(e("a"))
			}, func() *Promise {
				order = append(order, 4)
				return Unit(e("b"))
			})
		}, func() *Promise {
			order = append(order, 5)
			return Unit(e("c"))
		})

		it := p.Iter()
		var got []string
		for it.Next() {
			v, _ := it.Current().Context().Get(gen("x"))
			got = append(got, v.Name())
		}
		assert.Equal(t, []string{"a", "b", "c"}, got)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, order)
	})

	t.Run("lazy", func(t *testing.T) {
		called := false
		p := Delay(func() *Promise {
			return Unit(e("a"))
		}, func() *Promise {
			called = true
			return Unit(e("b"))
		})

		it := p.Iter()
		assert.True(t, it.Next())
		assert.False(t, called)
		assert.True(t, it.Next())
		assert.True(t, called)
	})

	t.Run("reusable", func(t *testing.T) {
		p := Delay(func() *Promise {
			return Unit(e("a"))
		}, func() *Promise {
			return Unit(e("b"))
		})
		assert.Len(t, p.Iter().Collect(), 2)
		assert.Len(t, p.Iter().Collect(), 2)
	})

	t.Run("empty", func(t *testing.T) {
		assert.False(t, Fail().Iter().Next())
		var p *Promise
		assert.False(t, p.Iter().Next())
	})
}

func TestPromise_Then(t *testing.T) {
	e := func(name string) *Explanation {
		return NewExplanation(NewRegister().Insert(gen("x"), leaf(name)))
	}
	p := Delay(func() *Promise {
		return Unit(e("a"))
	}, func() *Promise {
		return Unit(e("b"))
	})

	t.Run("fans out", func(t *testing.T) {
		q := p.Then(func(ex *Explanation) *Promise {
			return Delay(func() *Promise { return Unit(ex) }, func() *Promise { return Unit(ex) })
		})
		assert.Len(t, q.Iter().Collect(), 4)
	})

	t.Run("filters", func(t *testing.T) {
		q := p.filter(func(ex *Explanation) bool {
			v, _ := ex.Context().Get(gen("x"))
			return v.Name() == "b"
		})
		es := q.Iter().Collect()
		assert.Len(t, es, 1)
	})

	t.Run("transforms", func(t *testing.T) {
		q := p.transform(func(ex *Explanation) *Explanation {
			return ex.WithRelation(Contradiction)
		})
		for _, ex := range q.Iter().Collect() {
			assert.Equal(t, Contradiction, ex.Relation())
		}
	})
}

func TestPromise_Contexts(t *testing.T) {
	r := NewRegister().Insert(gen("x"), leaf("a"))
	p := Unit(NewExplanation(r))
	it := p.Contexts()
	assert.True(t, it.Next())
	assert.Equal(t, r.key(), it.Current().key())
	assert.False(t, it.Next())
}
