package semblance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/likeness/semblance/engine"
)

func sold(seller, item, buyer string) Statement {
	return MustStatement(
		MustPredicate("$seller sold $item to $buyer", true),
		NewEntity(seller), NewEntity(item), NewEntity(buyer),
	)
}

func TestNewStatement(t *testing.T) {
	t.Run("argument count", func(t *testing.T) {
		p := MustPredicate("$seller sold $item to $buyer", true)
		_, err := NewStatement(p, NewEntity("Alice"))
		assert.ErrorIs(t, err, ErrArgumentCount)
	})

	t.Run("string fills the template", func(t *testing.T) {
		s := sold("Alice", "the cow", "Bob")
		assert.Equal(t, "the statement that <Alice> sold <the cow> to <Bob>", s.String())
	})

	t.Run("modifiers render and do not mutate", func(t *testing.T) {
		s := sold("Alice", "the cow", "Bob")
		a := s.MakeAbsent()
		g := s.MakeGeneric()
		assert.True(t, a.Absent())
		assert.True(t, g.Generic())
		assert.False(t, s.Absent())
		assert.False(t, s.Generic())
		assert.Equal(t, "absent the statement that <Alice> sold <the cow> to <Bob>", a.String())
		assert.Equal(t, "<the statement that <Alice> sold <the cow> to <Bob>>", g.String())
	})
}

func TestStatement_Relations(t *testing.T) {
	alice := sold("Alice", "the cow", "Bob")
	al := sold("Al", "the bull", "Betty")

	t.Run("reflexive meaning", func(t *testing.T) {
		assert.True(t, engine.Means(alice, alice))
	})

	t.Run("generic entities make the statements mean each other", func(t *testing.T) {
		assert.True(t, engine.Means(alice, al))
		assert.True(t, engine.Implies(alice, al))
	})

	t.Run("not equal", func(t *testing.T) {
		assert.NotEqual(t, alice.Key(), al.Key())
	})

	t.Run("consistency binds entity to entity", func(t *testing.T) {
		rs := engine.ExplanationsConsistentWith(alice, al, nil).Contexts().Collect()
		require.NotEmpty(t, rs)
		found := false
		for _, r := range rs {
			a, okA := r.Get(NewEntity("Alice"))
			c, okC := r.Get(NewEntity("the cow"))
			b, okB := r.Get(NewEntity("Bob"))
			if okA && okB && okC &&
				a.Key() == NewEntity("Al").Key() &&
				c.Key() == NewEntity("the bull").Key() &&
				b.Key() == NewEntity("Betty").Key() {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("concrete entities block the match", func(t *testing.T) {
		concreteAlice := MustStatement(
			MustPredicate("$seller sold $item to $buyer", true),
			NewEntity("Alice").MakeConcrete(), NewEntity("the cow"), NewEntity("Bob"),
		)
		concreteAl := MustStatement(
			MustPredicate("$seller sold $item to $buyer", true),
			NewEntity("Al").MakeConcrete(), NewEntity("the bull"), NewEntity("Betty"),
		)
		assert.False(t, engine.Means(concreteAlice, concreteAl))
		assert.False(t, engine.Implies(concreteAlice, concreteAl))
	})

	t.Run("absence symmetry", func(t *testing.T) {
		assert.True(t, engine.Contradicts(alice, alice.MakeAbsent()))
		assert.False(t, engine.Contradicts(alice.MakeAbsent(), alice.MakeAbsent()))
	})

	t.Run("negated clause contradicts", func(t *testing.T) {
		assert.True(t, engine.Contradicts(alice, alice.Negated()))
		// Generic entities can still be bound to different roles, so the
		// statements remain consistent under some context.
		assert.True(t, engine.ConsistentWith(alice, alice.Negated()))
	})

	t.Run("negated clause with concrete entities is inconsistent", func(t *testing.T) {
		concrete := MustStatement(
			MustPredicate("$seller sold $item to $buyer", true),
			NewEntity("Alice").MakeConcrete(),
			NewEntity("the cow").MakeConcrete(),
			NewEntity("Bob").MakeConcrete(),
		)
		assert.False(t, engine.ConsistentWith(concrete, concrete.Negated()))
	})

	t.Run("generic statement implies any statement of the same kind", func(t *testing.T) {
		g := alice.MakeGeneric()
		assert.True(t, engine.Implies(g, al))
		assert.True(t, engine.Implies(al, g))
	})
}

func TestStatement_InterchangeablePositions(t *testing.T) {
	married := MustPredicate("$partner1 and $partner2 were married", true)
	ann := NewEntity("Ann").MakeConcrete()
	ben := NewEntity("Ben").MakeConcrete()

	t.Run("permutation invariance", func(t *testing.T) {
		ab := MustStatement(married, ann, ben)
		ba := MustStatement(married, ben, ann)
		assert.True(t, engine.Means(ab, ba))
		assert.True(t, engine.Means(ba, ab))
		assert.True(t, engine.Implies(ab, ba))
	})

	t.Run("order matters without the declaration", func(t *testing.T) {
		gave := MustPredicate("$giver gave a ring to $taker", true)
		ab := MustStatement(gave, ann, ben)
		ba := MustStatement(gave, ben, ann)
		assert.False(t, engine.Means(ab, ba))
	})
}

func TestStatement_WithComparison(t *testing.T) {
	far := MustStatement(
		distance(GreaterThan, "30"),
		NewEntity("the house"), NewEntity("the barn"),
	)
	farther := MustStatement(
		distance(GreaterThan, "40"),
		NewEntity("the house"), NewEntity("the barn"),
	)
	near := MustStatement(
		distance(LessThan, "20"),
		NewEntity("the house"), NewEntity("the barn"),
	)

	assert.True(t, engine.Implies(farther, far))
	assert.False(t, engine.Implies(far, farther))
	assert.True(t, engine.Contradicts(far, near))
	assert.False(t, engine.ConsistentWith(far, near))

	t.Run("string", func(t *testing.T) {
		assert.Equal(t,
			"the statement that the distance between <the house> and <the barn> was > 30 kilometers",
			far.String())
	})

	t.Run("union picks the most specific", func(t *testing.T) {
		u, ok := engine.Union(far, farther)
		require.True(t, ok)
		assert.Equal(t, farther.Key(), u.Key())
	})
}

func TestStatement_NewContext(t *testing.T) {
	s := sold("Alice", "the cow", "Bob")
	r := engine.NewRegister().
		Insert(NewEntity("Alice"), NewEntity("Al")).
		Insert(NewEntity("Bob"), NewEntity("Betty"))
	got := engine.NewContext(s, r)
	assert.Equal(t, "the statement that <Al> sold <the cow> to <Betty>", got.String())
}
