package semblance

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func km(amount string) Quantity {
	return MustQuantity(amount, "kilometers")
}

func distance(sign Sign, amount string) Comparison {
	return MustComparison("the distance between $place1 and $place2 was", sign, km(amount), true)
}

func TestNewComparison(t *testing.T) {
	t.Run("unknown sign", func(t *testing.T) {
		_, err := NewComparison("the distance was", Sign("=="), km("30"), true)
		assert.ErrorIs(t, err, ErrUnknownSign)
	})

	t.Run("truth normalization flips the sign", func(t *testing.T) {
		c, err := NewComparison("the distance was", GreaterThan, km("30"), false)
		require.NoError(t, err)
		assert.Equal(t, LessOrEqual, c.Sign())
		assert.True(t, c.Truth())
	})

	t.Run("negated flips the sign", func(t *testing.T) {
		c := distance(Equal, "30").Negated().(Comparison)
		assert.Equal(t, NotEqual, c.Sign())
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t,
			"the distance between $place1 and $place2 was > 30 kilometers",
			distance(GreaterThan, "30").String())
	})
}

func TestComparison_Implies(t *testing.T) {
	tests := []struct {
		self, other Comparison
		want        bool
	}{
		{distance(GreaterThan, "30"), distance(GreaterThan, "20"), true},
		{distance(GreaterThan, "20"), distance(GreaterThan, "30"), false},
		{distance(GreaterThan, "30"), distance(GreaterOrEqual, "30"), true},
		{distance(GreaterOrEqual, "30"), distance(GreaterThan, "30"), false},
		{distance(GreaterOrEqual, "30"), distance(GreaterThan, "20"), true},
		{distance(Equal, "30"), distance(GreaterThan, "20"), true},
		{distance(Equal, "30"), distance(GreaterOrEqual, "30"), true},
		{distance(Equal, "30"), distance(LessOrEqual, "30"), true},
		{distance(Equal, "30"), distance(LessThan, "40"), true},
		{distance(Equal, "30"), distance(Equal, "30.0"), true},
		{distance(Equal, "30"), distance(Equal, "31"), false},
		{distance(LessThan, "20"), distance(LessThan, "30"), true},
		{distance(LessThan, "30"), distance(LessOrEqual, "30"), true},
		{distance(LessOrEqual, "20"), distance(LessThan, "30"), true},
		{distance(Equal, "30"), distance(NotEqual, "20"), true},
		{distance(GreaterThan, "30"), distance(NotEqual, "20"), true},
		{distance(GreaterThan, "30"), distance(NotEqual, "30"), true},
		{distance(GreaterThan, "30"), distance(NotEqual, "40"), false},
		{distance(NotEqual, "30"), distance(NotEqual, "30"), true},
		{distance(NotEqual, "30"), distance(GreaterThan, "20"), false},
		{distance(GreaterThan, "30"), distance(LessThan, "40"), false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s vs %s", tt.self, tt.other), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.self.implies(tt.other))
		})
	}
}

func TestComparison_Contradicts(t *testing.T) {
	tests := []struct {
		self, other Comparison
		want        bool
	}{
		{distance(Equal, "30"), distance(Equal, "20"), true},
		{distance(Equal, "30"), distance(Equal, "30.0"), false},
		{distance(Equal, "30"), distance(NotEqual, "30"), true},
		{distance(Equal, "30"), distance(NotEqual, "20"), false},
		{distance(GreaterThan, "30"), distance(LessThan, "20"), true},
		{distance(GreaterThan, "30"), distance(LessThan, "30"), true},
		{distance(GreaterThan, "30"), distance(LessThan, "40"), false},
		{distance(GreaterOrEqual, "30"), distance(LessOrEqual, "20"), true},
		{distance(GreaterOrEqual, "30"), distance(LessOrEqual, "30"), false},
		{distance(Equal, "30"), distance(GreaterThan, "30"), true},
		{distance(Equal, "30"), distance(GreaterOrEqual, "30"), false},
		{distance(Equal, "30"), distance(LessThan, "30"), true},
		{distance(GreaterThan, "20"), distance(GreaterThan, "30"), false},
		{distance(NotEqual, "30"), distance(NotEqual, "20"), false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s vs %s", tt.self, tt.other), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.self.contradicts(tt.other))
			assert.Equal(t, tt.want, tt.other.contradicts(tt.self))
		})
	}
}

func TestComparison_Means(t *testing.T) {
	assert.True(t, distance(Equal, "30").means(distance(Equal, "30.0")))
	assert.False(t, distance(Equal, "30").means(distance(GreaterOrEqual, "30")))
	assert.False(t, distance(Equal, "30").means(distance(Equal, "20")))
}

func TestComparison_DifferentUnitsOrContent(t *testing.T) {
	a := distance(GreaterThan, "30")
	miles := MustComparison("the distance between $place1 and $place2 was", GreaterThan, MustQuantity("30", "miles"), true)
	price := MustComparison("the price of $item was", GreaterThan, km("30"), true)

	assert.False(t, a.implies(miles))
	assert.False(t, a.contradicts(miles))
	assert.False(t, a.implies(price))
	assert.False(t, a.contradicts(price))
}
