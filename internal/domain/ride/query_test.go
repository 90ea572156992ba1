package ride

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderFromParam(t *testing.T) {
	cases := []struct {
		in       string
		fallback SortOrder
		want     SortOrder
	}{
		{"asc", OrderDesc, OrderAsc},
		{"ASC", OrderDesc, OrderAsc},
		{" Asc ", OrderDesc, OrderAsc},
		{"desc", OrderAsc, OrderDesc},
		{"DESC", OrderAsc, OrderDesc},
		{"", OrderDesc, OrderDesc},
		{"", OrderAsc, OrderAsc},
		{"sideways", OrderDesc, OrderDesc},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, OrderFromParam(tc.in, tc.fallback), "input %q", tc.in)
	}
}

func TestValidateDistanceRange(t *testing.T) {
	assert.NoError(t, ValidateDistanceRange(0, 0))
	assert.NoError(t, ValidateDistanceRange(1.5, 20))
	assert.ErrorIs(t, ValidateDistanceRange(-1, 5), ErrNegativeDistance)
	assert.ErrorIs(t, ValidateDistanceRange(1, -5), ErrNegativeDistance)
	assert.ErrorIs(t, ValidateDistanceRange(10, 5), ErrMinAboveMax)
}

func TestNewCriteria(t *testing.T) {
	c := NewCriteria("  airport ", " COMPLETED ")
	assert.Equal(t, "airport", c.Keyword)
	assert.Equal(t, "COMPLETED", c.Status)
	assert.False(t, c.Empty())

	assert.True(t, NewCriteria("", "").Empty())
	assert.True(t, NewCriteria("   ", "  ").Empty())
}

func TestNewAdvancedQueryDefaults(t *testing.T) {
	q := NewAdvancedQuery("", "", "", "", 0, 0)
	assert.Equal(t, DefaultSortBy, q.SortBy)
	assert.Equal(t, OrderAsc, q.Order)
	assert.Equal(t, 0, q.Page)
	assert.Equal(t, DefaultPageSize, q.Size)
	assert.True(t, q.Empty())
}

func TestNewAdvancedQueryNormalization(t *testing.T) {
	t.Run("negative page floors at zero", func(t *testing.T) {
		q := NewAdvancedQuery("", "", "", "", -3, 5)
		assert.Equal(t, 0, q.Page)
		assert.Equal(t, 0, q.Offset())
	})

	t.Run("size capped", func(t *testing.T) {
		q := NewAdvancedQuery("", "", "", "", 0, 10_000)
		assert.Equal(t, MaxPageSize, q.Size)
	})

	t.Run("explicit values kept", func(t *testing.T) {
		q := NewAdvancedQuery("airport", "COMPLETED", "fare", "desc", 2, 25)
		assert.Equal(t, "airport", q.Keyword)
		assert.Equal(t, "COMPLETED", q.Status)
		assert.Equal(t, "fare", q.SortBy)
		assert.Equal(t, OrderDesc, q.Order)
		assert.Equal(t, 50, q.Offset())
	})
}
