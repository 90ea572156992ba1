package postgres

import (
	"testing"

	"ride-booking/internal/domain/ride"

	"github.com/stretchr/testify/assert"
)

func TestWhereForCriteria(t *testing.T) {
	cases := []struct {
		name      string
		criteria  ride.Criteria
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "neither matches everything",
			criteria:  ride.NewCriteria("", ""),
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "keyword alone OR-matches both locations",
			criteria:  ride.NewCriteria("airport", ""),
			wantWhere: "WHERE (pickup_location ILIKE $1 OR drop_location ILIKE $1)",
			wantArgs:  []any{"%airport%"},
		},
		{
			name:      "status alone is an equality",
			criteria:  ride.NewCriteria("", "COMPLETED"),
			wantWhere: "WHERE status = $1",
			wantArgs:  []any{"COMPLETED"},
		},
		{
			name:      "both combine with AND",
			criteria:  ride.NewCriteria("airport", "REQUESTED"),
			wantWhere: "WHERE status = $1 AND (pickup_location ILIKE $2 OR drop_location ILIKE $2)",
			wantArgs:  []any{"REQUESTED", "%airport%"},
		},
		{
			name:      "unknown status passes through untouched",
			criteria:  ride.NewCriteria("", "CANCELLED"),
			wantWhere: "WHERE status = $1",
			wantArgs:  []any{"CANCELLED"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			where, args := whereForCriteria(tc.criteria)
			assert.Equal(t, tc.wantWhere, where)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestSortColumnFor(t *testing.T) {
	assert.Equal(t, "created_at", sortColumnFor("createdAt"))
	assert.Equal(t, "fare", sortColumnFor("fare"))
	assert.Equal(t, "distance_km", sortColumnFor("distanceKm"))

	// anything outside the whitelist falls back, never reaching the SQL text
	assert.Equal(t, "created_at", sortColumnFor("fare; DROP TABLE rides"))
	assert.Equal(t, "created_at", sortColumnFor(""))
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "ASC", direction(ride.OrderAsc))
	assert.Equal(t, "DESC", direction(ride.OrderDesc))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%airport%", likePattern("airport"))
	assert.Equal(t, `%100\%%`, likePattern("100%"))
	assert.Equal(t, `%a\_b%`, likePattern("a_b"))
	assert.Equal(t, `%c:\\tmp%`, likePattern(`c:\tmp`))
}
