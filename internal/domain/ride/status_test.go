package ride

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in   string
		want Status
		ok   bool
	}{
		{"REQUESTED", StatusRequested, true},
		{"accepted", StatusAccepted, true},
		{"  Completed  ", StatusCompleted, true},
		{"CANCELLED", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseStatus(tc.in)
		if tc.ok {
			require.NoError(t, err, "input %q", tc.in)
			assert.Equal(t, tc.want, got)
		} else {
			assert.ErrorIs(t, err, ErrInvalidStatus, "input %q", tc.in)
		}
	}
}

func TestStatusTransitions(t *testing.T) {
	all := []Status{StatusRequested, StatusAccepted, StatusCompleted}
	allowed := map[Status]Status{
		StatusRequested: StatusAccepted,
		StatusAccepted:  StatusCompleted,
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[from] == to
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusRequested.Terminal())
	assert.False(t, StatusAccepted.Terminal())
	assert.True(t, StatusCompleted.Terminal())
}

func TestActiveStatusesExcludeTerminal(t *testing.T) {
	for _, st := range ActiveStatuses {
		assert.False(t, st.Terminal(), "active status %s must not be terminal", st)
	}
}
