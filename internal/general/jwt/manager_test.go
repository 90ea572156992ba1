package jwt

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ride-booking/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseRoundTrip(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)

	signed, claims, err := mgr.IssueUserToken("alice", user.RolePassenger)
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	assert.Equal(t, "alice", claims.Username())

	parsed, err := mgr.ParseAndValidate(signed)
	require.NoError(t, err)
	assert.Equal(t, "alice", parsed.Username())
	assert.Equal(t, user.RolePassenger, parsed.Role)
}

func TestIssueUserTokenRejectsBadRole(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)
	_, _, err := mgr.IssueUserToken("alice", user.Role("ADMIN"))
	assert.Error(t, err)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)
	signed, _, err := mgr.IssueUserToken("alice", user.RolePassenger)
	require.NoError(t, err)

	_, err = mgr.ParseAndValidate(signed + "x")
	assert.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)
	other := NewManager("other-secret", time.Hour)

	signed, _, err := other.IssueUserToken("alice", user.RolePassenger)
	require.NoError(t, err)

	_, err = mgr.ParseAndValidate(signed)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	mgr := NewManager("test-secret", -time.Minute)
	signed, _, err := mgr.IssueUserToken("alice", user.RolePassenger)
	require.NoError(t, err)

	_, err = mgr.ParseAndValidate(signed)
	assert.Error(t, err)
}

func TestFromAuthorization(t *testing.T) {
	t.Run("bearer header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/rides", nil)
		r.Header.Set("Authorization", "Bearer abc")
		tok, err := FromAuthorization(r)
		require.NoError(t, err)
		assert.Equal(t, "abc", tok)
	})

	t.Run("bad scheme", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/rides", nil)
		r.Header.Set("Authorization", "Basic abc")
		_, err := FromAuthorization(r)
		assert.ErrorIs(t, err, ErrBadAuthScheme)
	})

	t.Run("query fallback for websocket handshake", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/ws/rides/r1?token=abc", nil)
		tok, err := FromAuthorization(r)
		require.NoError(t, err)
		assert.Equal(t, "abc", tok)
	})

	t.Run("missing", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/rides", nil)
		_, err := FromAuthorization(r)
		assert.ErrorIs(t, err, ErrNoAuthHeader)
	})
}

func TestRoleAllowed(t *testing.T) {
	_, claims, err := NewManager("test-secret", time.Hour).IssueUserToken("bob", user.RoleDriver)
	require.NoError(t, err)

	assert.NoError(t, RoleAllowed(claims, user.RoleDriver))
	assert.NoError(t, RoleAllowed(claims, user.RolePassenger, user.RoleDriver))
	assert.ErrorIs(t, RoleAllowed(claims, user.RolePassenger), ErrRoleForbidden)
}
