package jwt

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ride-booking/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddlewareFunc(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)

	var seen *Claims
	protected := AuthMiddlewareFunc(mgr, user.RoleDriver)(func(w http.ResponseWriter, r *http.Request) {
		seen = RequireClaims(r)
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("allows matching role and injects claims", func(t *testing.T) {
		seen = nil
		signed, _, err := mgr.IssueUserToken("bob", user.RoleDriver)
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodPost, "/rides/accept/r1", nil)
		r.Header.Set("Authorization", "Bearer "+signed)
		w := httptest.NewRecorder()
		protected(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		require.NotNil(t, seen)
		assert.Equal(t, "bob", seen.Username())
	})

	t.Run("missing token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/rides/accept/r1", nil)
		w := httptest.NewRecorder()
		protected(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assertJSONError(t, w)
	})

	t.Run("wrong role", func(t *testing.T) {
		signed, _, err := mgr.IssueUserToken("alice", user.RolePassenger)
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodPost, "/rides/accept/r1", nil)
		r.Header.Set("Authorization", "Bearer "+signed)
		w := httptest.NewRecorder()
		protected(w, r)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assertJSONError(t, w)
	})

	t.Run("garbage token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/rides/accept/r1", nil)
		r.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		protected(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assertJSONError(t, w)
	})
}

// assertJSONError checks the rejection uses the same JSON error shape as the
// HTTP handlers.
func assertJSONError(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
}
