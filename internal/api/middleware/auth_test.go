package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GritX-web/GritX/internal/authz"
)

func TestAuth_RejectsMissingUserID(t *testing.T) {
	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_PutsIdentityIntoContext(t *testing.T) {
	var got authz.Identity
	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := authz.IdentityFromContext(r.Context())
		require.True(t, ok)
		got = identity
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1", nil)
	req.Header.Set("X-User-ID", "user-1")
	req.Header.Set("X-User-Email", "priya@example.com")
	req.Header.Set("X-User-Role", "admin")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "priya@example.com", got.Email)
	assert.Equal(t, "admin", got.Role)
}

func TestRequireAdmin(t *testing.T) {
	policy := authz.NewPolicy([]string{"ops@gritx.in"})
	protected := Auth(RequireAdmin(policy)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	cases := []struct {
		name   string
		email  string
		role   string
		status int
	}{
		{"whitelisted email", "ops@gritx.in", "", http.StatusOK},
		{"whitelisted email case-insensitive", "OPS@GritX.in", "", http.StatusOK},
		{"role claim", "someone@else.in", "admin", http.StatusOK},
		{"plain user", "someone@else.in", "", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
			req.Header.Set("X-User-ID", "user-1")
			req.Header.Set("X-User-Email", tc.email)
			if tc.role != "" {
				req.Header.Set("X-User-Role", tc.role)
			}

			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
