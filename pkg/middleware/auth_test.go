package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfurukawa/traineehub/pkg/token"
)

type stubResolver struct {
	identity *Identity
	err      error
}

func (s *stubResolver) ResolveIdentity(_ context.Context, _ uuid.UUID) (*Identity, error) {
	return s.identity, s.err
}

func identityEcho(t *testing.T, got **Identity) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := GetIdentity(r.Context())
		require.True(t, ok)
		*got = identity
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateAttachesIdentity(t *testing.T) {
	userID := uuid.New()
	resolved := &Identity{UserID: userID, Role: "HR"}
	a := NewAuthenticator("secret", &stubResolver{identity: resolved})

	tok, err := token.Generate(userID, "secret", time.Hour)
	require.NoError(t, err)

	var got *Identity
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()

	a.Authenticate(identityEcho(t, &got)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, resolved, got)
}

func TestAuthenticateMissingHeader(t *testing.T) {
	a := NewAuthenticator("secret", &stubResolver{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	a.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateBadToken(t *testing.T) {
	a := NewAuthenticator("secret", &stubResolver{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()

	a.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	userID := uuid.New()
	a := NewAuthenticator("secret", &stubResolver{identity: nil})

	tok, err := token.Generate(userID, "secret", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()

	a.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateResolverError(t *testing.T) {
	userID := uuid.New()
	a := NewAuthenticator("secret", &stubResolver{err: errors.New("db down")})

	tok, err := token.Generate(userID, "secret", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()

	a.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequireRolesAllows(t *testing.T) {
	guard := RequireRoles("ADMIN", "HR")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithIdentity(req.Context(), &Identity{UserID: uuid.New(), Role: "HR"}))
	rec := httptest.NewRecorder()

	called := false
	guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})).ServeHTTP(rec, req)

	assert.True(t, called)
}

func TestRequireRolesForbids(t *testing.T) {
	guard := RequireRoles("ADMIN")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithIdentity(req.Context(), &Identity{UserID: uuid.New(), Role: "TRAINEE"}))
	rec := httptest.NewRecorder()

	guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRolesNoIdentity(t *testing.T) {
	guard := RequireRoles("ADMIN")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
