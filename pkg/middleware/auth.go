package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/mfurukawa/traineehub/pkg/response"
	"github.com/mfurukawa/traineehub/pkg/token"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const identityKey ContextKey = "identity"

// Identity is the authenticated caller, resolved once per request and
// passed to handlers through the request context.
type Identity struct {
	UserID          uuid.UUID
	Role            string
	OrganizationIDs []uuid.UUID
}

// IdentityResolver loads the role and organization memberships for a user.
// Implemented by the user service.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, userID uuid.UUID) (*Identity, error)
}

// Authenticator validates session tokens and attaches the caller identity
// to the request context.
type Authenticator struct {
	secret   string
	resolver IdentityResolver
}

// NewAuthenticator creates an Authenticator with the given signing secret.
func NewAuthenticator(secret string, resolver IdentityResolver) *Authenticator {
	return &Authenticator{secret: secret, resolver: resolver}
}

// Authenticate rejects requests without a valid bearer token and resolves
// the caller identity for downstream handlers.
func (a *Authenticator) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := token.ExtractBearer(r)
		if tokenStr == "" {
			response.Unauthorized(w, "Authorization header required")
			return
		}

		userID, err := token.Parse(tokenStr, a.secret)
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		identity, err := a.resolver.ResolveIdentity(r.Context(), userID)
		if err != nil {
			response.InternalError(w, "Failed to resolve user")
			return
		}
		if identity == nil {
			response.Unauthorized(w, "Unknown or inactive user")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles guards a route subtree to callers holding one of the given roles.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentity(r.Context())
			if !ok {
				response.Unauthorized(w, "Authentication required")
				return
			}
			if _, ok := allowed[identity.Role]; !ok {
				response.Forbidden(w, "Insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetIdentity extracts the caller identity from the request context.
func GetIdentity(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*Identity)
	return identity, ok
}

// WithIdentity returns a context carrying the given identity. Used by tests.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}
