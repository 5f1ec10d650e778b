package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portal-backend/internal/common/errors"
)

type IdentityKind string

const (
	IdentityAdmin IdentityKind = "admin"
	IdentityUser  IdentityKind = "user"

	IdentityKey = "identity"
	UserIDKey   = "user_id"

	adminChallenge = `Basic realm="admin"`
)

// Identity is the caller resolved from the Authorization header.
type Identity struct {
	Kind   IdentityKind
	ID     string
	Method string // "basic" or "bearer"
}

// SessionResolver maps bearer tokens to identities. An empty id means the
// token is unknown or expired.
type SessionResolver interface {
	ResolveAdmin(ctx context.Context, token string) (string, error)
	ResolveUser(ctx context.Context, token string) (string, error)
}

// Guard resolves the Authorization header in a fixed order: admin basic
// credentials, admin session token, user session token.
type Guard struct {
	adminUser string
	adminPass string
	sessions  SessionResolver
}

func NewGuard(adminUser, adminPass string, sessions SessionResolver) *Guard {
	return &Guard{adminUser: adminUser, adminPass: adminPass, sessions: sessions}
}

// Authenticate returns the caller identity, or nil when no path matches.
func (g *Guard) Authenticate(c *gin.Context) (*Identity, error) {
	if g.isBasicAdmin(c.Request) {
		return &Identity{Kind: IdentityAdmin, ID: g.adminUser, Method: "basic"}, nil
	}

	token := BearerToken(c.Request)
	if token == "" {
		return nil, nil
	}

	ctx := c.Request.Context()
	adminID, err := g.sessions.ResolveAdmin(ctx, token)
	if err != nil {
		return nil, err
	}
	if adminID != "" {
		return &Identity{Kind: IdentityAdmin, ID: adminID, Method: "bearer"}, nil
	}

	userID, err := g.sessions.ResolveUser(ctx, token)
	if err != nil {
		return nil, err
	}
	if userID != "" {
		return &Identity{Kind: IdentityUser, ID: userID, Method: "bearer"}, nil
	}
	return nil, nil
}

// RequireAdmin admits admin basic credentials or an admin session token.
func (g *Guard) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := g.Authenticate(c)
		if err != nil {
			abortWith(c, errors.NewStoreError("resolve session", err))
			return
		}
		if identity == nil || identity.Kind != IdentityAdmin {
			challenge(c)
			return
		}
		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// RequireAdminBasic admits only the configured basic credentials.
func (g *Guard) RequireAdminBasic() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.isBasicAdmin(c.Request) {
			challenge(c)
			return
		}
		c.Set(IdentityKey, &Identity{Kind: IdentityAdmin, ID: g.adminUser, Method: "basic"})
		c.Next()
	}
}

// RequireUser admits a user session token. status selects the rejection
// code (401, or 403 where the endpoint contract asks for it).
func (g *Guard) RequireUser(status int) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := g.Authenticate(c)
		if err != nil {
			abortWith(c, errors.NewStoreError("resolve session", err))
			return
		}
		if identity == nil || identity.Kind != IdentityUser {
			if status == http.StatusForbidden {
				abortWith(c, errors.NewForbiddenError("Forbidden"))
			} else {
				abortWith(c, errors.NewUnauthorizedError("Unauthorized"))
			}
			return
		}
		c.Set(IdentityKey, identity)
		c.Set(UserIDKey, identity.ID)
		c.Next()
	}
}

func (g *Guard) isBasicAdmin(r *http.Request) bool {
	if g.adminUser == "" || g.adminPass == "" {
		return false
	}
	user, pass, ok := r.BasicAuth()
	return ok && user == g.adminUser && pass == g.adminPass
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
func BearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(auth[len("Bearer "):])
}

// GetIdentity returns the identity placed by one of the Require* guards.
func GetIdentity(c *gin.Context) *Identity {
	if v, ok := c.Get(IdentityKey); ok {
		if identity, ok := v.(*Identity); ok {
			return identity
		}
	}
	return nil
}

func challenge(c *gin.Context) {
	c.Header("WWW-Authenticate", adminChallenge)
	abortWith(c, errors.NewUnauthorizedError("Unauthorized"))
}
