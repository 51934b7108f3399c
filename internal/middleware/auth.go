package middleware

import (
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/logging"
)

const AccessTokenCookie = "accessToken"

// Authenticator verifies the access token on every protected request and
// stores the caller's id on the context.
type Authenticator struct {
	tokens   *common.TokenManager
	denylist common.Denylist
}

func NewAuthenticator(tokens *common.TokenManager, denylist common.Denylist) *Authenticator {
	return &Authenticator{tokens: tokens, denylist: denylist}
}

func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ExtractToken(r)
		if token == "" {
			common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
			return
		}

		revoked, err := a.denylist.IsRevoked(r.Context(), token)
		if err != nil {
			logging.FromContext(r.Context()).Warn("denylist lookup failed", "error", err)
			common.WriteError(w, r, common.ErrUnauthorized("Invalid access token"))
			return
		}
		if revoked {
			common.WriteError(w, r, common.ErrUnauthorized("Access token has been revoked"))
			return
		}

		claims, err := a.tokens.VerifyAccess(token)
		if err != nil {
			common.WriteError(w, r, common.ErrUnauthorized("Invalid access token"))
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.Subject)
		if err != nil {
			common.WriteError(w, r, common.ErrUnauthorized("Invalid access token"))
			return
		}

		ctx := common.WithUser(r.Context(), userID, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ExtractToken reads the access token from the cookie, falling back to an
// Authorization: Bearer header.
func ExtractToken(r *http.Request) string {
	if c, err := r.Cookie(AccessTokenCookie); err == nil && c.Value != "" {
		return c.Value
	}
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
