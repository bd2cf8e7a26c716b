package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/forgo/realmkeep/internal/model"
	"github.com/forgo/realmkeep/pkg/jwt"
)

// Verifier defines the interface for bearer credential verification
type Verifier interface {
	Verify(credential string) (*jwt.Claims, error)
}

// Auth returns a middleware that verifies bearer tokens issued by the
// external identity provider. Requests without a valid token never reach
// the wrapped handler.
func Auth(verifier Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token from Authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				model.NewUnauthorizedError("missing authorization header").WriteJSON(w)
				return
			}

			// Check Bearer prefix
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				model.NewUnauthorizedError("invalid authorization header format").WriteJSON(w)
				return
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				switch {
				case errors.Is(err, jwt.ErrTokenExpired):
					model.NewUnauthorizedError("token expired").WriteJSON(w)
				case errors.Is(err, jwt.ErrInvalidSignature):
					model.NewUnauthorizedError("invalid token signature").WriteJSON(w)
				default:
					model.NewUnauthorizedError("invalid token").WriteJSON(w)
				}
				return
			}

			// Add claims to context
			ctx := context.WithValue(r.Context(), SubjectIDKey, claims.Subject)
			ctx = context.WithValue(ctx, SubjectEmailKey, claims.Email)
			ctx = context.WithValue(ctx, ClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsKey is the context key for verified claims
const ClaimsKey contextKey = "claims"

// SubjectEmailKey is the context key for the subject's email
const SubjectEmailKey contextKey = "subjectEmail"

// GetSubjectID extracts the verified subject ID from context
func GetSubjectID(ctx context.Context) string {
	if id, ok := ctx.Value(SubjectIDKey).(string); ok {
		return id
	}
	return ""
}

// GetSubjectEmail extracts the subject's email from context
func GetSubjectEmail(ctx context.Context) string {
	if email, ok := ctx.Value(SubjectEmailKey).(string); ok {
		return email
	}
	return ""
}

// GetClaims extracts the verified claims from context
func GetClaims(ctx context.Context) *jwt.Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*jwt.Claims); ok {
		return claims
	}
	return nil
}
