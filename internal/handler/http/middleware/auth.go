package middleware

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/training-attendance/internal/domain/auth"
	"github.com/cmlabs-hris/training-attendance/internal/handler/http/response"
	"github.com/cmlabs-hris/training-attendance/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired admits requests whose verified access token is unrevoked and
// carries a complete actor. It must run after jwtauth.Verifier.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if _, err := jwt.ActorFromClaims(claims); err != nil {
				slog.Warn("Rejected token claims", "error", err)
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.Unauthorized(w, "Token revoked")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
