package http

import (
	"net/http"

	"github.com/cmlabs-hris/training-attendance/internal/domain/auth"
	"github.com/cmlabs-hris/training-attendance/internal/domain/user"
	"github.com/cmlabs-hris/training-attendance/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// actorFrom reads the acting user from the verified token on the request.
func actorFrom(r *http.Request) (user.Actor, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return user.Actor{}, auth.ErrInvalidToken
	}
	return jwt.ActorFromClaims(claims)
}
