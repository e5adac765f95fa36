package middleware

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/training-attendance/internal/domain/user"
	"github.com/cmlabs-hris/training-attendance/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// roleOf reads the role claim of the verified token.
func roleOf(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	role, ok := claims["role"].(string)
	return user.Role(role), ok
}

// RequireStaff requires trainer or admin role
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleOf(r)
		if !ok || !(user.Actor{Role: role}).IsStaff() {
			response.HandleError(w, user.ErrStaffAccessRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePermission checks if user has specific permission
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := roleOf(r)
			if !ok {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}
			if !user.HasPermission(role, permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", permission, role))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
