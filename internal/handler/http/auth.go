package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/training-attendance/internal/domain/auth"
	"github.com/cmlabs-hris/training-attendance/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := render.DecodeJSON(r.Body, &loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokenResp, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Warn("Login failed", "email", loginReq.Email, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User logged in", "user_id", tokenResp.UserID, "role", tokenResp.Role)
	response.SuccessWithMessage(w, "Login successful", tokenResp)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	token := jwtauth.TokenFromHeader(r)
	if token == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := a.authService.Logout(r.Context(), token); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User logged out successfully", nil)
}
