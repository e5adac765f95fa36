package auth

import "github.com/cmlabs-hris/training-attendance/internal/pkg/validator"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=255"`
}

func (r *LoginRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
	UserID               string `json:"user_id"`
	Name                 string `json:"name"`
	Role                 string `json:"role"`
}
