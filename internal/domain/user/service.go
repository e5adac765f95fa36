package user

import "context"

type UserService interface {
	// Create registers an account with a bcrypt-hashed password
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
}
