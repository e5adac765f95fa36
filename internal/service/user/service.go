package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/training-attendance/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	user.UserRepository
	hashCost int
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{UserRepository: userRepository, hashCost: bcrypt.DefaultCost}
}

func (s *UserServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if _, err := s.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return user.UserResponse{}, user.ErrUserEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := s.hashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		AccountID:    req.AccountID,
		Email:        req.Email,
		PasswordHash: &hashed,
		Name:         req.Name,
		Role:         user.Role(req.Role),
	}
	if newUser.Role == user.RoleStudent {
		newUser.CourseID = req.CourseID
	}
	if req.LeaveDate != nil && *req.LeaveDate != "" {
		leave, err := time.Parse("2006-01-02", *req.LeaveDate)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to parse leave date: %w", err)
		}
		newUser.LeaveDate = &leave
	}

	created, err := s.UserRepository.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("User created", "user_id", created.ID, "role", string(created.Role))
	return user.NewUserResponse(created), nil
}
