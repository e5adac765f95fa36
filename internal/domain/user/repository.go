package user

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	// ListActiveStudents returns students who have not left the course by asOf.
	ListActiveStudents(ctx context.Context, asOf time.Time) ([]User, error)
}
