package user

import "time"

type Role string

const (
	RoleStudent Role = "student" // Trainee who punches in and edits own attendance
	RoleTrainer Role = "trainer" // Instructor who corrects students' attendance
	RoleAdmin   Role = "admin"   // Training office staff
)

type User struct {
	ID           string
	AccountID    string
	Email        string
	PasswordHash *string
	Name         string
	Role         Role
	CourseID     *string
	LeaveDate    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsStudent checks if user is a trainee
func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}

// IsStaff checks if user is a trainer or admin
func (u *User) IsStaff() bool {
	return u.Role == RoleTrainer || u.Role == RoleAdmin
}

// Actor is the identity an operation runs on behalf of. It is built from the
// access token claims and handed explicitly to every service call.
type Actor struct {
	UserID    string
	AccountID string
	UserName  string
	Role      Role
	CourseID  string
	LeaveDate *time.Time
}

func (a Actor) IsStudent() bool {
	return a.Role == RoleStudent
}

func (a Actor) IsStaff() bool {
	return a.Role == RoleTrainer || a.Role == RoleAdmin
}

// ActorOf returns the actor for an authenticated user.
func ActorOf(u User) Actor {
	a := Actor{
		UserID:    u.ID,
		AccountID: u.AccountID,
		UserName:  u.Name,
		Role:      u.Role,
		LeaveDate: u.LeaveDate,
	}
	if u.CourseID != nil {
		a.CourseID = *u.CourseID
	}
	return a
}
