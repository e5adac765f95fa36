package user

import (
	"github.com/cmlabs-hris/training-attendance/internal/pkg/validator"
)

// CreateUserRequest represents request to create a new user
type CreateUserRequest struct {
	AccountID string  `json:"account_id" validate:"required,max=64"`
	Email     string  `json:"email" validate:"required,email,max=254"`
	Password  string  `json:"password" validate:"required,min=8,max=72"`
	Name      string  `json:"name" validate:"required,max=100"`
	Role      string  `json:"role" validate:"required,oneof=student trainer admin"`
	CourseID  *string `json:"course_id,omitempty"`
	LeaveDate *string `json:"leave_date,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	errs := validator.Struct(r)

	if Role(r.Role) == RoleStudent && (r.CourseID == nil || validator.IsEmpty(*r.CourseID)) {
		errs.Add("course_id", ErrCourseRequired.Error())
	}

	if r.LeaveDate != nil && *r.LeaveDate != "" {
		if _, valid := validator.IsValidDate(*r.LeaveDate); !valid {
			errs.Add("leave_date", "leave_date must be in YYYY-MM-DD format")
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UserResponse struct {
	ID        string  `json:"id"`
	AccountID string  `json:"account_id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	CourseID  *string `json:"course_id"`
	LeaveDate *string `json:"leave_date"`
}

func NewUserResponse(u User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		AccountID: u.AccountID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CourseID:  u.CourseID,
	}
	if u.LeaveDate != nil {
		leave := u.LeaveDate.Format("2006-01-02")
		resp.LeaveDate = &leave
	}
	return resp
}
