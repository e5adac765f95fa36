package cli

import (
	"fmt"
	"os"

	"github.com/cmlabs-hris/training-attendance/internal/domain/user"
	"github.com/spf13/cobra"
)

const passwordEnv = "ATTENDANCECTL_PASSWORD"

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage portal accounts",
}

func newUserCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a student, trainer or admin account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := createUserRequestFromFlags(cmd)
			if err != nil {
				return err
			}

			a, release, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			return runUserCreate(cmd, a.users, req)
		},
	}

	f := cmd.Flags()
	f.String("email", "", "login email (required)")
	f.String("name", "", "display name (required)")
	f.String("account-id", "", "training account id (required)")
	f.String("role", string(user.RoleStudent), "student, trainer or admin")
	f.String("course", "", "course id, required for students")
	f.String("leave-date", "", "last day of enrolment, YYYY-MM-DD")
	f.String("password", "", "initial password; defaults to $"+passwordEnv)
	return cmd
}

func init() {
	userCmd.AddCommand(newUserCreateCmd())
}

func createUserRequestFromFlags(cmd *cobra.Command) (user.CreateUserRequest, error) {
	f := cmd.Flags()
	req := user.CreateUserRequest{}
	req.Email, _ = f.GetString("email")
	req.Name, _ = f.GetString("name")
	req.AccountID, _ = f.GetString("account-id")
	req.Role, _ = f.GetString("role")
	req.Password, _ = f.GetString("password")
	if req.Password == "" {
		req.Password = os.Getenv(passwordEnv)
	}
	if req.Password == "" {
		return req, fmt.Errorf("a password is required: pass --password or set %s", passwordEnv)
	}

	if course, _ := f.GetString("course"); course != "" {
		req.CourseID = &course
	}
	if leave, _ := f.GetString("leave-date"); leave != "" {
		req.LeaveDate = &leave
	}
	return req, nil
}

func runUserCreate(cmd *cobra.Command, svc user.UserService, req user.CreateUserRequest) error {
	created, err := svc.Create(cmd.Context(), req)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
		Success("created"),
		Primary(fmt.Sprintf("%s <%s>", created.Name, created.Email)),
		Silent(fmt.Sprintf("(%s, %s)", created.Role, created.ID)))
	return nil
}
