package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/training-attendance/internal/domain/attendance"
	"github.com/cmlabs-hris/training-attendance/internal/domain/calendar"
	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Manage course training days",
}

func newCalendarAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register the training days of a course over a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := registerDaysRequestFromFlags(cmd)
			if err != nil {
				return err
			}

			a, release, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			return runCalendarAdd(cmd, a.calendar, req)
		},
	}

	f := cmd.Flags()
	f.String("course", "", "course id (required)")
	f.String("section", "", "section name shown on each day")
	f.String("from", "", "first day, YYYY-MM-DD (required)")
	f.String("to", "", "last day, YYYY-MM-DD (required)")
	f.String("weekdays", "mon,tue,wed,thu,fri", "comma separated weekdays")
	return cmd
}

func init() {
	calendarCmd.AddCommand(newCalendarAddCmd())
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// parseWeekdays accepts three-letter English day names, case-insensitively.
func parseWeekdays(s string) ([]time.Weekday, error) {
	var out []time.Weekday
	seen := map[time.Weekday]bool{}
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		wd, ok := weekdayNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", part)
		}
		if !seen[wd] {
			seen[wd] = true
			out = append(out, wd)
		}
	}
	if len(out) == 0 {
		return nil, calendar.ErrNoWeekdays
	}
	return out, nil
}

func registerDaysRequestFromFlags(cmd *cobra.Command) (calendar.RegisterDaysRequest, error) {
	f := cmd.Flags()
	req := calendar.RegisterDaysRequest{}
	req.CourseID, _ = f.GetString("course")
	req.SectionName, _ = f.GetString("section")

	fromStr, _ := f.GetString("from")
	from, err := time.Parse(attendance.DateLayout, fromStr)
	if err != nil {
		return req, fmt.Errorf("invalid --from %q: want YYYY-MM-DD", fromStr)
	}
	toStr, _ := f.GetString("to")
	to, err := time.Parse(attendance.DateLayout, toStr)
	if err != nil {
		return req, fmt.Errorf("invalid --to %q: want YYYY-MM-DD", toStr)
	}
	req.From, req.To = from, to

	weekdays, _ := f.GetString("weekdays")
	if req.Weekdays, err = parseWeekdays(weekdays); err != nil {
		return req, err
	}
	return req, nil
}

func runCalendarAdd(cmd *cobra.Command, svc calendar.CalendarService, req calendar.RegisterDaysRequest) error {
	days, err := svc.RegisterDays(cmd.Context(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, d := range days {
		_, _ = fmt.Fprintf(out, "  %s %s\n", d.Date.Format(attendance.DateLayout), Silent(d.SectionName))
	}
	_, _ = fmt.Fprintf(out, "%s %s\n",
		Success(fmt.Sprintf("registered %d day(s)", len(days))),
		Primary("course "+req.CourseID))
	return nil
}
