// Package cli implements attendancectl, the administration tool for training
// accounts and calendars.
package cli

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/training-attendance/internal/config"
	"github.com/cmlabs-hris/training-attendance/internal/domain/calendar"
	"github.com/cmlabs-hris/training-attendance/internal/domain/user"
	"github.com/cmlabs-hris/training-attendance/internal/pkg/database"
	"github.com/cmlabs-hris/training-attendance/internal/repository/postgresql"
	"github.com/cmlabs-hris/training-attendance/internal/repository/rediscache"
	calendarService "github.com/cmlabs-hris/training-attendance/internal/service/calendar"
	userService "github.com/cmlabs-hris/training-attendance/internal/service/user"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "attendancectl",
	Short:         "Administer training accounts and calendars",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(dbCmd)
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), Error("error: "+err.Error()))
	}
	return err
}

// app holds the services a command runs against.
type app struct {
	db       *database.DB
	users    user.UserService
	calendar calendar.CalendarService
}

// openApp connects to the configured stores. The returned func releases them.
func openApp(ctx context.Context) (*app, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	closers := []func(){db.Close}

	var calendarRepo calendar.CalendarRepository = postgresql.NewCalendarRepository(db)
	if cfg.Redis.Addr != "" {
		client, err := rediscache.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		closers = append(closers, func() { _ = client.Close() })
		calendarRepo = rediscache.NewCalendarCache(client, calendarRepo, cfg.Redis.TTL)
	}

	a := &app{
		db:       db,
		users:    userService.NewUserService(postgresql.NewUserRepository(db)),
		calendar: calendarService.NewCalendarService(postgresql.NewTransactor(db), calendarRepo),
	}
	release := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	return a, release, nil
}
