package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/training-attendance/internal/config"
	"github.com/cmlabs-hris/training-attendance/internal/domain/attendance"
	"github.com/cmlabs-hris/training-attendance/internal/domain/calendar"
	appHTTP "github.com/cmlabs-hris/training-attendance/internal/handler/http"
	"github.com/cmlabs-hris/training-attendance/internal/pkg/cron"
	"github.com/cmlabs-hris/training-attendance/internal/pkg/database"
	"github.com/cmlabs-hris/training-attendance/internal/pkg/jwt"
	"github.com/cmlabs-hris/training-attendance/internal/pkg/message"
	"github.com/cmlabs-hris/training-attendance/internal/repository/postgresql"
	"github.com/cmlabs-hris/training-attendance/internal/repository/rediscache"
	attendanceService "github.com/cmlabs-hris/training-attendance/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/training-attendance/internal/service/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	msg, err := message.NewCatalog(cfg.App.Locale)
	if err != nil {
		slog.Error("Error loading messages", "error", err)
		os.Exit(1)
	}

	classifier, err := attendance.NewClassifier(cfg.Training.StartTime, cfg.Training.EndTime)
	if err != nil {
		slog.Error("Error parsing training boundaries", "error", err)
		os.Exit(1)
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	var calendarRepo calendar.CalendarRepository = postgresql.NewCalendarRepository(db)
	transactor := postgresql.NewTransactor(db)

	var locker cron.Locker
	if cfg.Redis.Addr != "" {
		redisClient, err := rediscache.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			slog.Error("Error connecting to redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()

		calendarRepo = rediscache.NewCalendarCache(redisClient, calendarRepo, cfg.Redis.TTL)
		locker = rediscache.NewRedisLock(redisClient)
		slog.Info("Redis enabled", "addr", cfg.Redis.Addr)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(
		transactor,
		attendanceRepo,
		calendarRepo,
		userRepo,
		msg,
		classifier,
		cfg.Location(),
	)

	scheduler := cron.NewScheduler(locker)
	cron.NewAttendanceJobs(attendanceSvc, cfg.Cron.UnfilledAuditInterval).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			FrontendURL: cfg.App.FrontendURL,
			Env:         cfg.App.Env,
			LogLevel:    logLevel,
		},
		JWTService,
		appHTTP.NewAuthHandler(authService),
		appHTTP.NewAttendanceHandler(attendanceSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "locale", msg.Language().String(), "timezone", cfg.App.Timezone)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
}
