package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/training-attendance/internal/domain/user"
	"github.com/cmlabs-hris/training-attendance/internal/handler/http/middleware"
	"github.com/cmlabs-hris/training-attendance/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterOptions carries the deployment settings the router needs.
type RouterOptions struct {
	FrontendURL string
	Env         string
	LogLevel    slog.Level
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, authHandler AuthHandler, attendanceHandler AttendanceHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "training-attendance"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{opts.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/logout", authHandler.Logout)

			r.Route("/attendance", func(r chi.Router) {

				// Students
				r.Route("/my", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionAttendanceViewOwn)).Get("/", attendanceHandler.GetMyAttendance)
					r.With(middleware.RequirePermission(user.PermissionAttendanceEditOwn)).Get("/form", attendanceHandler.GetMyEditForm)
					r.With(middleware.RequirePermission(user.PermissionAttendanceEditOwn)).Put("/", attendanceHandler.UpdateMyAttendance)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendancePunch))
					r.Get("/punch/check", attendanceHandler.PunchCheck)
					r.Post("/punch-in", attendanceHandler.PunchIn)
					r.Post("/punch-out", attendanceHandler.PunchOut)
				})

				// Trainers and admins
				r.Route("/students/{studentID}", func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).Get("/", attendanceHandler.GetStudentAttendance)
					r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).Get("/form", attendanceHandler.GetStudentEditForm)
					r.With(middleware.RequirePermission(user.PermissionAttendanceEditAll)).Put("/", attendanceHandler.UpdateStudentAttendance)
				})
			})
		})
	})
	return r
}
