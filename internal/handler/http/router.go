package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/ojt-portal/ojt-backend-go/internal/handler/http/middleware"
	"github.com/ojt-portal/ojt-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Application  ApplicationHandler
	Job          JobHandler
	Student      StudentHandler
	Attendance   AttendanceHandler
	Notification NotificationHandler
}

func NewRouter(jwtService jwt.Service, corsOrigins []string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ojt-portal"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Each resource is mounted exactly once; auth tiers are applied
		// per-endpoint inside the resource subrouter
		authed := []func(http.Handler) http.Handler{
			jwtauth.Verifier(jwtService.JWTAuth()),
			middleware.AuthRequired(jwtService.JWTAuth()),
		}
		admin := append(append([]func(http.Handler) http.Handler{}, authed...), middleware.AdminOnly)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
		})

		r.Route("/jobs", func(r chi.Router) {
			// Job board reads are public
			r.Get("/", h.Job.List)
			r.Get("/{id}", h.Job.GetByID)

			r.Group(func(r chi.Router) {
				r.Use(admin...)
				r.Post("/", h.Job.Create)
				r.Patch("/{id}", h.Job.Update)
				r.Delete("/{id}", h.Job.Delete)
				r.Post("/{id}/attachment", h.Job.UploadAttachment)
			})
		})

		r.Route("/applications", func(r chi.Router) {
			// Submission is public: applicants are not required to hold an
			// account
			r.Post("/", h.Application.Submit)

			r.Group(func(r chi.Router) {
				r.Use(admin...)
				r.Get("/", h.Application.List)
				r.Get("/{id}", h.Application.GetByID)
				r.Patch("/{id}/status", h.Application.UpdateStatus)
				r.Post("/{id}/interview", h.Application.ScheduleInterview)
				r.Delete("/{id}", h.Application.Delete)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			// Kiosk endpoints, no auth: the scanner device holds no
			// credentials
			r.Post("/scan", h.Attendance.Scan)
			r.Post("/validate", h.Attendance.Validate)

			r.Group(func(r chi.Router) {
				r.Use(admin...)
				r.Get("/", h.Attendance.List)
				r.Get("/today-stats", h.Attendance.TodayStats)
			})
		})

		r.Route("/students", func(r chi.Router) {
			r.Use(admin...)
			r.Get("/", h.Student.List)
			r.Post("/", h.Student.Create)
			r.Get("/{id}", h.Student.GetByID)
			r.Patch("/{id}", h.Student.Update)
			r.Delete("/{id}", h.Student.Delete)
			r.Post("/{id}/resume", h.Student.UploadResume)
		})

		r.Route("/notifications", func(r chi.Router) {
			// The stream authenticates through its own short-lived token
			r.Get("/stream", h.Notification.Stream)

			r.Group(func(r chi.Router) {
				r.Use(authed...)
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Post("/mark-read", h.Notification.MarkAsRead)
				r.Post("/mark-all-read", h.Notification.MarkAllAsRead)
				r.Delete("/{id}", h.Notification.Delete)
				r.Get("/sse-token", h.Notification.GetSSEToken)
			})
		})
	})
	return r
}
