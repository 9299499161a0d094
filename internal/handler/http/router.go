package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hanbit-hr/worktime-backend-go/internal/handler/http/middleware"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	Attendance  AttendanceHandler
	Overtime    OvertimeHandler
	Leave       LeaveHandler
	Correction  CorrectionHandler
	Performance PerformanceHandler
	Report      ReportHandler
	Employee    EmployeeHandler
	Master      MasterHandler
}

func NewRouter(env string, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worktime-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", h.Auth.Me)
				r.Post("/change-password", h.Auth.ChangePassword)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Auth.Register)
					r.Get("/", h.Auth.ListUsers)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/day", h.Attendance.Day)
				r.Get("/range", h.Attendance.Range)
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Post("/", h.Overtime.Create)
				r.Get("/", h.Overtime.List)
				r.Get("/{id}", h.Overtime.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Post("/{id}/decision", h.Overtime.Decide)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/", h.Leave.Create)
				r.Get("/", h.Leave.List)
				r.Get("/balance", h.Leave.Balance)
				r.Get("/{id}", h.Leave.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Post("/{id}/decision", h.Leave.Decide)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Put("/balance", h.Leave.SetBalanceTotal)
				})
			})

			r.Route("/corrections", func(r chi.Router) {
				r.Post("/", h.Correction.Create)
				r.Get("/", h.Correction.List)
				r.Get("/{id}", h.Correction.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Post("/{id}/decision", h.Correction.Decide)
				})
			})

			r.Route("/goals", func(r chi.Router) {
				r.Post("/", h.Performance.CreateGoal)
				r.Get("/", h.Performance.ListGoals)
				r.Get("/{id}", h.Performance.GetGoal)
				r.Post("/{id}/submit", h.Performance.SubmitGoal)
				r.Put("/{id}/progress", h.Performance.UpdateProgress)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Post("/{id}/decision", h.Performance.DecideGoal)
				})
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", h.Performance.ListReviews)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Post("/", h.Performance.CreateReview)
				})
			})

			r.Route("/competencies", func(r chi.Router) {
				r.Get("/", h.Performance.ListCompetencies)
				r.Get("/levels", h.Performance.EmployeeCompetencies)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Put("/levels", h.Performance.SetCompetencyLevel)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Performance.CreateCompetency)
				})
			})

			r.Route("/feedback", func(r chi.Router) {
				r.Post("/", h.Performance.GiveFeedback)
				r.Get("/received", h.Performance.FeedbackReceived)
				r.Get("/given", h.Performance.FeedbackGiven)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/weekly", h.Report.WeeklySummary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePrivileged)
					r.Get("/overview", h.Report.Overview)
					r.Get("/dashboard", h.Report.Dashboard)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePrivileged)
					r.Get("/", h.Employee.List)
					r.Get("/{id}", h.Employee.Get)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Employee.Create)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Master.ListDepartments)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Master.CreateDepartment)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Master.ListHolidays)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Master.AddHoliday)
					r.Delete("/{date}", h.Master.DeleteHoliday)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/audit", h.Master.AuditLog)
			})
		})
	})
	return r
}
