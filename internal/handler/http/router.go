package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/rangeops/backoffice-go/internal/config"
	"github.com/rangeops/backoffice-go/internal/handler/http/middleware"
	"github.com/rangeops/backoffice-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth          AuthHandler
	Employee      EmployeeHandler
	Schedule      ScheduleHandler
	TimeClock     TimeClockHandler
	Payroll       PayrollHandler
	Report        ReportHandler
	Bulletin      BulletinHandler
	Certification CertificationHandler
	Inventory     InventoryHandler
	Events        EventsHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "rangeops-backoffice"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

		// Token travels in a query parameter, not a header, so the
		// stream endpoint sits outside the authenticated group.
		r.Get("/events/stream", h.Events.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/events/token", h.Events.Token)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/schedule", func(r chi.Router) {
				r.Get("/", h.Schedule.List)
				r.Get("/{id}", h.Schedule.Get)
				r.Post("/{id}/call-out", h.Schedule.CallOut)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Schedule.Create)
					r.Put("/{id}", h.Schedule.Update)
					r.Delete("/{id}", h.Schedule.Delete)
				})
			})

			r.Route("/timeclock", func(r chi.Router) {
				r.Post("/clock-in", h.TimeClock.ClockIn)
				r.Post("/clock-out", h.TimeClock.ClockOut)
				r.Get("/", h.TimeClock.List)
				r.Get("/{id}", h.TimeClock.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{id}", h.TimeClock.Update)
					r.Delete("/{id}", h.TimeClock.Delete)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/periods", h.Payroll.ListPeriods)
				r.Get("/periods/containing", h.Payroll.PeriodContaining)
				r.Get("/balances/{employeeID}", h.Payroll.GetBalance)
				r.Get("/reconciliations/{employeeID}", h.Payroll.GetReconciliation)
				r.Get("/reports/period", h.Payroll.PeriodReport)
				r.Get("/reports/period/export", h.Payroll.ExportPeriodReport)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/balances/{employeeID}/adjust", h.Payroll.AdjustBalance)
					r.Post("/reconciliations", h.Payroll.Reconcile)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/kpi", h.Report.KPI)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/sales", h.Report.CreateSalesRecord)
				})
			})

			r.Route("/bulletin", func(r chi.Router) {
				r.Get("/", h.Bulletin.List)
				r.Get("/{id}", h.Bulletin.Get)
				r.Post("/", h.Bulletin.Create)
				r.Put("/{id}", h.Bulletin.Update)
				r.Delete("/{id}", h.Bulletin.Delete)
			})

			r.Route("/certifications", func(r chi.Router) {
				r.Get("/", h.Certification.List)
				r.Get("/{id}", h.Certification.Get)
				r.Get("/employee/{employeeID}", h.Certification.ListByEmployee)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Certification.Create)
					r.Put("/{id}", h.Certification.Update)
					r.Delete("/{id}", h.Certification.Delete)
				})
			})

			r.Route("/inventory", func(r chi.Router) {
				r.Get("/search", h.Inventory.Search)
				r.Get("/items/{upc}", h.Inventory.GetByUPC)
			})
		})
	})
	return r
}
