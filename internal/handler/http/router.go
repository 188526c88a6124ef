package http

import (
	"log/slog"
	"os"

	"github.com/girnar-group/staffops-backend-go/internal/handler/http/middleware"
	"github.com/girnar-group/staffops-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	JWTService         jwt.Service
	GoogleLoginEnabled bool

	AuthHandler       AuthHandler
	StaffHandler      StaffHandler
	AttendanceHandler AttendanceHandler
	AdvanceHandler    AdvanceHandler
	SalaryHandler     SalaryHandler
	CreditHandler     CreditHandler
	SalesHandler      SalesHandler
	DispatchHandler   DispatchHandler
	ReportHandler     ReportHandler
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffops"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
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

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", cfg.AuthHandler.Login)
			r.Post("/refresh", cfg.AuthHandler.RefreshToken)
			r.Post("/logout", cfg.AuthHandler.Logout)
			if cfg.GoogleLoginEnabled {
				r.Get("/login/oauth/google", cfg.AuthHandler.LoginWithGoogle)
				r.Get("/oauth/callback/google", cfg.AuthHandler.OAuthCallbackGoogle)
			}
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(cfg.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(cfg.JWTService.JWTAuth()))

			r.Route("/staff", func(r chi.Router) {
				r.Get("/", cfg.StaffHandler.List)
				r.Get("/{id}", cfg.StaffHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", cfg.StaffHandler.Create)
					r.Put("/{id}", cfg.StaffHandler.Update)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Delete("/{id}", cfg.StaffHandler.Deactivate)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/date", cfg.AttendanceHandler.ListForDate)
				r.Get("/staff/{staffID}", cfg.AttendanceHandler.ListForStaff)
				r.Get("/staff/{staffID}/summary", cfg.AttendanceHandler.MonthSummary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", cfg.AttendanceHandler.Mark)
					r.Delete("/", cfg.AttendanceHandler.Clear)
				})
			})

			r.Route("/advances", func(r chi.Router) {
				r.Get("/staff/{staffID}", cfg.AdvanceHandler.Ledger)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", cfg.AdvanceHandler.Create)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Patch("/{id}/deducted", cfg.AdvanceHandler.SetDeducted)
					r.Delete("/{id}", cfg.AdvanceHandler.Delete)
					r.Delete("/staff/{staffID}", cfg.AdvanceHandler.DeleteForStaff)
				})
			})

			r.Route("/salary", func(r chi.Router) {
				r.Get("/staff/{staffID}", cfg.SalaryHandler.Calculate)
				r.Get("/staff/{staffID}/history", cfg.SalaryHandler.History)
				r.Get("/summary", cfg.SalaryHandler.Summary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/mark-paid", cfg.SalaryHandler.MarkPaid)
					r.Post("/mark-unpaid", cfg.SalaryHandler.MarkUnpaid)
				})
			})

			r.Route("/credit", func(r chi.Router) {
				r.Get("/parties", cfg.CreditHandler.ListParties)
				r.Get("/parties/{id}/statement", cfg.CreditHandler.Statement)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/parties", cfg.CreditHandler.CreateParty)
					r.Post("/transactions", cfg.CreditHandler.AddTransaction)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Delete("/parties/{id}", cfg.CreditHandler.DeactivateParty)
					r.Delete("/transactions/{id}", cfg.CreditHandler.DeleteTransaction)
				})
			})

			r.Route("/sales", func(r chi.Router) {
				r.Get("/daily", cfg.SalesHandler.DailySummary)
				r.Get("/monthly", cfg.SalesHandler.MonthlySummary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", cfg.SalesHandler.Create)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Delete("/{id}", cfg.SalesHandler.Delete)
				})
			})

			r.Route("/dispatch", func(r chi.Router) {
				r.Get("/summary", cfg.DispatchHandler.MonthSummary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", cfg.DispatchHandler.Create)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Delete("/{id}", cfg.DispatchHandler.Delete)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/salary-sheet", cfg.ReportHandler.SalarySheet)
				r.Get("/credit/{id}/statement", cfg.ReportHandler.CreditStatement)
				r.Get("/sales-summary", cfg.ReportHandler.SalesSummary)
			})
		})
	})
	return r
}
