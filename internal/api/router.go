package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/groupledger/internal/api/handlers"
	"github.com/baharkarakas/groupledger/internal/auth"
	"github.com/baharkarakas/groupledger/internal/config"
	"github.com/baharkarakas/groupledger/internal/metrics"
	"github.com/baharkarakas/groupledger/internal/middleware"
	"github.com/baharkarakas/groupledger/internal/models"
	"github.com/baharkarakas/groupledger/internal/services"
)

type RouterDeps struct {
	Cfg         config.Config
	Log         *slog.Logger
	Tokens      *auth.TokenManager
	AuthSvc     *services.AuthService
	UserSvc     *services.UserService
	MovementSvc *services.MovementService
	BalanceSvc  *services.BalanceService
}

func NewRouter(d RouterDeps) http.Handler {
	log := d.Log
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RequestLogger(log),
		middleware.Recover,
		middleware.HTTPMetrics,
		middleware.RateLimit(d.Cfg.RateRPS),
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.Cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	authH := handlers.NewAuthHandler(d.AuthSvc)
	userH := handlers.NewUserHandler(d.UserSvc)
	movH := handlers.NewMovementHandler(d.MovementSvc)
	balH := handlers.NewBalanceHandler(d.BalanceSvc)
	am := middleware.NewAuthMiddleware(d.Tokens)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", authH.Register)
		r.Post("/auth/login", authH.Login)
		r.Post("/auth/refresh", authH.Refresh)
		r.Post("/auth/reset-password", authH.ResetPassword)

		r.Group(func(r chi.Router) {
			r.Use(am.Auth)

			r.Get("/users", userH.List)
			r.With(adminOnly).Post("/users", userH.Create)
			// admin or self; the service decides
			r.Put("/users/{id}", userH.Update)
			r.With(adminOnly).Delete("/users/{id}", userH.Delete)

			r.Get("/movements", movH.List)
			r.Post("/movements", movH.Create)
			r.Put("/movements/{id}", movH.Update)
			r.Delete("/movements/{id}", movH.Delete)

			r.With(adminOnly).Get("/balance/monthly", balH.Monthly)
		})
	})

	return r
}
