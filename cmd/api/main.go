package main

import (
	"log"
	"net/http"

	_ "github.com/christngono/backend-vocit/docs" // swagger docs

	"github.com/christngono/backend-vocit/internal/cache"
	"github.com/christngono/backend-vocit/internal/config"
	"github.com/christngono/backend-vocit/internal/db"
	"github.com/christngono/backend-vocit/internal/handler"
	"github.com/christngono/backend-vocit/internal/repository"
	"github.com/christngono/backend-vocit/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title API Vocits
// @version 1.0
// @description API de votes citoyens (vocits)
// @host localhost:3333
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo et Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	vocitRepo := repository.NewVocitRepository()

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	vocitSvc := service.NewVocitService(vocitRepo)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	vocitH := handler.NewVocitHandler(vocitSvc, cfg.UploadDir)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS : liste stricte de domaines autorisés
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", handler.Health)

	authMw := handler.JWTAuth(cfg.JWTSecret, userRepo)

	r.Route("/api", func(r chi.Router) {
		// =============
		// Routes publiques
		// =============
		r.Post("/auth/register", authH.Register)
		r.Post("/auth/login", authH.Login)

		r.Route("/vocits", func(r chi.Router) {
			r.Get("/", vocitH.List)
			r.Get("/stats-globales", vocitH.GlobalStats)
			r.Get("/{id}", vocitH.GetWithStats)
			r.Get("/{id}/ws/stats", vocitH.StatsWS)

			// ===========================
			// Routes protégées par JWT
			// ===========================
			r.Group(func(r chi.Router) {
				r.Use(authMw)

				r.Post("/{vocitId}/vote", vocitH.Vote)

				// ---- Endpoints réservés ADMIN ----
				r.Group(func(r chi.Router) {
					r.Use(handler.AdminOnly())

					r.Post("/", vocitH.Create)
					r.Put("/{id}", vocitH.Update)
					r.Delete("/{id}", vocitH.Delete)
				})
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(authMw)
			r.Use(handler.AdminOnly())

			r.Get("/admin/users", authH.ListUsers)
		})
	})

	// Dossier statique des fichiers uploadés
	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir)))
	r.Get("/uploads/*", uploads.ServeHTTP)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("✅ Serveur démarré sur le port %s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
