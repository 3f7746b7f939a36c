package router

import (
	"database/sql"
	"net/http"

	_ "breed-registry/docs"
	mem "breed-registry/internal/adapters/storage/memory"
	pg "breed-registry/internal/adapters/storage/postgres"
	"breed-registry/internal/domain/breeds"
	"breed-registry/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Puede ser nil (no loguea).
	Logger *zap.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(opts.Logger))
	r.Use(middleware.Recover)

	// CORS abierto: cualquier origen
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	var breedRepo breeds.Repository
	if opts.DB != nil {
		breedRepo = pg.NewBreedsRepo(opts.DB)
	} else {
		breedRepo = mem.NewBreedRepo()
	}

	breeds.RegisterRoutes(r, breeds.NewService(breedRepo))

	return r
}
