package wire

import (
	"net/http"

	"backend-games/internal/adaptor"
	"backend-games/internal/data/repository"
	"backend-games/internal/usecase"
	"backend-games/pkg/database"
	"backend-games/pkg/middleware"
	"backend-games/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const routeNotFoundMessage = "Route not found :("

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Wiring builds repositories, services and handlers on top of db and mounts them.
func Wiring(db database.PgxIface, config *utils.Config, logger *zap.Logger) (*App, error) {
	repo := repository.NewRepository(db, logger)

	service, err := usecase.NewService(repo, logger)
	if err != nil {
		return nil, err
	}
	handler := adaptor.NewHandler(service, db, logger)

	return &App{
		Router: setupRouter(handler, config, logger),
	}, nil
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.HTTP.AllowedOrigins))

	if config.HTTP.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		r.Use(middleware.NewMetrics(reg).Handler)
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	r.Get("/health", handler.Health.Check)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(config.RateLimit.RPS, config.RateLimit.Burst, logger))

		r.Get("/", handler.API.Describe)
		wireCategory(r, handler.Category)
		wireReview(r, handler.Review)
		wireComment(r, handler.Comment)
		wireUser(r, handler.User)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, routeNotFoundMessage)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseError(w, http.StatusMethodNotAllowed, "Method not allowed :(")
	})

	return r
}
