package adaptor

import (
	"context"
	"net/http"
	"time"

	"backend-games/internal/usecase"
	"backend-games/pkg/utils"

	"go.uber.org/zap"
)

type APIHandler struct {
	service usecase.APIService
	log     *zap.Logger
}

func NewAPIHandler(service usecase.APIService, log *zap.Logger) *APIHandler {
	return &APIHandler{
		service: service,
		log:     log.With(zap.String("handler", "api")),
	}
}

// Describe handles GET /api
func (h *APIHandler) Describe(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "api", h.service.Describe())
}

// Pinger is satisfied by the database pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db  Pinger
	log *zap.Logger
}

func NewHealthHandler(db Pinger, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		log: log.With(zap.String("handler", "health")),
	}
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Error("Health check failed", zap.Error(err))
		utils.ResponseJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	utils.ResponseJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
