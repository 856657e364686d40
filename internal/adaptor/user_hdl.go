package adaptor

import (
	"net/http"

	"backend-games/internal/usecase"
	"backend-games/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		respondError(w, r, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "users", users)
}

// GetUser handles GET /api/users/{username}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetUser(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		respondError(w, r, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "user", user)
}
