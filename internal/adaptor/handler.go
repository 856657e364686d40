package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"backend-games/internal/usecase"
	"backend-games/pkg/apperror"
	"backend-games/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	API      *APIHandler
	Category *CategoryHandler
	Review   *ReviewHandler
	Comment  *CommentHandler
	User     *UserHandler
	Health   *HealthHandler
}

func NewHandler(service *usecase.Service, db Pinger, log *zap.Logger) *Handler {
	return &Handler{
		API:      NewAPIHandler(service.API, log),
		Category: NewCategoryHandler(service.Category, log),
		Review:   NewReviewHandler(service.Review, log),
		Comment:  NewCommentHandler(service.Comment, log),
		User:     NewUserHandler(service.User, log),
		Health:   NewHealthHandler(db, log),
	}
}

// respondError runs err through the classifier chain and writes {"message": ...}.
func respondError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error, operation string) {
	status, message := apperror.Resolve(err)

	fields := []zap.Field{
		zap.Error(err),
		zap.String("operation", operation),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
	}
	if status >= http.StatusInternalServerError {
		log.Error("Request failed", fields...)
	} else {
		log.Warn("Request rejected", fields...)
	}

	utils.ResponseError(w, status, message)
}

// pathID reads a numeric path parameter.
func pathID(r *http.Request, name string) (int, error) {
	id, ok := utils.ParseID(chi.URLParam(r, name))
	if !ok {
		return 0, apperror.ErrBadRequest
	}
	return id, nil
}

// decodeBody fills v from the request body. A field whose JSON type does not
// match v is rejected with ErrTypeMismatch. Any other malformed body leaves v
// as decoded so far and is handled by the payload checks downstream.
func decodeBody(r *http.Request, log *zap.Logger, v any) error {
	if r.Body == nil {
		return nil
	}

	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		log.Debug("Request field has the wrong type",
			zap.String("field", typeErr.Field),
			zap.String("path", r.URL.Path),
		)
		return apperror.ErrTypeMismatch
	}

	log.Debug("Ignoring unreadable request body", zap.Error(err), zap.String("path", r.URL.Path))
	return nil
}
