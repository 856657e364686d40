package apperror

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// GenericMessage is sent for every failure no classifier recognizes.
const GenericMessage = "Server error. Unfortunately, something went wrong..."

// PostgreSQL error codes surfaced to callers.
const (
	PgInvalidTextRepresentation = "22P02"
	PgForeignKeyViolation       = "23503"
	PgUndefinedColumn           = "42703"
)

type storageRejection struct {
	status  int
	message string
}

var storageCodes = map[string]storageRejection{
	PgInvalidTextRepresentation: {http.StatusBadRequest, "Bad request :("},
	PgForeignKeyViolation:       {http.StatusNotFound, "Not found :("},
	PgUndefinedColumn:           {http.StatusNotFound, "Sort category not found :("},
}

// Classifier maps an error to a response. ok is false when it does not recognize err.
type Classifier func(err error) (status int, message string, ok bool)

// Chain is an ordered list of classifiers; the first one that recognizes the error wins.
type Chain []Classifier

// DefaultChain checks storage codes first, then application rejections.
var DefaultChain = Chain{StorageCode, Rejection}

// Resolve classifies err, falling back to a generic 500.
func (c Chain) Resolve(err error) (int, string) {
	for _, classify := range c {
		if status, message, ok := classify(err); ok {
			return status, message
		}
	}
	return http.StatusInternalServerError, GenericMessage
}

// Resolve classifies err with DefaultChain.
func Resolve(err error) (int, string) {
	return DefaultChain.Resolve(err)
}

// StorageCode recognizes driver errors whose SQLSTATE is in the fixed code table.
func StorageCode(err error) (int, string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return 0, "", false
	}
	rejection, ok := storageCodes[pgErr.Code]
	if !ok {
		return 0, "", false
	}
	return rejection.status, rejection.message, true
}

// Rejection recognizes application rejections that carry both a status and a message.
func Rejection(err error) (int, string, bool) {
	appErr, ok := As(err)
	if !ok || appErr.Status == 0 || appErr.Message == "" {
		return 0, "", false
	}
	return appErr.Status, appErr.Message, true
}
