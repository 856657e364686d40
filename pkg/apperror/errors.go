// Package apperror holds the rejection type returned by services and the
// classifier chain that turns any error into an HTTP status and message.
package apperror

import (
	"errors"
	"net/http"
)

// Error is an expected failure carrying the status and message shown to the caller.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates a rejection with the given status and message.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// BadRequest creates a 400 rejection.
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// NotFound creates a 404 rejection.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Listing rejections
var (
	ErrInvalidSort      = BadRequest("Sorting query is not valid")
	ErrInvalidOrder     = BadRequest("Sorting order is not valid")
	ErrCategoryNotFound = NotFound("Category not found :(")
)

// Lookup rejections
var (
	ErrBadRequest      = BadRequest("Bad request :(")
	ErrReviewNotFound  = NotFound("Review not found :(")
	ErrCommentNotFound = NotFound("Comment not found :(")
	ErrUserNotFound    = NotFound("User with the entered name was not found")
)

// Payload rejections
var (
	ErrMissingFields     = BadRequest("Missing required fields :(")
	ErrTypeMismatch      = BadRequest("Invalid field type :(")
	ErrMissingVotesField = BadRequest("inc_votes is required :(")
	ErrVotesTypeMismatch = BadRequest("inc_votes must be a number :(")
)

// As reports whether err is, or wraps, a rejection and returns it.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
