package request

import "backend-games/pkg/apperror"

// CreateCommentRequest is the POST body for a new comment. Any other keys,
// votes included, are dropped by the decoder.
type CreateCommentRequest struct {
	Username any `json:"username"`
	Body     any `json:"body"`
}

// Fields checks presence of both keys first, then that both are strings.
func (r CreateCommentRequest) Fields() (username, body string, err error) {
	if r.Username == nil || r.Body == nil {
		return "", "", apperror.ErrMissingFields
	}

	username, okUser := r.Username.(string)
	body, okBody := r.Body.(string)
	if !okUser || !okBody {
		return "", "", apperror.ErrTypeMismatch
	}

	return username, body, nil
}
