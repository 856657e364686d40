package request

import (
	"math"

	"backend-games/pkg/apperror"
)

// VotesRequest is the PATCH body for reviews and comments. IncVotes stays
// untyped so a missing field and a wrong type can be told apart.
type VotesRequest struct {
	IncVotes any `json:"inc_votes"`
}

// Delta returns inc_votes as an integer or the matching rejection.
func (r VotesRequest) Delta() (int, error) {
	if r.IncVotes == nil {
		return 0, apperror.ErrMissingVotesField
	}

	n, ok := r.IncVotes.(float64)
	if !ok || n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, apperror.ErrVotesTypeMismatch
	}

	return int(n), nil
}
