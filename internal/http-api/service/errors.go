package service

import "errors"

// Domain rule violations. Every rejection surfaces as one of these so
// handlers can map them to status codes with errors.Is; nothing is swallowed.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrGameNotFound     = errors.New("game not found")
	ErrRatingNotFound   = errors.New("rating not found")
	ErrFeedbackNotFound = errors.New("feedback not found")

	ErrNameInUse  = errors.New("username already in use")
	ErrTitleInUse = errors.New("game title already in use")

	ErrDuplicateRating   = errors.New("user has already left a rating for this game")
	ErrDuplicateFeedback = errors.New("user has already left feedback for this game")

	ErrRatingOutOfRange = errors.New("rating must be between 0 and 10")
)

const (
	// RatingMin and RatingMax bound rating_int, inclusive on both ends.
	RatingMin = 0
	RatingMax = 10
)

func validateRatingBounds(v int) error {
	if v < RatingMin || v > RatingMax {
		return ErrRatingOutOfRange
	}
	return nil
}
