package dto

// CreateRatingDTO for the strict creation entry point. The rating value is
// deliberately unbounded here: the 0-10 rule lives in the service layer so a
// violation surfaces as a typed error, not a generic binding failure.
type CreateRatingDTO struct {
	UserID    string `json:"user_id" binding:"required"`
	GameID    int64  `json:"game_id" binding:"required"`
	RatingInt int    `json:"rating_int"`
}

// UpdateRatingDTO for changing an existing rating's value
type UpdateRatingDTO struct {
	RatingInt int `json:"rating_int"`
}

// SubmitRatingDTO for the form-driven upsert path; the user comes from the
// verified identity, never from the payload.
type SubmitRatingDTO struct {
	RatingInt int `json:"rating_int"`
}
