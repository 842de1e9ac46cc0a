package dto

// CreateFeedbackDTO for the strict creation entry point
type CreateFeedbackDTO struct {
	UserID       string `json:"user_id" binding:"required"`
	GameID       int64  `json:"game_id" binding:"required"`
	FeedbackText string `json:"feedback_text" binding:"required,min=1,max=5000"`
}

// UpdateFeedbackDTO for changing existing feedback text
type UpdateFeedbackDTO struct {
	FeedbackText string `json:"feedback_text" binding:"required,min=1,max=5000"`
}

// SubmitFeedbackDTO for the form-driven upsert path
type SubmitFeedbackDTO struct {
	FeedbackText string `json:"feedback_text" binding:"required,min=1,max=5000"`
}
