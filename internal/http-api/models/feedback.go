package models

import "time"

type Feedback struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       string    `json:"user_id" gorm:"type:uuid;not null;index"`
	GameID       int64     `json:"game_id" gorm:"not null;index"`
	FeedbackText string    `json:"feedback_text" gorm:"not null;type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Game Game `json:"game,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}

func (Feedback) TableName() string {
	return "user_game_feedback"
}
