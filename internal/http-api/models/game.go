package models

import "time"

type Game struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;size:200"`
	Title       string    `json:"title" gorm:"uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Rating      int       `json:"rating"` // catalog seed rating, independent of per-user ratings
	Price       float64   `json:"price"`
	Feedback    string    `json:"feedback" gorm:"type:text"` // catalog blurb, independent of per-user feedback
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Game) TableName() string {
	return "games"
}
