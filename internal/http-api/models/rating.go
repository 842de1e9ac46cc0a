package models

import "time"

type Rating struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index"`
	GameID    int64     `json:"game_id" gorm:"not null;index"`
	Rating    int       `json:"rating_int" gorm:"column:rating_int;not null;check:rating_int >= 0 AND rating_int <= 10"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Game Game `json:"game,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "user_game_ratings"
}
