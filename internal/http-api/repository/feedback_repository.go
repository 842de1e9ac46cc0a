package repository

import (
	"gamevault/internal/http-api/models"

	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	Update(feedback *models.Feedback) error
	DeleteByID(id int64) error
	GetByID(id int64) (*models.Feedback, error)
	GetAll() ([]models.Feedback, error)
	GetByUserAndGame(userID string, gameID int64) (*models.Feedback, error)
	GetByUser(userID string) ([]models.Feedback, error)
	GetByGame(gameID int64) ([]models.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(feedback *models.Feedback) error {
	if err := r.db.Create(feedback).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *feedbackRepository) Update(feedback *models.Feedback) error {
	return r.db.Save(feedback).Error
}

func (r *feedbackRepository) DeleteByID(id int64) error {
	result := r.db.Delete(&models.Feedback{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *feedbackRepository) GetByID(id int64) (*models.Feedback, error) {
	var feedback models.Feedback
	if err := r.db.First(&feedback, id).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) GetAll() ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	if err := r.db.Order("id asc").Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// GetByUserAndGame retrieves a user's feedback for a specific game.
// Same business key as ratings: at most one row per pair.
func (r *feedbackRepository) GetByUserAndGame(userID string, gameID int64) (*models.Feedback, error) {
	var feedback models.Feedback
	err := r.db.Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&feedback).Error
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) GetByUser(userID string) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	err := r.db.Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&feedbacks).Error
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}

func (r *feedbackRepository) GetByGame(gameID int64) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	err := r.db.Where("game_id = ?", gameID).
		Preload("User").
		Order("created_at asc").
		Find(&feedbacks).Error
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}
