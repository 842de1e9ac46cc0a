package repository

import (
	"gamevault/internal/http-api/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(rating *models.Rating) error
	Update(rating *models.Rating) error
	DeleteByID(id int64) error
	GetByID(id int64) (*models.Rating, error)
	GetAll() ([]models.Rating, error)
	GetByUserAndGame(userID string, gameID int64) (*models.Rating, error)
	GetByUser(userID string) ([]models.Rating, error)
	GetByGame(gameID int64) ([]models.Rating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create a new rating
func (r *ratingRepository) Create(rating *models.Rating) error {
	if err := r.db.Create(rating).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update an existing rating
func (r *ratingRepository) Update(rating *models.Rating) error {
	return r.db.Save(rating).Error
}

// DeleteByID removes a rating by primary id
func (r *ratingRepository) DeleteByID(id int64) error {
	result := r.db.Delete(&models.Rating{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ratingRepository) GetByID(id int64) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.First(&rating, id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetAll returns ratings in insertion order.
func (r *ratingRepository) GetAll() ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.Order("id asc").Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// GetByUserAndGame retrieves a user's rating for a specific game.
// The (user_id, game_id) pair is the business key: at most one row exists.
func (r *ratingRepository) GetByUserAndGame(userID string, gameID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetByUser retrieves all ratings submitted by a user
func (r *ratingRepository) GetByUser(userID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// GetByGame retrieves all ratings left for a game
func (r *ratingRepository) GetByGame(gameID int64) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("game_id = ?", gameID).
		Preload("User").
		Order("created_at asc").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}
