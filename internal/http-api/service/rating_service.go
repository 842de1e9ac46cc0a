package service

import (
	"context"
	"errors"

	"gamevault/internal/http-api/models"
	"gamevault/internal/http-api/repository"

	"gorm.io/gorm"
)

// RatingService carries two deliberately distinct write contracts:
// Create rejects an existing (user, game) pair, Submit upserts it.
// External callers depend on both, so they are not unified.
type RatingService interface {
	GetAll() ([]models.Rating, error)
	GetByID(id int64) (*models.Rating, error)
	Create(ctx context.Context, userID string, gameID int64, value int) (*models.Rating, error)
	Update(id int64, value int) (*models.Rating, error)
	Delete(id int64) error
	Submit(ctx context.Context, userID string, gameID int64, value int) (*models.Rating, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	userRepo   repository.UserRepository
	gameRepo   repository.GameRepository
}

func NewRatingService(
	ratingRepo repository.RatingRepository,
	userRepo repository.UserRepository,
	gameRepo repository.GameRepository,
) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		userRepo:   userRepo,
		gameRepo:   gameRepo,
	}
}

func (s *ratingService) GetAll() ([]models.Rating, error) {
	return s.ratingRepo.GetAll()
}

func (s *ratingService) GetByID(id int64) (*models.Rating, error) {
	rating, err := s.ratingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return rating, nil
}

// Create is the strict entry point: both referenced rows must exist, the
// value must be in bounds, and an existing (user, game) rating is an error,
// never an overwrite.
func (s *ratingService) Create(ctx context.Context, userID string, gameID int64, value int) (*models.Rating, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	if err := validateRatingBounds(value); err != nil {
		return nil, err
	}

	// The looked-up row decides the duplicate, not the mere act of looking
	existing, err := s.ratingRepo.GetByUserAndGame(userID, gameID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateRating
	}

	rating := &models.Rating{
		UserID: userID,
		GameID: gameID,
		Rating: value,
	}
	if err := s.ratingRepo.Create(rating); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRating
		}
		return nil, err
	}
	return rating, nil
}

// Update changes the value of an existing rating row, addressed by primary id.
func (s *ratingService) Update(id int64, value int) (*models.Rating, error) {
	rating, err := s.ratingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}

	if err := validateRatingBounds(value); err != nil {
		return nil, err
	}

	rating.Rating = value
	if err := s.ratingRepo.Update(rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *ratingService) Delete(id int64) error {
	if err := s.ratingRepo.DeleteByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRatingNotFound
		}
		return err
	}
	return nil
}

// Submit is the form-driven entry point: the verified identity arrives as an
// explicit parameter, and an existing (user, game) rating is updated in place.
func (s *ratingService) Submit(ctx context.Context, userID string, gameID int64, value int) (*models.Rating, error) {
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	if err := validateRatingBounds(value); err != nil {
		return nil, err
	}

	existing, err := s.ratingRepo.GetByUserAndGame(userID, gameID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.Rating = value
		if err := s.ratingRepo.Update(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	rating := &models.Rating{
		UserID: userID,
		GameID: gameID,
		Rating: value,
	}
	if err := s.ratingRepo.Create(rating); err != nil {
		return nil, err
	}
	return rating, nil
}
