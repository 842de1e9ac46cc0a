package service

import (
	"context"
	"errors"

	"gamevault/internal/http-api/models"
	"gamevault/internal/http-api/repository"

	"gorm.io/gorm"
)

// FeedbackService mirrors RatingService: a strict Create that rejects an
// existing (user, game) pair and a Submit that upserts it.
type FeedbackService interface {
	GetAll() ([]models.Feedback, error)
	GetByID(id int64) (*models.Feedback, error)
	Create(ctx context.Context, userID string, gameID int64, text string) (*models.Feedback, error)
	Update(id int64, text string) (*models.Feedback, error)
	Delete(id int64) error
	Submit(ctx context.Context, userID string, gameID int64, text string) (*models.Feedback, error)
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	userRepo     repository.UserRepository
	gameRepo     repository.GameRepository
}

func NewFeedbackService(
	feedbackRepo repository.FeedbackRepository,
	userRepo repository.UserRepository,
	gameRepo repository.GameRepository,
) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
		gameRepo:     gameRepo,
	}
}

func (s *feedbackService) GetAll() ([]models.Feedback, error) {
	return s.feedbackRepo.GetAll()
}

func (s *feedbackService) GetByID(id int64) (*models.Feedback, error) {
	feedback, err := s.feedbackRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	return feedback, nil
}

// Create is the strict entry point: referenced rows must exist and a second
// feedback for the same (user, game) pair is rejected.
func (s *feedbackService) Create(ctx context.Context, userID string, gameID int64, text string) (*models.Feedback, error) {
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

	existing, err := s.feedbackRepo.GetByUserAndGame(userID, gameID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateFeedback
	}

	feedback := &models.Feedback{
		UserID:       userID,
		GameID:       gameID,
		FeedbackText: text,
	}
	if err := s.feedbackRepo.Create(feedback); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateFeedback
		}
		return nil, err
	}
	return feedback, nil
}

func (s *feedbackService) Update(id int64, text string) (*models.Feedback, error) {
	feedback, err := s.feedbackRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}

	feedback.FeedbackText = text
	if err := s.feedbackRepo.Update(feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

func (s *feedbackService) Delete(id int64) error {
	if err := s.feedbackRepo.DeleteByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFeedbackNotFound
		}
		return err
	}
	return nil
}

// Submit upserts the authenticated user's feedback for a game.
func (s *feedbackService) Submit(ctx context.Context, userID string, gameID int64, text string) (*models.Feedback, error) {
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	existing, err := s.feedbackRepo.GetByUserAndGame(userID, gameID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.FeedbackText = text
		if err := s.feedbackRepo.Update(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	feedback := &models.Feedback{
		UserID:       userID,
		GameID:       gameID,
		FeedbackText: text,
	}
	if err := s.feedbackRepo.Create(feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}
