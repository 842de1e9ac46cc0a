package service

import (
	"context"
	"errors"
	"strings"

	"gamevault/internal/http-api/models"
	"gamevault/internal/http-api/repository"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type GameService interface {
	GetAll(ctx context.Context) ([]models.Game, error)
	GetByID(ctx context.Context, id int64) (*models.Game, error)
	Create(ctx context.Context, g *models.Game) error
	Update(ctx context.Context, id int64, g *models.Game) error
	Delete(ctx context.Context, id int64) error
	GetRatings(ctx context.Context, id int64) ([]models.Rating, error)
	GetFeedback(ctx context.Context, id int64) ([]models.Feedback, error)
}

type gameService struct {
	gameRepo     repository.GameRepository
	ratingRepo   repository.RatingRepository
	feedbackRepo repository.FeedbackRepository
}

func NewGameService(
	gameRepo repository.GameRepository,
	ratingRepo repository.RatingRepository,
	feedbackRepo repository.FeedbackRepository,
) GameService {
	return &gameService{
		gameRepo:     gameRepo,
		ratingRepo:   ratingRepo,
		feedbackRepo: feedbackRepo,
	}
}

func (s *gameService) GetAll(ctx context.Context) ([]models.Game, error) {
	return s.gameRepo.GetAll(ctx)
}

func (s *gameService) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	g, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return g, nil
}

// Create adds a catalog entry. The title must be free; the slug is derived
// from the title at creation time only.
func (s *gameService) Create(ctx context.Context, g *models.Game) error {
	if strings.TrimSpace(g.Title) == "" {
		return errors.New("title is required")
	}

	if _, err := s.gameRepo.GetByTitle(ctx, g.Title); err == nil {
		return ErrTitleInUse
	}

	g.Slug = slug.Make(g.Title)

	if err := s.gameRepo.Create(ctx, g); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrTitleInUse
		}
		return err
	}
	return nil
}

// Update changes description/rating/price/feedback. Title and slug are
// identity fields and stay as created.
func (s *gameService) Update(ctx context.Context, id int64, g *models.Game) error {
	existing, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGameNotFound
		}
		return err
	}

	existing.Description = g.Description
	existing.Rating = g.Rating
	existing.Price = g.Price
	existing.Feedback = g.Feedback

	if err := s.gameRepo.Update(ctx, id, existing); err != nil {
		return err
	}
	*g = *existing
	return nil
}

// Delete removes the game together with all its ratings and feedback.
func (s *gameService) Delete(ctx context.Context, id int64) error {
	if err := s.gameRepo.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGameNotFound
		}
		return err
	}
	return nil
}

func (s *gameService) GetRatings(ctx context.Context, id int64) ([]models.Rating, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.ratingRepo.GetByGame(id)
}

func (s *gameService) GetFeedback(ctx context.Context, id int64) ([]models.Feedback, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.feedbackRepo.GetByGame(id)
}
