package repository

import (
	"context"
	"fmt"

	"gamevault/internal/http-api/models"

	"gorm.io/gorm"
)

type GameRepository interface {
	GetAll(ctx context.Context) ([]models.Game, error)
	GetByID(ctx context.Context, id int64) (*models.Game, error)
	GetByTitle(ctx context.Context, title string) (*models.Game, error)
	Create(ctx context.Context, g *models.Game) error
	Update(ctx context.Context, id int64, g *models.Game) error
	DeleteCascade(ctx context.Context, id int64) error
}

type GameRepo struct {
	db *gorm.DB
}

func NewGameRepo(db *gorm.DB) GameRepository {
	return &GameRepo{db: db}
}

// GetAll returns games in insertion order.
func (r *GameRepo) GetAll(ctx context.Context) ([]models.Game, error) {
	var list []models.Game
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GameRepo) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	var g models.Game
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GameRepo) GetByTitle(ctx context.Context, title string) (*models.Game, error) {
	var g models.Game
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GameRepo) Create(ctx context.Context, g *models.Game) error {
	if err := r.db.WithContext(ctx).Create(g).Error; err != nil {
		return fmt.Errorf("create game: %w", translateError(err))
	}
	// GORM will populate g.ID and g.CreatedAt
	return nil
}

func (r *GameRepo) Update(ctx context.Context, id int64, g *models.Game) error {
	// ensure ID set for Save
	g.ID = id
	if err := r.db.WithContext(ctx).Save(g).Error; err != nil {
		return fmt.Errorf("update game: %w", err)
	}
	return nil
}

// DeleteCascade removes the game and its dependent rating/feedback rows in a
// single transaction.
func (r *GameRepo) DeleteCascade(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", id).Delete(&models.Feedback{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Game{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
