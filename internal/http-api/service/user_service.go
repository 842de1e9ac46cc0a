package service

import (
	"errors"

	"gamevault/internal/http-api/models"
	"gamevault/internal/http-api/repository"
	"gamevault/internal/middleware/auth"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type UserService interface {
	Register(username, firstName, lastName, password string) (*models.User, error)
	GetAll() ([]models.User, error)
	GetByID(id string) (*models.User, error)
	Update(id, firstName, lastName string) (*models.User, error)
	Delete(id string) error
	GetRatings(id string) ([]models.Rating, error)
	GetFeedback(id string) ([]models.Feedback, error)
}

type userService struct {
	userRepo     repository.UserRepository
	ratingRepo   repository.RatingRepository
	feedbackRepo repository.FeedbackRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	ratingRepo repository.RatingRepository,
	feedbackRepo repository.FeedbackRepository,
) UserService {
	return &userService{
		userRepo:     userRepo,
		ratingRepo:   ratingRepo,
		feedbackRepo: feedbackRepo,
	}
}

// Register creates a new user. The username must be free; the slug is derived
// from the username once, at creation, and never recomputed afterwards.
func (s *userService) Register(username, firstName, lastName, password string) (*models.User, error) {
	// Check if username is taken before insert, the unique index is only a backstop
	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrNameInUse
	}

	// Hash password
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Password:  hashedPassword,
		Slug:      slug.Make(username),
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrNameInUse
		}
		return nil, err
	}

	return user, nil
}

func (s *userService) GetAll() ([]models.User, error) {
	return s.userRepo.GetAll()
}

func (s *userService) GetByID(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update changes the narrow set of mutable user fields. Username, password
// hash and slug stay untouched.
func (s *userService) Update(id, firstName, lastName string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.FirstName = firstName
	user.LastName = lastName
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user together with all its ratings and feedback.
func (s *userService) Delete(id string) error {
	if err := s.userRepo.DeleteCascade(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *userService) GetRatings(id string) ([]models.Rating, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}
	return s.ratingRepo.GetByUser(id)
}

func (s *userService) GetFeedback(id string) ([]models.Feedback, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}
	return s.feedbackRepo.GetByUser(id)
}
