package service

import (
	"context"
	"time"

	"gamevault/internal/http-api/models"
	"gamevault/internal/http-api/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memStore is a shared in-memory backing store for the fake repositories so
// cascade deletes can touch sibling tables, the way the real transactions do.
type memStore struct {
	users     []models.User
	games     []models.Game
	ratings   []models.Rating
	feedbacks []models.Feedback

	gameSeq     int64
	ratingSeq   int64
	feedbackSeq int64
}

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) userRepo() repository.UserRepository         { return &fakeUserRepo{m} }
func (m *memStore) gameRepo() repository.GameRepository         { return &fakeGameRepo{m} }
func (m *memStore) ratingRepo() repository.RatingRepository     { return &fakeRatingRepo{m} }
func (m *memStore) feedbackRepo() repository.FeedbackRepository { return &fakeFeedbackRepo{m} }

// ---- users ----

type fakeUserRepo struct{ m *memStore }

func (f *fakeUserRepo) Create(user *models.User) error {
	for _, u := range f.m.users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	f.m.users = append(f.m.users, *user)
	return nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	for i := range f.m.users {
		if f.m.users[i].Username == username {
			u := f.m.users[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	for i := range f.m.users {
		if f.m.users[i].ID == id {
			u := f.m.users[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) {
	out := make([]models.User, len(f.m.users))
	copy(out, f.m.users)
	return out, nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	for i := range f.m.users {
		if f.m.users[i].ID == user.ID {
			f.m.users[i] = *user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) DeleteCascade(id string) error {
	idx := -1
	for i := range f.m.users {
		if f.m.users[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return gorm.ErrRecordNotFound
	}

	keptRatings := f.m.ratings[:0]
	for _, r := range f.m.ratings {
		if r.UserID != id {
			keptRatings = append(keptRatings, r)
		}
	}
	f.m.ratings = keptRatings

	keptFeedback := f.m.feedbacks[:0]
	for _, fb := range f.m.feedbacks {
		if fb.UserID != id {
			keptFeedback = append(keptFeedback, fb)
		}
	}
	f.m.feedbacks = keptFeedback

	f.m.users = append(f.m.users[:idx], f.m.users[idx+1:]...)
	return nil
}

// ---- games ----

type fakeGameRepo struct{ m *memStore }

func (f *fakeGameRepo) GetAll(ctx context.Context) ([]models.Game, error) {
	out := make([]models.Game, len(f.m.games))
	copy(out, f.m.games)
	return out, nil
}

func (f *fakeGameRepo) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	for i := range f.m.games {
		if f.m.games[i].ID == id {
			g := f.m.games[i]
			return &g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGameRepo) GetByTitle(ctx context.Context, title string) (*models.Game, error) {
	for i := range f.m.games {
		if f.m.games[i].Title == title {
			g := f.m.games[i]
			return &g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGameRepo) Create(ctx context.Context, g *models.Game) error {
	for _, existing := range f.m.games {
		if existing.Title == g.Title {
			return gorm.ErrDuplicatedKey
		}
	}
	f.m.gameSeq++
	g.ID = f.m.gameSeq
	g.CreatedAt = time.Now()
	f.m.games = append(f.m.games, *g)
	return nil
}

func (f *fakeGameRepo) Update(ctx context.Context, id int64, g *models.Game) error {
	for i := range f.m.games {
		if f.m.games[i].ID == id {
			g.ID = id
			f.m.games[i] = *g
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeGameRepo) DeleteCascade(ctx context.Context, id int64) error {
	idx := -1
	for i := range f.m.games {
		if f.m.games[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return gorm.ErrRecordNotFound
	}

	keptRatings := f.m.ratings[:0]
	for _, r := range f.m.ratings {
		if r.GameID != id {
			keptRatings = append(keptRatings, r)
		}
	}
	f.m.ratings = keptRatings

	keptFeedback := f.m.feedbacks[:0]
	for _, fb := range f.m.feedbacks {
		if fb.GameID != id {
			keptFeedback = append(keptFeedback, fb)
		}
	}
	f.m.feedbacks = keptFeedback

	f.m.games = append(f.m.games[:idx], f.m.games[idx+1:]...)
	return nil
}

// ---- ratings ----

type fakeRatingRepo struct{ m *memStore }

func (f *fakeRatingRepo) Create(rating *models.Rating) error {
	for _, r := range f.m.ratings {
		if r.UserID == rating.UserID && r.GameID == rating.GameID {
			return gorm.ErrDuplicatedKey
		}
	}
	f.m.ratingSeq++
	rating.ID = f.m.ratingSeq
	rating.CreatedAt = time.Now()
	f.m.ratings = append(f.m.ratings, *rating)
	return nil
}

func (f *fakeRatingRepo) Update(rating *models.Rating) error {
	for i := range f.m.ratings {
		if f.m.ratings[i].ID == rating.ID {
			f.m.ratings[i] = *rating
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRatingRepo) DeleteByID(id int64) error {
	for i := range f.m.ratings {
		if f.m.ratings[i].ID == id {
			f.m.ratings = append(f.m.ratings[:i], f.m.ratings[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRatingRepo) GetByID(id int64) (*models.Rating, error) {
	for i := range f.m.ratings {
		if f.m.ratings[i].ID == id {
			r := f.m.ratings[i]
			return &r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRatingRepo) GetAll() ([]models.Rating, error) {
	out := make([]models.Rating, len(f.m.ratings))
	copy(out, f.m.ratings)
	return out, nil
}

func (f *fakeRatingRepo) GetByUserAndGame(userID string, gameID int64) (*models.Rating, error) {
	for i := range f.m.ratings {
		if f.m.ratings[i].UserID == userID && f.m.ratings[i].GameID == gameID {
			r := f.m.ratings[i]
			return &r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRatingRepo) GetByUser(userID string) ([]models.Rating, error) {
	var out []models.Rating
	for _, r := range f.m.ratings {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRatingRepo) GetByGame(gameID int64) ([]models.Rating, error) {
	var out []models.Rating
	for _, r := range f.m.ratings {
		if r.GameID == gameID {
			out = append(out, r)
		}
	}
	return out, nil
}

// ---- feedback ----

type fakeFeedbackRepo struct{ m *memStore }

func (f *fakeFeedbackRepo) Create(feedback *models.Feedback) error {
	for _, fb := range f.m.feedbacks {
		if fb.UserID == feedback.UserID && fb.GameID == feedback.GameID {
			return gorm.ErrDuplicatedKey
		}
	}
	f.m.feedbackSeq++
	feedback.ID = f.m.feedbackSeq
	feedback.CreatedAt = time.Now()
	f.m.feedbacks = append(f.m.feedbacks, *feedback)
	return nil
}

func (f *fakeFeedbackRepo) Update(feedback *models.Feedback) error {
	for i := range f.m.feedbacks {
		if f.m.feedbacks[i].ID == feedback.ID {
			f.m.feedbacks[i] = *feedback
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeFeedbackRepo) DeleteByID(id int64) error {
	for i := range f.m.feedbacks {
		if f.m.feedbacks[i].ID == id {
			f.m.feedbacks = append(f.m.feedbacks[:i], f.m.feedbacks[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeFeedbackRepo) GetByID(id int64) (*models.Feedback, error) {
	for i := range f.m.feedbacks {
		if f.m.feedbacks[i].ID == id {
			fb := f.m.feedbacks[i]
			return &fb, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFeedbackRepo) GetAll() ([]models.Feedback, error) {
	out := make([]models.Feedback, len(f.m.feedbacks))
	copy(out, f.m.feedbacks)
	return out, nil
}

func (f *fakeFeedbackRepo) GetByUserAndGame(userID string, gameID int64) (*models.Feedback, error) {
	for i := range f.m.feedbacks {
		if f.m.feedbacks[i].UserID == userID && f.m.feedbacks[i].GameID == gameID {
			fb := f.m.feedbacks[i]
			return &fb, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFeedbackRepo) GetByUser(userID string) ([]models.Feedback, error) {
	var out []models.Feedback
	for _, fb := range f.m.feedbacks {
		if fb.UserID == userID {
			out = append(out, fb)
		}
	}
	return out, nil
}

func (f *fakeFeedbackRepo) GetByGame(gameID int64) ([]models.Feedback, error) {
	var out []models.Feedback
	for _, fb := range f.m.feedbacks {
		if fb.GameID == gameID {
			out = append(out, fb)
		}
	}
	return out, nil
}

// ---- sessions ----

type fakeSessionRepo struct {
	tokens map[string]string
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{tokens: make(map[string]string)}
}

func (f *fakeSessionRepo) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	f.tokens[token] = userID
	return nil
}

func (f *fakeSessionRepo) Lookup(ctx context.Context, token string) (string, error) {
	userID, ok := f.tokens[token]
	if !ok {
		return "", repository.ErrTokenNotFound
	}
	return userID, nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}
