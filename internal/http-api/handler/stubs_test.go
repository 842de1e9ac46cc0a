package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"gamevault/internal/http-api/models"
	"gamevault/internal/http-api/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ---- stub services, canned responses keyed per test ----

type stubUserService struct {
	user     *models.User
	users    []models.User
	ratings  []models.Rating
	feedback []models.Feedback
	err      error
}

func (s *stubUserService) Register(username, firstName, lastName, password string) (*models.User, error) {
	return s.user, s.err
}
func (s *stubUserService) GetAll() ([]models.User, error)      { return s.users, s.err }
func (s *stubUserService) GetByID(id string) (*models.User, error) {
	return s.user, s.err
}
func (s *stubUserService) Update(id, firstName, lastName string) (*models.User, error) {
	return s.user, s.err
}
func (s *stubUserService) Delete(id string) error { return s.err }
func (s *stubUserService) GetRatings(id string) ([]models.Rating, error) {
	return s.ratings, s.err
}
func (s *stubUserService) GetFeedback(id string) ([]models.Feedback, error) {
	return s.feedback, s.err
}

type stubGameService struct {
	game     *models.Game
	games    []models.Game
	ratings  []models.Rating
	feedback []models.Feedback
	err      error
}

func (s *stubGameService) GetAll(ctx context.Context) ([]models.Game, error) { return s.games, s.err }
func (s *stubGameService) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	return s.game, s.err
}
func (s *stubGameService) Create(ctx context.Context, g *models.Game) error {
	if s.err != nil {
		return s.err
	}
	if s.game != nil {
		*g = *s.game
	}
	return nil
}
func (s *stubGameService) Update(ctx context.Context, id int64, g *models.Game) error { return s.err }
func (s *stubGameService) Delete(ctx context.Context, id int64) error                 { return s.err }
func (s *stubGameService) GetRatings(ctx context.Context, id int64) ([]models.Rating, error) {
	return s.ratings, s.err
}
func (s *stubGameService) GetFeedback(ctx context.Context, id int64) ([]models.Feedback, error) {
	return s.feedback, s.err
}

type stubRatingService struct {
	rating *models.Rating
	list   []models.Rating
	err    error

	// identity the handler passed into Submit
	submitUserID string
	submitGameID int64
	submitValue  int
}

func (s *stubRatingService) GetAll() ([]models.Rating, error)          { return s.list, s.err }
func (s *stubRatingService) GetByID(id int64) (*models.Rating, error)  { return s.rating, s.err }
func (s *stubRatingService) Create(ctx context.Context, userID string, gameID int64, value int) (*models.Rating, error) {
	return s.rating, s.err
}
func (s *stubRatingService) Update(id int64, value int) (*models.Rating, error) {
	return s.rating, s.err
}
func (s *stubRatingService) Delete(id int64) error { return s.err }
func (s *stubRatingService) Submit(ctx context.Context, userID string, gameID int64, value int) (*models.Rating, error) {
	s.submitUserID = userID
	s.submitGameID = gameID
	s.submitValue = value
	return s.rating, s.err
}

type stubFeedbackService struct {
	feedback *models.Feedback
	list     []models.Feedback
	err      error

	submitUserID string
}

func (s *stubFeedbackService) GetAll() ([]models.Feedback, error)         { return s.list, s.err }
func (s *stubFeedbackService) GetByID(id int64) (*models.Feedback, error) { return s.feedback, s.err }
func (s *stubFeedbackService) Create(ctx context.Context, userID string, gameID int64, text string) (*models.Feedback, error) {
	return s.feedback, s.err
}
func (s *stubFeedbackService) Update(id int64, text string) (*models.Feedback, error) {
	return s.feedback, s.err
}
func (s *stubFeedbackService) Delete(id int64) error { return s.err }
func (s *stubFeedbackService) Submit(ctx context.Context, userID string, gameID int64, text string) (*models.Feedback, error) {
	s.submitUserID = userID
	return s.feedback, s.err
}

type stubAuthService struct {
	accessToken  string
	refreshToken string
	user         *models.User
	claims       *service.Claims
	err          error
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, string, *models.User, error) {
	return s.accessToken, s.refreshToken, s.user, s.err
}
func (s *stubAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	return s.accessToken, s.err
}
func (s *stubAuthService) RevokeToken(ctx context.Context, refreshToken string) error { return s.err }
func (s *stubAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	return s.claims, s.err
}
