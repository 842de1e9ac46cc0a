package handler

import (
	"errors"
	"net/http"
	"strconv"

	"gamevault/internal/http-api/dto"
	"gamevault/internal/http-api/models"
	"gamevault/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type GameHandler struct {
	gameService service.GameService
}

func NewGameHandler(gameService service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// RegisterRoutes registers game CRUD routes
func (h *GameHandler) RegisterRoutes(router *gin.RouterGroup) {
	games := router.Group("/games")
	{
		games.GET("", h.List)
		games.POST("", h.Create)
		games.GET("/:game_id", h.Get)
		games.PUT("/:game_id", h.Update)
		games.DELETE("/:game_id", h.Delete)
		games.GET("/:game_id/ratings", h.ListRatings)
		games.GET("/:game_id/feedback", h.ListFeedback)
	}
}

func parseGameID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return 0, false
	}
	return id, true
}

// List returns the whole catalog in insertion order
// GET /api/games
func (h *GameHandler) List(c *gin.Context) {
	games, err := h.gameService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, games)
}

// Create adds a catalog entry
// POST /api/games
func (h *GameHandler) Create(c *gin.Context) {
	var req dto.CreateGameDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game := &models.Game{
		Title:       req.Title,
		Description: req.Description,
		Rating:      req.Rating,
		Price:       req.Price,
		Feedback:    req.Feedback,
	}
	if err := h.gameService.Create(c.Request.Context(), game); err != nil {
		if errors.Is(err, service.ErrTitleInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logrus.WithFields(logrus.Fields{
		"game_id": game.ID,
		"title":   game.Title,
	}).Info("game created")

	c.JSON(http.StatusCreated, game)
}

// Get returns a single game
// GET /api/games/:game_id
func (h *GameHandler) Get(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}

	game, err := h.gameService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, game)
}

// Update changes the mutable fields, never title or slug
// PUT /api/games/:game_id
func (h *GameHandler) Update(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}

	var req dto.UpdateGameDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game := &models.Game{
		Description: req.Description,
		Rating:      req.Rating,
		Price:       req.Price,
		Feedback:    req.Feedback,
	}
	if err := h.gameService.Update(c.Request.Context(), id, game); err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, game)
}

// Delete removes a game and cascades to its ratings and feedback
// DELETE /api/games/:game_id
func (h *GameHandler) Delete(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}

	if err := h.gameService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logrus.WithField("game_id", id).Info("game deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Game deleted successfully"})
}

// ListRatings returns all ratings left for a game
// GET /api/games/:game_id/ratings
func (h *GameHandler) ListRatings(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}

	ratings, err := h.gameService.GetRatings(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// ListFeedback returns all feedback left for a game
// GET /api/games/:game_id/feedback
func (h *GameHandler) ListFeedback(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}

	feedback, err := h.gameService.GetFeedback(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, feedback)
}
