package handler

import (
	"errors"
	"net/http"
	"strconv"

	"gamevault/internal/http-api/dto"
	"gamevault/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterRoutes registers the strict rating CRUD routes
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup) {
	ratings := router.Group("/ratings")
	{
		ratings.GET("", h.List)
		ratings.POST("", h.Create)
		ratings.GET("/:rating_id", h.Get)
		ratings.PUT("/:rating_id", h.Update)
		ratings.DELETE("/:rating_id", h.Delete)
	}
}

// RegisterSubmitRoutes registers the authenticated upsert path under the
// games group. The identity comes from the auth middleware.
func (h *RatingHandler) RegisterSubmitRoutes(games *gin.RouterGroup, authRequired gin.HandlerFunc) {
	games.POST("/:game_id/ratings", authRequired, h.Submit)
}

// List returns all ratings
// GET /api/ratings
func (h *RatingHandler) List(c *gin.Context) {
	ratings, err := h.ratingService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// Get returns a rating by primary id
// GET /api/ratings/:rating_id
func (h *RatingHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("rating_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating ID"})
		return
	}

	rating, err := h.ratingService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rating)
}

// Create is the strict entry point: duplicates for a (user, game) pair fail
// POST /api/ratings
func (h *RatingHandler) Create(c *gin.Context) {
	var req dto.CreateRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.Create(c.Request.Context(), req.UserID, req.GameID, req.RatingInt)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrDuplicateRating):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrRatingOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, rating)
}

// Update changes an existing rating's value
// PUT /api/ratings/:rating_id
func (h *RatingHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("rating_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating ID"})
		return
	}

	var req dto.UpdateRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.Update(id, req.RatingInt)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRatingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrRatingOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, rating)
}

// Delete removes a rating by primary id
// DELETE /api/ratings/:rating_id
func (h *RatingHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("rating_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating ID"})
		return
	}

	if err := h.ratingService.Delete(id); err != nil {
		if errors.Is(err, service.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rating deleted successfully"})
}

// Submit creates or updates the authenticated user's rating for a game
// POST /api/games/:game_id/ratings
func (h *RatingHandler) Submit(c *gin.Context) {
	gameID, ok := parseGameID(c)
	if !ok {
		return
	}

	// Set by AuthMiddleware; identity is an explicit input to the service
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.SubmitRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.Submit(c.Request.Context(), userID.(string), gameID, req.RatingInt)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrRatingOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, rating)
}
