package handler

import (
	"errors"
	"net/http"
	"strconv"

	"gamevault/internal/http-api/dto"
	"gamevault/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// RegisterRoutes registers the strict feedback CRUD routes
func (h *FeedbackHandler) RegisterRoutes(router *gin.RouterGroup) {
	feedback := router.Group("/feedback")
	{
		feedback.GET("", h.List)
		feedback.POST("", h.Create)
		feedback.GET("/:feedback_id", h.Get)
		feedback.PUT("/:feedback_id", h.Update)
		feedback.DELETE("/:feedback_id", h.Delete)
	}
}

// RegisterSubmitRoutes registers the authenticated upsert path under the games group
func (h *FeedbackHandler) RegisterSubmitRoutes(games *gin.RouterGroup, authRequired gin.HandlerFunc) {
	games.POST("/:game_id/feedback", authRequired, h.Submit)
}

func parseFeedbackID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("feedback_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback ID"})
		return 0, false
	}
	return id, true
}

// List returns all feedback rows
// GET /api/feedback
func (h *FeedbackHandler) List(c *gin.Context) {
	feedback, err := h.feedbackService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, feedback)
}

// Get returns a feedback row by primary id
// GET /api/feedback/:feedback_id
func (h *FeedbackHandler) Get(c *gin.Context) {
	id, ok := parseFeedbackID(c)
	if !ok {
		return
	}

	feedback, err := h.feedbackService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrFeedbackNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, feedback)
}

// Create is the strict entry point: duplicates for a (user, game) pair fail
// POST /api/feedback
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req dto.CreateFeedbackDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feedback, err := h.feedbackService.Create(c.Request.Context(), req.UserID, req.GameID, req.FeedbackText)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrDuplicateFeedback):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, feedback)
}

// Update changes existing feedback text
// PUT /api/feedback/:feedback_id
func (h *FeedbackHandler) Update(c *gin.Context) {
	id, ok := parseFeedbackID(c)
	if !ok {
		return
	}

	var req dto.UpdateFeedbackDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feedback, err := h.feedbackService.Update(id, req.FeedbackText)
	if err != nil {
		if errors.Is(err, service.ErrFeedbackNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, feedback)
}

// Delete removes a feedback row by primary id
// DELETE /api/feedback/:feedback_id
func (h *FeedbackHandler) Delete(c *gin.Context) {
	id, ok := parseFeedbackID(c)
	if !ok {
		return
	}

	if err := h.feedbackService.Delete(id); err != nil {
		if errors.Is(err, service.ErrFeedbackNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback deleted successfully"})
}

// Submit creates or updates the authenticated user's feedback for a game
// POST /api/games/:game_id/feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	gameID, ok := parseGameID(c)
	if !ok {
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.SubmitFeedbackDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feedback, err := h.feedbackService.Submit(c.Request.Context(), userID.(string), gameID, req.FeedbackText)
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
