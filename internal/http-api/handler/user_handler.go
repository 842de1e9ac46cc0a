package handler

import (
	"errors"
	"net/http"

	"gamevault/internal/http-api/dto"
	"gamevault/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers user CRUD routes
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", h.List)
		users.POST("", h.Register)
		users.GET("/:user_id", h.Get)
		users.PUT("/:user_id", h.Update)
		users.DELETE("/:user_id", h.Delete)
		users.GET("/:user_id/ratings", h.ListRatings)
		users.GET("/:user_id/feedback", h.ListFeedback)
	}
}

// List returns all registered users in insertion order
// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// Register creates a new user
// POST /api/users
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.CreateUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Register(req.Username, req.FirstName, req.LastName, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrNameInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("user registered")

	c.JSON(http.StatusCreated, user)
}

// Get returns a single user
// GET /api/users/:user_id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.GetByID(c.Param("user_id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update changes firstname/lastname only
// PUT /api/users/:user_id
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Update(c.Param("user_id"), req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete removes a user and cascades to its ratings and feedback
// DELETE /api/users/:user_id
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("user_id")
	if err := h.userService.Delete(id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logrus.WithField("user_id", id).Info("user deleted")
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// ListRatings returns all ratings a user has submitted
// GET /api/users/:user_id/ratings
func (h *UserHandler) ListRatings(c *gin.Context) {
	ratings, err := h.userService.GetRatings(c.Param("user_id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// ListFeedback returns all feedback a user has submitted
// GET /api/users/:user_id/feedback
func (h *UserHandler) ListFeedback(c *gin.Context) {
	feedback, err := h.userService.GetFeedback(c.Param("user_id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, feedback)
}
