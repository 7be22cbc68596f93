package favorite

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"tripmark/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the favorites endpoints onto an authenticated
// group; the middleware guarantees user_id is present.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	{
		favorites.GET("/list", h.List)
		favorites.POST("", h.Add)
		favorites.DELETE("/:id", h.Remove)
	}
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")

	favorites, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		log.Printf("favorite: list failed for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
		return
	}

	c.JSON(http.StatusOK, ToFavoriteListResponse(favorites))
}

func (h *Handler) Add(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	result, err := h.service.Add(c.Request.Context(), userID, req.State, req.PlaceName, req.Category)
	if err != nil {
		if errors.Is(err, ErrMissingField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
		log.Printf("favorite: add failed for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}

	if !result.Created {
		c.JSON(http.StatusOK, gin.H{"message": "Favorite already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Favorite added successfully",
		"id":      result.ID,
	})
}

func (h *Handler) Remove(c *gin.Context) {
	userID := c.GetInt64("user_id")

	favoriteID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid favorite id"})
		return
	}

	if err := h.service.Remove(c.Request.Context(), userID, favoriteID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
			return
		}
		log.Printf("favorite: delete %d failed for user %d: %v", favoriteID, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Favorite deleted successfully"})
}
