package discover

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	gen Generator
}

func NewHandler(gen Generator) *Handler {
	return &Handler{gen: gen}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/states", h.States)
	rg.POST("/search", h.Search)
}

// States returns the generated US state list. An empty list means the
// generator is temporarily unavailable, which the API reports as a 500
// so the frontend can show its retry notice.
func (h *Handler) States(c *gin.Context) {
	result := h.gen.ListStates(c.Request.Context())
	if len(result.States) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch states"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"states": result.States})
}

// Search returns generated places for a state and category. Degraded
// generator output is an empty list with a 200, never an error.
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "State name is required"})
		return
	}

	state := strings.TrimSpace(req.State)
	if state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "State name is required"})
		return
	}
	category := req.Category
	if category == "" {
		category = "all"
	}

	result := h.gen.ListPlaces(c.Request.Context(), state, category)
	c.JSON(http.StatusOK, gin.H{"places": result.Places})
}
