package pages

import (
	"context"
	"log"

	"tripmark/internal/domain"
	"tripmark/internal/gateway/mistral"
	"tripmark/internal/modules/discover"

	"github.com/gin-gonic/gin"
)

// FavoriteLister is the slice of the favorite service the pages need.
type FavoriteLister interface {
	List(ctx context.Context, userID int64) ([]domain.Favorite, error)
}

type Handler struct {
	renderer  Renderer
	gen       discover.Generator
	favorites FavoriteLister
}

func NewHandler(renderer Renderer, gen discover.Generator, favorites FavoriteLister) *Handler {
	return &Handler{renderer: renderer, gen: gen, favorites: favorites}
}

// RegisterPublicRoutes wires the pages reachable without a session.
func (h *Handler) RegisterPublicRoutes(r gin.IRouter) {
	r.GET("/login", h.loginPage)
	r.GET("/register", h.registerPage)
	r.GET("/about", h.aboutPage)
}

// RegisterProtectedRoutes wires the pages behind the page auth
// middleware (redirect to /login when unauthenticated).
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.indexPage)
	rg.GET("/states", h.statesPage)
	rg.GET("/places/:state", h.placesPage)
	rg.GET("/categories", h.categoriesPage)
	rg.GET("/favorites", h.favoritesPage)
}

func (h *Handler) loginPage(c *gin.Context) {
	h.renderer.Page(c, "login", gin.H{})
}

func (h *Handler) registerPage(c *gin.Context) {
	h.renderer.Page(c, "register", gin.H{})
}

func (h *Handler) aboutPage(c *gin.Context) {
	h.renderer.Page(c, "about", gin.H{})
}

func (h *Handler) indexPage(c *gin.Context) {
	h.renderer.Page(c, "index", gin.H{"username": c.GetString("username")})
}

func (h *Handler) statesPage(c *gin.Context) {
	result := h.gen.ListStates(c.Request.Context())
	h.renderer.Page(c, "states", gin.H{"states": result.States})
}

func (h *Handler) placesPage(c *gin.Context) {
	state := c.Param("state")
	category := c.DefaultQuery("category", "all")
	result := h.gen.ListPlaces(c.Request.Context(), state, category)
	h.renderer.Page(c, "places", gin.H{
		"state":      state,
		"places":     result.Places,
		"categories": mistral.Categories,
	})
}

func (h *Handler) categoriesPage(c *gin.Context) {
	result := h.gen.ListStates(c.Request.Context())
	h.renderer.Page(c, "categories", gin.H{
		"categories": mistral.Categories,
		"states":     result.States,
	})
}

func (h *Handler) favoritesPage(c *gin.Context) {
	userID := c.GetInt64("user_id")
	favorites, err := h.favorites.List(c.Request.Context(), userID)
	if err != nil {
		// The page stays renderable even when the store hiccups.
		log.Printf("pages: loading favorites for user %d: %v", userID, err)
		favorites = []domain.Favorite{}
	}
	h.renderer.Page(c, "favorites", gin.H{"favorites": favorites})
}
