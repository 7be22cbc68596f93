package pages

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Renderer turns a page name plus its data into a response. Page markup
// is owned by the frontend; the server only guarantees the auth gating
// and the data each page receives.
type Renderer interface {
	Page(c *gin.Context, name string, data gin.H)
}

// shellRenderer is the stand-in used until templates are mounted: it
// answers with a bare HTML shell so the gated routes stay reachable.
type shellRenderer struct{}

func NewRenderer() Renderer {
	return shellRenderer{}
}

func (shellRenderer) Page(c *gin.Context, name string, _ gin.H) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, fmt.Sprintf("<!doctype html><title>tripmark — %s</title>", name))
}
