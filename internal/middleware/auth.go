package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"tripmark/internal/domain"
	"tripmark/internal/modules/auth"
	jwtsvc "tripmark/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// UserResolver restores the acting user from a token's user id.
type UserResolver interface {
	Resolve(ctx context.Context, id int64) (*domain.User, error)
}

// Auth gates JSON endpoints. It validates the session token, resolves
// the user from the store and puts user_id/username into the context.
func Auth(jwt *jwtsvc.Service, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveRequestUser(c, jwt, users)
		if !ok {
			return
		}
		c.Set("user_id", user.ID)
		c.Set("username", user.Username)
		c.Next()
	}
}

// PageAuth gates page endpoints: an unauthenticated request is sent to
// the login page instead of getting a JSON 401.
func PageAuth(jwt *jwtsvc.Service, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := tokenClaims(c, jwt)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		user, err := users.Resolve(c.Request.Context(), claims.UserID)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set("user_id", user.ID)
		c.Set("username", user.Username)
		c.Next()
	}
}

func resolveRequestUser(c *gin.Context, jwt *jwtsvc.Service, users UserResolver) (*domain.User, bool) {
	claims, err := tokenClaims(c, jwt)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil, false
	}

	user, err := users.Resolve(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, auth.ErrStoreUnavailable) {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "Unable to connect to the database. Please try again later.",
			})
			return nil, false
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil, false
	}

	return user, true
}

func tokenClaims(c *gin.Context, jwt *jwtsvc.Service) (*jwtsvc.Claims, error) {
	token := bearerToken(c)
	if token == "" {
		var err error
		token, err = c.Cookie(auth.SessionCookie)
		if err != nil || token == "" {
			return nil, errors.New("missing session token")
		}
	}
	return jwt.ValidateToken(token)
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}
