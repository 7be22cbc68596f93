package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmark/internal/domain"
	"tripmark/internal/modules/auth"
	jwtsvc "tripmark/internal/pkg/jwt"
)

type stubResolver struct {
	user *domain.User
	err  error
}

func (s stubResolver) Resolve(ctx context.Context, id int64) (*domain.User, error) {
	return s.user, s.err
}

func newAuthRouter(jwt *jwtsvc.Service, users UserResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group("/api")
	api.Use(Auth(jwt, users))
	api.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetInt64("user_id"),
			"username": c.GetString("username"),
		})
	})

	pages := r.Group("/")
	pages.Use(PageAuth(jwt, users))
	pages.GET("/favorites", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}

func TestAuth_MissingToken(t *testing.T) {
	j := jwtsvc.New("secret", time.Hour)
	r := newAuthRouter(j, stubResolver{user: &domain.User{ID: 1}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/whoami", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized")
}

func TestAuth_InvalidToken(t *testing.T) {
	j := jwtsvc.New("secret", time.Hour)
	r := newAuthRouter(j, stubResolver{user: &domain.User{ID: 1}})

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_BearerToken(t *testing.T) {
	j := jwtsvc.New("secret", time.Hour)
	user := &domain.User{ID: 42, Username: "alice"}
	r := newAuthRouter(j, stubResolver{user: user})

	token, err := j.GenerateToken(user.ID, user.Username)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestAuth_SessionCookie(t *testing.T) {
	j := jwtsvc.New("secret", time.Hour)
	user := &domain.User{ID: 42, Username: "alice"}
	r := newAuthRouter(j, stubResolver{user: user})

	token, err := j.GenerateToken(user.ID, user.Username)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_StoreUnavailable(t *testing.T) {
	j := jwtsvc.New("secret", time.Hour)
	r := newAuthRouter(j, stubResolver{err: auth.ErrStoreUnavailable})

	token, err := j.GenerateToken(1, "alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestPageAuth_RedirectsToLogin(t *testing.T) {
	j := jwtsvc.New("secret", time.Hour)
	r := newAuthRouter(j, stubResolver{user: &domain.User{ID: 1}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/favorites", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestPageAuth_AllowsSession(t *testing.T) {
	j := jwtsvc.New("secret", time.Hour)
	user := &domain.User{ID: 7, Username: "alice"}
	r := newAuthRouter(j, stubResolver{user: user})

	token, err := j.GenerateToken(user.ID, user.Username)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	expired := jwtsvc.New("secret", -time.Minute)
	r := newAuthRouter(jwtsvc.New("secret", time.Hour), stubResolver{user: &domain.User{ID: 1}})

	token, err := expired.GenerateToken(1, "alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
