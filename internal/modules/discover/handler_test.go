package discover

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"tripmark/internal/gateway/mistral"
)

type fakeGenerator struct {
	states mistral.StatesResult
	places mistral.PlacesResult

	gotState    string
	gotCategory string
}

func (f *fakeGenerator) ListStates(ctx context.Context) mistral.StatesResult {
	return f.states
}

func (f *fakeGenerator) ListPlaces(ctx context.Context, state, category string) mistral.PlacesResult {
	f.gotState = state
	f.gotCategory = category
	return f.places
}

func newRouter(gen Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	NewHandler(gen).RegisterRoutes(api)
	return r
}

func TestStates_Success(t *testing.T) {
	gen := &fakeGenerator{states: mistral.StatesResult{States: []string{"Alabama", "Alaska"}}}
	r := newRouter(gen)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/states", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"states":["Alabama","Alaska"]}`, w.Body.String())
}

func TestStates_DegradedIsAnAPIError(t *testing.T) {
	gen := &fakeGenerator{states: mistral.StatesResult{States: []string{}, Degraded: true}}
	r := newRouter(gen)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/states", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to fetch states")
}

func TestSearch_Success(t *testing.T) {
	gen := &fakeGenerator{places: mistral.PlacesResult{Places: []mistral.Place{
		{Name: "Yosemite", Category: "Parks"},
	}}}
	r := newRouter(gen)

	body := strings.NewReader(`{"state":"California","category":"parks"}`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/search", body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"places":[{"name":"Yosemite","category":"Parks"}]}`, w.Body.String())
	assert.Equal(t, "California", gen.gotState)
	assert.Equal(t, "parks", gen.gotCategory)
}

func TestSearch_MissingState(t *testing.T) {
	r := newRouter(&fakeGenerator{})

	for _, body := range []string{`{}`, `{"state":"  "}`, `{"category":"parks"}`} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		assert.Contains(t, w.Body.String(), "State name is required")
	}
}

func TestSearch_DefaultsCategoryToAll(t *testing.T) {
	gen := &fakeGenerator{places: mistral.PlacesResult{Places: []mistral.Place{}}}
	r := newRouter(gen)

	body := strings.NewReader(`{"state":"Texas"}`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/search", body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "all", gen.gotCategory)
}

func TestSearch_DegradedIsEmptyList(t *testing.T) {
	gen := &fakeGenerator{places: mistral.PlacesResult{Places: []mistral.Place{}, Degraded: true}}
	r := newRouter(gen)

	body := strings.NewReader(`{"state":"Texas","category":"parks"}`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/search", body))

	// Degradation is not an error to API clients, just an empty result.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"places":[]}`, w.Body.String())
}
