package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"swapi/config"
	"swapi/internal/database"
	"swapi/internal/metrics"
	"swapi/internal/models"
	"swapi/internal/testdb"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	db := testdb.New(t)
	f, err := database.LoadFixtures("")
	require.NoError(t, err)
	_, err = database.Seed(db, f)
	require.NoError(t, err)
	testdb.Insert(t, db, &models.User{ID: 7, Name: "Han", LastName: "Solo", Email: "han@falcon.io", Password: "x", IsActive: true})

	cfg := config.Defaults()
	return Setup(cfg, db, nil)
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHello(t *testing.T) {
	r := newEngine(t)
	w := do(t, r, http.MethodGet, "/user", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"msg":"Hello, this is your GET /user response "}`, w.Body.String())
}

func TestPeople(t *testing.T) {
	r := newEngine(t)

	w := do(t, r, http.MethodGet, "/people", "")
	require.Equal(t, http.StatusOK, w.Code)
	people := decode[[]map[string]any](t, w)
	require.Len(t, people, 5)

	for _, p := range people {
		id := int(p["id"].(float64))
		w := do(t, r, http.MethodGet, fmt.Sprintf("/people/%d", id), "")
		require.Equal(t, http.StatusOK, w.Code)
		one := decode[map[string]any](t, w)
		assert.Equal(t, p, one)
		for _, key := range []string{"id", "birth_year", "eye_color", "gender", "hair_color", "height", "mass", "name", "skin_color"} {
			assert.Contains(t, one, key)
		}
	}
}

func TestGetByID_Errors(t *testing.T) {
	r := newEngine(t)
	tests := []struct {
		path string
		code int
	}{
		{"/people/9999", http.StatusNotFound},
		{"/people/0", http.StatusNotFound},
		{"/planets/0", http.StatusNotFound},
		{"/planets/9999", http.StatusNotFound},
		{"/vehicles/5", http.StatusNotFound},
		{"/people/abc", http.StatusBadRequest},
		{"/planets/-1", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(t, r, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.code, w.Code)
			body := decode[map[string]string](t, w)
			assert.NotEmpty(t, body["msj"])
		})
	}
}

func TestPlanetsAndVehicles(t *testing.T) {
	r := newEngine(t)

	w := do(t, r, http.MethodGet, "/planets/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Tatooine", decode[map[string]any](t, w)["name"])

	w = do(t, r, http.MethodGet, "/vehicles", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 3)

	w = do(t, r, http.MethodGet, "/vehicles/4", "")
	require.Equal(t, http.StatusOK, w.Code)
	v := decode[map[string]any](t, w)
	assert.Equal(t, "Sand Crawler", v["name"])
	assert.Contains(t, v, "vehicle_class")
}

func TestUsers_NoPassword(t *testing.T) {
	r := newEngine(t)
	w := do(t, r, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	users := decode[[]map[string]any](t, w)
	require.Len(t, users, 3)
	for _, u := range users {
		assert.NotContains(t, u, "password")
	}
}

func TestFavorite_CreateAndList(t *testing.T) {
	r := newEngine(t)

	w := do(t, r, http.MethodPost, "/favorite/people/2", `{"user_id": 7}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	fav := decode[map[string]any](t, w)
	assert.EqualValues(t, 2, fav["character_id"])
	assert.EqualValues(t, 7, fav["user_id"])
	assert.Nil(t, fav["planet_id"])
	assert.Nil(t, fav["vehicle_id"])

	w = do(t, r, http.MethodGet, "/users/favorites", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]map[string]any](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, fav["id"], list[0]["id"])

	// a second identical request returns the stored row
	w = do(t, r, http.MethodPost, "/favorite/people/2", `{"user_id": 7}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, fav["id"], decode[map[string]any](t, w)["id"])
}

func TestFavorite_CreateErrors(t *testing.T) {
	r := newEngine(t)
	tests := []struct {
		name string
		path string
		body string
		code int
	}{
		{"unknown character", "/favorite/people/9999", `{"user_id": 7}`, http.StatusNotFound},
		{"unknown planet", "/favorite/planet/9999", `{"user_id": 7}`, http.StatusNotFound},
		{"unknown vehicle", "/favorite/vehicle/5", `{"user_id": 7}`, http.StatusNotFound},
		{"unknown user", "/favorite/planet/1", `{"user_id": 99}`, http.StatusNotFound},
		{"zero character id", "/favorite/people/0", `{"user_id": 7}`, http.StatusNotFound},
		{"zero planet id", "/favorite/planet/0", `{"user_id": 7}`, http.StatusNotFound},
		{"missing user_id", "/favorite/planet/1", `{}`, http.StatusBadRequest},
		{"zero user_id", "/favorite/planet/1", `{"user_id": 0}`, http.StatusBadRequest},
		{"empty body", "/favorite/planet/1", "", http.StatusBadRequest},
		{"malformed id", "/favorite/planet/x", `{"user_id": 7}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.code, w.Code)
			assert.NotEmpty(t, decode[map[string]string](t, w)["msj"])
		})
	}
}

func TestFavorite_CreateWrongType(t *testing.T) {
	r := newEngine(t)
	for _, body := range []string{`{"user_id": "7"}`, `{"user_id": -1}`, `{"user_id": 1.5}`} {
		w := do(t, r, http.MethodPost, "/favorite/people/1", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "user_id must be a positive integer", decode[map[string]string](t, w)["msj"], body)
	}

	w := do(t, r, http.MethodDelete, "/favorite/people/1", `{"people_id": "7"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "people_id must be a positive integer", decode[map[string]string](t, w)["msj"])

	w = do(t, r, http.MethodPost, "/favorite/people/1", `{"user_id": 7`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFavorite_DeleteOtherUser(t *testing.T) {
	r := newEngine(t)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/favorite/people/1", `{"user_id": 7}`).Code)

	w := do(t, r, http.MethodDelete, "/favorite/people/1", `{"user_id": 1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	list := decode[[]map[string]any](t, do(t, r, http.MethodGet, "/users/favorites", ""))
	require.Len(t, list, 1)
	assert.EqualValues(t, 7, list[0]["user_id"])
	assert.EqualValues(t, 1, list[0]["character_id"])
}

func TestFavorite_Delete(t *testing.T) {
	r := newEngine(t)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/favorite/planet/1", `{"user_id": 7}`).Code)

	w := do(t, r, http.MethodDelete, "/favorite/planet/1", `{"user_id": 7}`)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(t, r, http.MethodGet, "/users/favorites", "")
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(t, r, http.MethodDelete, "/favorite/planet/1", `{"user_id": 7}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodDelete, "/favorite/planet/1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodDelete, "/favorite/planet/1", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFavorite_DeleteLegacyFields(t *testing.T) {
	r := newEngine(t)
	tests := []struct {
		kind, body string
		id         int
	}{
		{"people", `{"people_id": 7}`, 1},
		{"planet", `{"planet_id": 7}`, 2},
		{"vehicle", `{"vehicle_id": 7}`, 6},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			path := fmt.Sprintf("/favorite/%s/%d", tt.kind, tt.id)
			require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, path, `{"user_id": 7}`).Code)
			assert.Equal(t, http.StatusNoContent, do(t, r, http.MethodDelete, path, tt.body).Code)
		})
	}

	// a legacy field of another kind does not stand in for user_id
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/favorite/planet/3", `{"user_id": 7}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodDelete, "/favorite/planet/3", `{"people_id": 7}`).Code)
}

func TestFavorite_RoundTripRepeatable(t *testing.T) {
	r := newEngine(t)
	for i := 0; i < 3; i++ {
		w := do(t, r, http.MethodPost, "/favorite/vehicle/7", `{"user_id": 1}`)
		require.Equal(t, http.StatusCreated, w.Code, "iteration %d", i)

		list := decode[[]map[string]any](t, do(t, r, http.MethodGet, "/users/favorites", ""))
		require.Len(t, list, 1)
		assert.EqualValues(t, 7, list[0]["vehicle_id"])

		require.Equal(t, http.StatusNoContent, do(t, r, http.MethodDelete, "/favorite/vehicle/7", `{"user_id": 1}`).Code)
		assert.JSONEq(t, `[]`, do(t, r, http.MethodGet, "/users/favorites", "").Body.String())
	}
}

func TestFavorites_FilterByUser(t *testing.T) {
	r := newEngine(t)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/favorite/people/1", `{"user_id": 1}`).Code)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/favorite/people/1", `{"user_id": 7}`).Code)

	list := decode[[]map[string]any](t, do(t, r, http.MethodGet, "/users/favorites?user_id=7", ""))
	require.Len(t, list, 1)
	assert.EqualValues(t, 7, list[0]["user_id"])

	w := do(t, r, http.MethodGet, "/users/favorites?user_id=han", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSitemapHealthAndMetrics(t *testing.T) {
	r := newEngine(t)

	w := do(t, r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
	assert.Contains(t, w.Body.String(), `href="/people"`)
	assert.Contains(t, w.Body.String(), "DELETE /favorite/planet/:id")

	w = do(t, r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "swapi_http_requests_total")
}

func TestNoRouteAndCORS(t *testing.T) {
	r := newEngine(t)

	w := do(t, r, http.MethodGet, "/starships", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msj":"not found"}`, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/people", nil)
	req.Header.Set("Origin", "http://frontend.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRateLimit(t *testing.T) {
	db := testdb.New(t)
	cfg := config.Defaults()
	cfg.Security.RateLimitRequests = 2
	limiter := NewRateLimiter(&cfg.Security)
	require.NotNil(t, limiter)
	t.Cleanup(limiter.Close)
	r := Setup(cfg, db, limiter)

	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/user", "").Code)
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/user", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, r, http.MethodGet, "/user", "").Code)
}

func TestNewRateLimiter_Disabled(t *testing.T) {
	cfg := config.Defaults()
	cfg.Security.RateLimitRequests = 0
	limiter := NewRateLimiter(&cfg.Security)
	assert.Nil(t, limiter)
	limiter.Close()
}

func TestPanic_LoggedAndCounted(t *testing.T) {
	r := newEngine(t)
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	counter := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/boom", "500")
	before := testutil.ToFloat64(counter)

	w := do(t, r, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"msj":"internal server error"}`, w.Body.String())
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestSitemap_EscapesHost(t *testing.T) {
	r := newEngine(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = `<script>alert(1)</script>`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<script>")
	assert.Contains(t, w.Body.String(), "&lt;script&gt;")
}
