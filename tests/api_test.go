package tests

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"newsandniche/config"
	"newsandniche/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newRouter() *gin.Engine {
	return routes.SetupRouter(config.LoadConfig())
}

func postJSON(r *gin.Engine, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	jsonBody, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBlogRequiresAuth(t *testing.T) {
	r := newRouter()
	w := postJSON(r, "/api/blogs", map[string]any{"title": map[string]string{"en": "x"}}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization")
}

func TestCreateBlogRejectsGarbageToken(t *testing.T) {
	r := newRouter()
	w := postJSON(r, "/api/blogs", map[string]any{}, map[string]string{"Authorization": "Bearer not-a-jwt"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestUpdateBlogRequiresAuth(t *testing.T) {
	r := newRouter()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/blogs/1", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBulkDeleteRequiresAuth(t *testing.T) {
	r := newRouter()
	w := postJSON(r, "/api/blogs/bulk-delete", map[string]any{"ids": []uint{1, 2}}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminStatsRequiresAuth(t *testing.T) {
	r := newRouter()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/admin/stats", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNewsletterSubscribeValidatesEmail(t *testing.T) {
	r := newRouter()

	w := postJSON(r, "/api/newsletter/subscribe", map[string]string{"email": "not-an-email"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "valid email")

	w = postJSON(r, "/api/newsletter/subscribe", map[string]string{}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGuestPostValidatesRequiredFields(t *testing.T) {
	r := newRouter()
	w := postJSON(r, "/api/guest-posts", map[string]string{"name": "A"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "required")
}

func TestAuthLoginValidatesBody(t *testing.T) {
	r := newRouter()
	w := postJSON(r, "/api/auth/login", map[string]string{"email": "a@b.c"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request")
}

func TestResponseEnvelopeShape(t *testing.T) {
	r := newRouter()
	w := postJSON(r, "/api/blogs", nil, nil)

	var envelope struct {
		Success bool        `json:"success"`
		Result  interface{} `json:"result"`
		Error   string      `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.NotEmpty(t, envelope.Error)
}
