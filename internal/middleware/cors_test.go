package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/barberia-cr/barberia-api/internal/config"
)

func corsRouter(origins ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CORSMiddleware(&config.Config{CORSAllowedOrigins: origins}))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func doCORS(r *gin.Engine, method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSAllowedOrigin(t *testing.T) {
	r := corsRouter("https://barberia.cr")

	w := doCORS(r, http.MethodGet, "https://barberia.cr")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://barberia.cr", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "Origin", w.Header().Get("Vary"))
}

func TestCORSDisallowedOrigin(t *testing.T) {
	r := corsRouter("https://barberia.cr")

	w := doCORS(r, http.MethodGet, "https://malicioso.example")

	// A requisição segue, mas sem cabeçalhos CORS o navegador bloqueia.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSEmptyListAllowsAnyOrigin(t *testing.T) {
	r := corsRouter()

	w := doCORS(r, http.MethodGet, "http://localhost:3000")
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	r := corsRouter("https://barberia.cr")

	w := doCORS(r, http.MethodOptions, "https://barberia.cr")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://barberia.cr", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestCORSNoOriginHeader(t *testing.T) {
	r := corsRouter("https://barberia.cr")

	w := doCORS(r, http.MethodGet, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
