package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct{ valid map[string]*model.Employee }

func (s stubVerifier) Verify(_ context.Context, token string) (*model.Employee, error) {
	if e, ok := s.valid[token]; ok {
		return e, nil
	}
	return nil, errors.New("invalid")
}

func gatedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v := stubVerifier{valid: map[string]*model.Employee{"good": {ID: 7, CPF: "12345678901"}}}
	r.POST("/gated", RequireAuth(v), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentEmployee(c).ID})
	})
	return r
}

func doGated(t *testing.T, header string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/gated", nil)
	require.NoError(t, err)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	gatedRouter().ServeHTTP(w, req)
	return w
}

func TestRequireAuth_Accepts(t *testing.T) {
	w := doGated(t, "Bearer good")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7}`, w.Body.String())
}

func TestRequireAuth_Rejects(t *testing.T) {
	for name, header := range map[string]string{
		"missing":      "",
		"wrong scheme": "Basic good",
		"empty token":  "Bearer ",
		"bad token":    "Bearer bad",
	} {
		t.Run(name, func(t *testing.T) {
			w := doGated(t, header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Não autorizado", body["error"])
		})
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	w = httptest.NewRecorder()
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	r.GET("/", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Internal Server Error"}`, w.Body.String())
}

func TestRateLimiter_Memory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limit, err := RateLimiter("test", "2-M", nil)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/", limit, func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 3)
	for i := range codes {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		r.ServeHTTP(w, req)
		codes[i] = w.Code
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	_, err = RateLimiter("bad", "lots", nil)
	assert.Error(t, err)
}
