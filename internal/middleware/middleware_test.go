package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/dental-clinic/internal/audit"
	"github.com/BruksfildServices01/dental-clinic/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const secret = "test-secret"

func newAuthRouter(cfg *config.Config, seen *audit.Actor) *gin.Engine {
	log, _ := test.NewNullLogger()

	r := gin.New()
	r.Use(RequestLogger(log), AuthMiddleware(cfg))
	r.GET("/me", func(c *gin.Context) {
		*seen = audit.ActorFrom(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"id":   c.GetString(ContextUserID),
			"role": c.GetString(ContextUserRole),
		})
	})
	r.DELETE("/admin", RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: secret}
	var actor audit.Actor
	r := newAuthRouter(cfg, &actor)

	token, err := GenerateToken(secret, "", "user-1", "doc@clinic.example", "staff", time.Hour)
	require.NoError(t, err)

	w := do(r, http.MethodGet, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"user-1","role":"staff"}`, w.Body.String())
	assert.Equal(t, "user-1", actor.ID)
	assert.Equal(t, "doc@clinic.example", actor.Email)
	assert.NotEmpty(t, actor.RequestID)
	assert.Equal(t, actor.RequestID, w.Header().Get(HeaderRequestID))
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	cfg := &config.Config{JWTSecret: secret, JWTIssuer: "https://auth.clinic.example"}
	var actor audit.Actor
	r := newAuthRouter(cfg, &actor)

	wrongSecret, _ := GenerateToken("other", cfg.JWTIssuer, "u", "", "", time.Hour)
	expired, _ := GenerateToken(secret, cfg.JWTIssuer, "u", "", "", -time.Minute)
	wrongIssuer, _ := GenerateToken(secret, "someone-else", "u", "", "", time.Hour)
	noSubject, _ := GenerateToken(secret, cfg.JWTIssuer, "", "", "", time.Hour)

	tests := []struct {
		name  string
		token string
		code  string
	}{
		{"missing", "", "missing_authorization_header"},
		{"wrong secret", wrongSecret, "invalid_token"},
		{"expired", expired, "token_expired"},
		{"wrong issuer", wrongIssuer, "invalid_token"},
		{"no subject", noSubject, "invalid_token_payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodGet, "/me", tt.token)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	cfg := &config.Config{JWTSecret: secret}
	var actor audit.Actor
	r := newAuthRouter(cfg, &actor)

	staff, _ := GenerateToken(secret, "", "u1", "", "staff", time.Hour)
	admin, _ := GenerateToken(secret, "", "u2", "", "admin", time.Hour)

	assert.Equal(t, http.StatusForbidden, do(r, http.MethodDelete, "/admin", staff).Code)
	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/admin", admin).Code)
}

func TestClaims_EffectiveRole(t *testing.T) {
	c := Claims{Role: "authenticated", AppMetadata: AppMetadata{Role: "admin"}}
	assert.Equal(t, "admin", c.EffectiveRole())

	c = Claims{Role: "service_role", AppMetadata: AppMetadata{Role: "admin"}}
	assert.Equal(t, "service_role", c.EffectiveRole())

	c = Claims{Role: "authenticated"}
	assert.Equal(t, "authenticated", c.EffectiveRole())
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://clinic.example"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://clinic.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://clinic.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_AnyOriginWithoutCredentials(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware(nil))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRequestLogger_KeepsClientRequestID(t *testing.T) {
	log, hook := test.NewNullLogger()

	r := gin.New()
	r.Use(RequestLogger(log), Metrics())
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "req-123", hook.LastEntry().Data["request_id"])
	assert.Equal(t, "/boom", hook.LastEntry().Data["route"])
}
