package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Warble/pkg/context"
	"Warble/pkg/jwt"

	"github.com/gin-gonic/gin"
)

var testSecret = []byte("test-secret")

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", Auth(testSecret), func(c *gin.Context) {
		uid, _ := context.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": uid})
	})
	r.GET("/open", Optional(testSecret), func(c *gin.Context) {
		if uid, err := context.GetUserID(c); err == nil {
			c.JSON(http.StatusOK, gin.H{"user_id": uid})
			return
		}
		c.JSON(http.StatusOK, gin.H{"anon": true})
	})
	return r
}

func TestAuthRequiresToken(t *testing.T) {
	r := newAuthRouter()

	cases := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"malformed", "token-without-scheme"},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", tc.name, w.Code)
		}
	}
}

func TestAuthValidToken(t *testing.T) {
	r := newAuthRouter()

	token, err := jwt.GenerateToken(testSecret, 42, "access", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body = %s", w.Code, w.Body.String())
	}
}

func TestAuthExpiredToken(t *testing.T) {
	r := newAuthRouter()

	token, _ := jwt.GenerateToken(testSecret, 42, "access", -time.Minute)
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

// 临期令牌在响应头下发新令牌
func TestAuthRefreshNearExpiry(t *testing.T) {
	r := newAuthRouter()

	token, _ := jwt.GenerateToken(testSecret, 42, "access", time.Minute)
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Header().Get("X-New-Access-Token") == "" {
		t.Fatal("expected refreshed token header")
	}
}

func TestOptionalAllowsAnonymous(t *testing.T) {
	r := newAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	token, _ := jwt.GenerateToken(testSecret, 7, "access", time.Hour)
	req = httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
