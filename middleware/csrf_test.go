package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	ctxutil "Warble/pkg/context"

	"github.com/gin-gonic/gin"
)

// fixedVerifier 只认一个令牌，记录是否被调用
type fixedVerifier struct {
	token  string
	called bool
}

func (v *fixedVerifier) Verify(_ context.Context, _ int64, token string) bool {
	v.called = true
	return token != "" && token == v.token
}

func newCsrfRouter(v CsrfVerifier, uid int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	identity := func(c *gin.Context) {
		if uid != 0 {
			c.Set(ctxutil.CtxUserID, uid)
		}
	}
	r.POST("/mutate", identity, CSRF(v), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestCSRFRejectsMissingOrWrongToken(t *testing.T) {
	cases := []struct {
		name  string
		token string
	}{
		{"missing", ""},
		{"wrong", "not-the-token"},
	}
	for _, tc := range cases {
		v := &fixedVerifier{token: "good-token"}
		r := newCsrfRouter(v, 42)

		req := httptest.NewRequest(http.MethodPost, "/mutate", nil)
		if tc.token != "" {
			req.Header.Set(CsrfHeader, tc.token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", tc.name, w.Code)
		}
	}
}

func TestCSRFAcceptsValidToken(t *testing.T) {
	v := &fixedVerifier{token: "good-token"}
	r := newCsrfRouter(v, 42)

	req := httptest.NewRequest(http.MethodPost, "/mutate", nil)
	req.Header.Set(CsrfHeader, "good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body = %s", w.Code, w.Body.String())
	}
}

// 表单字段 csrf_token 是请求头之外的第二条提交路径
func TestCSRFAcceptsFormToken(t *testing.T) {
	v := &fixedVerifier{token: "good-token"}
	r := newCsrfRouter(v, 42)

	form := url.Values{"csrf_token": {"good-token"}}
	req := httptest.NewRequest(http.MethodPost, "/mutate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body = %s", w.Code, w.Body.String())
	}
}

// 没有身份时不询问存储，直接 401
func TestCSRFRequiresIdentity(t *testing.T) {
	v := &fixedVerifier{token: "good-token"}
	r := newCsrfRouter(v, 0)

	req := httptest.NewRequest(http.MethodPost, "/mutate", nil)
	req.Header.Set(CsrfHeader, "good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if v.called {
		t.Fatal("verifier consulted before identity was resolved")
	}
}
