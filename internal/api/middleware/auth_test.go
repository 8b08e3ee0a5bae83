package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/middleware"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/consts"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func contextWithRequest(req *http.Request) *gin.Context {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c
}

func TestExtractToken_Precedence(t *testing.T) {
	// All three sources present: the bearer header wins.
	req := httptest.NewRequest(http.MethodGet, "/?token=query-token", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: consts.AuthCookieName, Value: "cookie-token"})
	if got := middleware.ExtractToken(contextWithRequest(req)); got != "header-token" {
		t.Errorf("expected header token, got %q", got)
	}

	// No header: the cookie wins over the query param.
	req = httptest.NewRequest(http.MethodGet, "/?token=query-token", nil)
	req.AddCookie(&http.Cookie{Name: consts.AuthCookieName, Value: "cookie-token"})
	if got := middleware.ExtractToken(contextWithRequest(req)); got != "cookie-token" {
		t.Errorf("expected cookie token, got %q", got)
	}

	// Query param is the last resort.
	req = httptest.NewRequest(http.MethodGet, "/?token=query-token", nil)
	if got := middleware.ExtractToken(contextWithRequest(req)); got != "query-token" {
		t.Errorf("expected query token, got %q", got)
	}

	// Nothing present.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	if got := middleware.ExtractToken(contextWithRequest(req)); got != "" {
		t.Errorf("expected empty token, got %q", got)
	}
}

func TestExtractToken_IgnoresNonBearerHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	req.AddCookie(&http.Cookie{Name: consts.AuthCookieName, Value: "cookie-token"})
	if got := middleware.ExtractToken(contextWithRequest(req)); got != "cookie-token" {
		t.Errorf("non-bearer header must be skipped, got %q", got)
	}
}
