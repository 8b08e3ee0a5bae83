package response_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/config"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/response"
	"github.com/adilhusain01/aadil-rasheed-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func responseTestConfig(t *testing.T, mode string) {
	t.Helper()
	prev := config.Cfg
	config.Cfg = &config.Config{Server: config.ServerConfig{Mode: mode}}
	t.Cleanup(func() { config.Cfg = prev })
}

func runError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	response.Error(c, err)

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	return w, body
}

func TestError_SentinelMapping(t *testing.T) {
	responseTestConfig(t, "development")

	cases := []struct {
		err    error
		status int
	}{
		{service.ErrNotAuthenticated, http.StatusUnauthorized},
		{service.ErrTokenInvalid, http.StatusUnauthorized},
		{service.ErrForbidden, http.StatusForbidden},
		{service.ErrPostNotFound, http.StatusNotFound},
		{service.ErrBotCheckFailed, http.StatusBadRequest},
		{service.ErrEmailSubscribed, http.StatusBadRequest},
	}
	for _, tc := range cases {
		w, body := runError(t, tc.err)
		if w.Code != tc.status {
			t.Errorf("%v: status %d, want %d", tc.err, w.Code, tc.status)
		}
		if body["success"] != false {
			t.Errorf("%v: success flag not false", tc.err)
		}
		if body["error"] != tc.err.Error() {
			t.Errorf("%v: error message %q", tc.err, body["error"])
		}
	}
}

func TestError_GormTranslation(t *testing.T) {
	responseTestConfig(t, "development")

	w, body := runError(t, gorm.ErrDuplicatedKey)
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate key: status %d", w.Code)
	}
	if body["error"] != service.ErrDuplicateKey.Error() {
		t.Errorf("duplicate key message %q", body["error"])
	}

	w, body = runError(t, gorm.ErrRecordNotFound)
	if w.Code != http.StatusNotFound {
		t.Errorf("record not found: status %d", w.Code)
	}
	if body["error"] != service.ErrResourceNotFound.Error() {
		t.Errorf("record not found message %q", body["error"])
	}
}

func TestError_MalformedJSON(t *testing.T) {
	responseTestConfig(t, "development")

	var target struct {
		Name string `json:"name"`
	}
	err := json.Unmarshal([]byte(`{"name":`), &target)
	if err == nil {
		t.Fatal("expected a syntax error")
	}

	w, body := runError(t, err)
	if w.Code != http.StatusBadRequest {
		t.Errorf("syntax error: status %d", w.Code)
	}
	if body["error"] != service.ErrMalformedBody.Error() {
		t.Errorf("syntax error message %q", body["error"])
	}
}

func TestError_UnknownError(t *testing.T) {
	responseTestConfig(t, "development")
	w, body := runError(t, errDatabaseDown)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("unknown error: status %d", w.Code)
	}
	if !strings.Contains(body["error"].(string), "database down") {
		t.Errorf("development mode should expose detail, got %q", body["error"])
	}
}

func TestError_ProductionHidesDetail(t *testing.T) {
	responseTestConfig(t, "production")
	w, body := runError(t, errDatabaseDown)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("unknown error: status %d", w.Code)
	}
	if body["error"] != service.ErrInternal.Error() {
		t.Errorf("production must hide detail, got %q", body["error"])
	}
}

var errDatabaseDown = errTest("database down")

type errTest string

func (e errTest) Error() string { return string(e) }
