package recaptcha_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/config"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/consts"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/recaptcha"
)

func recaptchaTestConfig(t *testing.T, mode, verifyURL string) {
	t.Helper()
	prev := config.Cfg
	config.Cfg = &config.Config{
		Server:    config.ServerConfig{Mode: mode},
		Recaptcha: config.RecaptchaConfig{Secret: "s", VerifyURL: verifyURL},
	}
	t.Cleanup(func() { config.Cfg = prev })
}

func TestVerify_EmptyToken(t *testing.T) {
	recaptchaTestConfig(t, "development", "http://127.0.0.1:1") // unreachable on purpose
	client := recaptcha.NewClient()
	if client.Verify(context.Background(), "") {
		t.Error("empty token must fail without a remote call")
	}
}

func TestVerify_TestTokenOutsideProduction(t *testing.T) {
	recaptchaTestConfig(t, "development", "http://127.0.0.1:1")
	client := recaptcha.NewClient()
	if !client.Verify(context.Background(), consts.RecaptchaTestToken) {
		t.Error("test token must pass outside production")
	}
}

func TestVerify_TestTokenRejectedInProduction(t *testing.T) {
	// In production the test token goes to the remote endpoint like any
	// other; here that endpoint says no.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	recaptchaTestConfig(t, "production", srv.URL)
	client := recaptcha.NewClient()
	if client.Verify(context.Background(), consts.RecaptchaTestToken) {
		t.Error("test token must not short-circuit in production")
	}
}

func TestVerify_RemoteVerdicts(t *testing.T) {
	var gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		gotToken = r.PostFormValue("response")
		w.Header().Set("Content-Type", "application/json")
		if gotToken == "good" {
			_, _ = w.Write([]byte(`{"success":true}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	recaptchaTestConfig(t, "development", srv.URL)
	client := recaptcha.NewClient()

	if !client.Verify(context.Background(), "good") {
		t.Error("remote success must verify")
	}
	if client.Verify(context.Background(), "bad") {
		t.Error("remote failure must not verify")
	}
	if gotToken != "bad" {
		t.Errorf("token not forwarded, got %q", gotToken)
	}
}

func TestVerify_TransportFailure(t *testing.T) {
	recaptchaTestConfig(t, "development", "http://127.0.0.1:1")
	client := recaptcha.NewClient()
	if client.Verify(context.Background(), "anything") {
		t.Error("transport failure must fail closed")
	}
}
