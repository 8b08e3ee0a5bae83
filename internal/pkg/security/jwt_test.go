package security_test

import (
	"strings"
	"testing"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/config"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/security"
)

func jwtTestConfig(t *testing.T, expire string) {
	t.Helper()
	prev := config.Cfg
	config.Cfg = &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", Expire: expire},
	}
	t.Cleanup(func() { config.Cfg = prev })
}

func TestExpireDays(t *testing.T) {
	cases := []struct {
		expire string
		want   int
	}{
		{"30d", 30},
		{"7d", 7},
		{"14", 14},
		{"", security.DefaultExpireDays},
		{"soon", security.DefaultExpireDays},
		{"-1d", security.DefaultExpireDays},
	}
	for _, tc := range cases {
		jwtTestConfig(t, tc.expire)
		if got := security.ExpireDays(); got != tc.want {
			t.Errorf("ExpireDays(%q) = %d, want %d", tc.expire, got, tc.want)
		}
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	jwtTestConfig(t, "30d")

	token, err := security.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := security.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	jwtTestConfig(t, "30d")
	token, err := security.GenerateToken(1)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	config.Cfg.JWT.Secret = "other-secret"
	if _, err = security.ValidateToken(token); err == nil {
		t.Fatal("token signed with a different secret must not validate")
	}
}

func TestExtractSignature(t *testing.T) {
	jwtTestConfig(t, "30d")
	token, err := security.GenerateToken(1)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	sig, err := security.ExtractSignature(token)
	if err != nil {
		t.Fatalf("ExtractSignature failed: %v", err)
	}
	if !strings.HasSuffix(token, "."+sig) {
		t.Error("signature is not the final token segment")
	}

	if _, err = security.ExtractSignature("not-a-token"); err == nil {
		t.Error("malformed token must be rejected")
	}
}
