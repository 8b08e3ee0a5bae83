package recaptcha

import (
	"context"
	log "log/slog"
	"time"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/config"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/consts"

	"github.com/go-resty/resty/v2"
)

const defaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

type verifyResponse struct {
	Success bool `json:"success"`
}

// Client verifies reCAPTCHA tokens against Google's siteverify endpoint.
type Client struct {
	http *resty.Client
}

func NewClient() *Client {
	return &Client{
		http: resty.New().SetTimeout(10 * time.Second),
	}
}

// Verify reports whether the token passes the bot check. An empty token
// is rejected without a remote call. Google's fixed test token is
// accepted outside production so automated tests can bypass the remote
// service. Any transport failure or non-success response counts as a
// failed check; there is no retry.
func (s *Client) Verify(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}

	if token == consts.RecaptchaTestToken && !config.IsProduction() {
		return true
	}

	verifyURL := config.Cfg.Recaptcha.VerifyURL
	if verifyURL == "" {
		verifyURL = defaultVerifyURL
	}

	var result verifyResponse
	resp, err := s.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"secret":   config.Cfg.Recaptcha.Secret,
			"response": token,
		}).
		SetResult(&result).
		Post(verifyURL)
	if err != nil {
		log.ErrorContext(ctx, "recaptcha verification request failed", "err", err)
		return false
	}
	if resp.IsError() {
		log.WarnContext(ctx, "recaptcha verification rejected", "status", resp.StatusCode())
		return false
	}

	return result.Success
}
