package mailer

import (
	"github.com/adilhusain01/aadil-rasheed-server/internal/api/config"

	"gopkg.in/gomail.v2"
)

// Mailer sends notification mail over SMTP. Callers treat sends as
// fire-and-forget; failures are logged by the caller and never surfaced
// to HTTP clients.
type Mailer struct{}

func NewMailer() *Mailer {
	return &Mailer{}
}

// Send delivers a single HTML message.
func (Mailer) Send(to, subject, htmlBody string) error {
	cfg := config.Cfg.Mail

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return d.DialAndSend(m)
}
