package service

import (
	"fmt"
	"html"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/config"
	"github.com/adilhusain01/aadil-rasheed-server/internal/model"
)

func operatorAddress() string {
	if config.Cfg.Mail.To != "" {
		return config.Cfg.Mail.To
	}
	return config.Cfg.Mail.From
}

func contactSubject(contact *model.Contact) string {
	return fmt.Sprintf("New contact form message from %s %s", contact.FirstName, contact.LastName)
}

func contactBody(contact *model.Contact) string {
	return fmt.Sprintf(`<h2>New contact form message</h2>
<p><strong>Name:</strong> %s %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		html.EscapeString(contact.FirstName),
		html.EscapeString(contact.LastName),
		html.EscapeString(contact.Email),
		html.EscapeString(contact.Message),
	)
}

func welcomeSubject() string {
	return "Welcome to the mailing list"
}

func welcomeBody(sub *model.Subscription) string {
	return fmt.Sprintf(`<h2>Welcome, %s!</h2>
<p>Thank you for subscribing. You will now receive updates whenever a new
post is published.</p>
<p>If this wasn't you, you can unsubscribe at any time.</p>`,
		html.EscapeString(sub.FirstName),
	)
}
