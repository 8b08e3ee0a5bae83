package service

import (
	"context"
	"io"
)

// BotVerifier is the outbound bot-check collaborator. Verification
// failure is terminal for the calling request; there is no retry.
type BotVerifier interface {
	Verify(ctx context.Context, token string) bool
}

// MailSender is the outbound mail collaborator. Send failures are
// logged and swallowed, never surfaced to HTTP callers.
type MailSender interface {
	Send(to, subject, htmlBody string) error
}

// ObjectStore is the remote object storage collaborator. It is
// authoritative for media bytes; the database is authoritative for
// metadata.
type ObjectStore interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, objectName string) error
	PublicURL(objectName string) string
}
