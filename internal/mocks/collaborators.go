package mocks

import (
	"context"
	"io"
	"sync"
)

// MockBotVerifier returns a fixed verdict and records the tokens it saw.
type MockBotVerifier struct {
	mu     sync.Mutex
	Allow  bool
	Tokens []string
}

func NewMockBotVerifier(allow bool) *MockBotVerifier {
	return &MockBotVerifier{Allow: allow}
}

func (m *MockBotVerifier) Verify(ctx context.Context, token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Tokens = append(m.Tokens, token)
	return m.Allow
}

// MockMailSender records sent mail.
type MockMailSender struct {
	mu      sync.Mutex
	SendErr error
	Sent    []SentMail
}

type SentMail struct {
	To      string
	Subject string
	Body    string
}

func NewMockMailSender() *MockMailSender {
	return &MockMailSender{}
}

func (m *MockMailSender) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SendErr != nil {
		return m.SendErr
	}
	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func (m *MockMailSender) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}

// MockObjectStore keeps objects in memory.
type MockObjectStore struct {
	mu        sync.Mutex
	Objects   map[string][]byte
	UploadErr error
	RemoveErr error
}

func NewMockObjectStore() *MockObjectStore {
	return &MockObjectStore{Objects: make(map[string][]byte)}
}

func (m *MockObjectStore) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UploadErr != nil {
		return "", m.UploadErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	m.Objects[objectName] = data
	return objectName, nil
}

func (m *MockObjectStore) Remove(ctx context.Context, objectName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	delete(m.Objects, objectName)
	return nil
}

func (m *MockObjectStore) PublicURL(objectName string) string {
	return "http://store.local/" + objectName
}
