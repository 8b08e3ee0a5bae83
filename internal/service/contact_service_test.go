package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/config"
	"github.com/adilhusain01/aadil-rasheed-server/internal/api/dto"
	"github.com/adilhusain01/aadil-rasheed-server/internal/mocks"
	"github.com/adilhusain01/aadil-rasheed-server/internal/service"
)

func contactTestConfig(t *testing.T) {
	t.Helper()
	prev := config.Cfg
	config.Cfg = &config.Config{
		Mail: config.MailConfig{From: "noreply@example.com", To: "owner@example.com"},
	}
	t.Cleanup(func() { config.Cfg = prev })
}

func TestContactService_Create_NotifiesOperator(t *testing.T) {
	contactTestConfig(t)
	contactRepo := mocks.NewMockContactRepo()
	mailer := mocks.NewMockMailSender()
	svc := service.NewContactService(contactRepo, mocks.NewMockBotVerifier(true), mailer)

	contact, err := svc.Create(context.Background(), &dto.ContactCreateDTO{
		FirstName: "Ada", LastName: "L", Email: "ada@example.com", Message: "Hello", RecaptchaToken: "tok",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if contact.IsRead {
		t.Error("new message must start unread")
	}

	waitForMail(t, mailer, 1)
	if mailer.Sent[0].To != "owner@example.com" {
		t.Errorf("notification went to %q", mailer.Sent[0].To)
	}
}

func TestContactService_Create_MailSurvivesConfigSwap(t *testing.T) {
	contactTestConfig(t)
	contactRepo := mocks.NewMockContactRepo()
	mailer := mocks.NewMockMailSender()
	svc := service.NewContactService(contactRepo, mocks.NewMockBotVerifier(true), mailer)

	if _, err := svc.Create(context.Background(), &dto.ContactCreateDTO{
		FirstName: "Ada", LastName: "L", Email: "ada@example.com", Message: "Hello", RecaptchaToken: "tok",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// The recipient is resolved at submit time; tearing down the config
	// before the async send completes must not affect it.
	config.Cfg = nil

	waitForMail(t, mailer, 1)
	if mailer.Sent[0].To != "owner@example.com" {
		t.Errorf("notification went to %q", mailer.Sent[0].To)
	}
}

func TestContactService_Create_MailFailureIsSwallowed(t *testing.T) {
	contactTestConfig(t)
	contactRepo := mocks.NewMockContactRepo()
	mailer := mocks.NewMockMailSender()
	mailer.SendErr = errors.New("smtp down")
	svc := service.NewContactService(contactRepo, mocks.NewMockBotVerifier(true), mailer)

	if _, err := svc.Create(context.Background(), &dto.ContactCreateDTO{
		FirstName: "A", LastName: "B", Email: "a@example.com", Message: "m", RecaptchaToken: "tok",
	}); err != nil {
		t.Fatalf("mail outage must not fail the submission: %v", err)
	}
	if len(contactRepo.Contacts) != 1 {
		t.Error("message not persisted")
	}
}

func TestContactService_Create_BotCheck(t *testing.T) {
	contactTestConfig(t)
	contactRepo := mocks.NewMockContactRepo()
	svc := service.NewContactService(contactRepo, mocks.NewMockBotVerifier(false), mocks.NewMockMailSender())

	if _, err := svc.Create(context.Background(), &dto.ContactCreateDTO{
		FirstName: "A", LastName: "B", Email: "a@example.com", Message: "m",
	}); !errors.Is(err, service.ErrBotTokenMissing) {
		t.Fatalf("expected ErrBotTokenMissing, got %v", err)
	}
	if _, err := svc.Create(context.Background(), &dto.ContactCreateDTO{
		FirstName: "A", LastName: "B", Email: "a@example.com", Message: "m", RecaptchaToken: "bad",
	}); !errors.Is(err, service.ErrBotCheckFailed) {
		t.Fatalf("expected ErrBotCheckFailed, got %v", err)
	}
	if len(contactRepo.Contacts) != 0 {
		t.Error("failed bot checks must not persist")
	}
}

func TestContactService_ReadToggles(t *testing.T) {
	contactTestConfig(t)
	contactRepo := mocks.NewMockContactRepo()
	svc := service.NewContactService(contactRepo, mocks.NewMockBotVerifier(true), mocks.NewMockMailSender())

	created, err := svc.Create(context.Background(), &dto.ContactCreateDTO{
		FirstName: "A", LastName: "B", Email: "a@example.com", Message: "m", RecaptchaToken: "tok",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Fetching marks read.
	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !got.IsRead {
		t.Error("fetch must mark the message read")
	}

	back, err := svc.SetRead(context.Background(), created.ID, false)
	if err != nil {
		t.Fatalf("SetRead failed: %v", err)
	}
	if back.IsRead {
		t.Error("unread toggle did not apply")
	}

	if _, err = svc.Get(context.Background(), 999); !errors.Is(err, service.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}
