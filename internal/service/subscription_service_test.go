package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/dto"
	"github.com/adilhusain01/aadil-rasheed-server/internal/mocks"
	"github.com/adilhusain01/aadil-rasheed-server/internal/service"
)

func waitForMail(t *testing.T, mailer *mocks.MockMailSender, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if mailer.SentCount() >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d mails, got %d", want, mailer.SentCount())
}

func TestSubscriptionService_Subscribe(t *testing.T) {
	subRepo := mocks.NewMockSubscriptionRepo()
	mailer := mocks.NewMockMailSender()
	svc := service.NewSubscriptionService(subRepo, mocks.NewMockBotVerifier(true), mailer)

	sub, err := svc.Subscribe(context.Background(), &dto.SubscriptionCreateDTO{
		FirstName: "Ada", LastName: "L", Email: "ada@example.com", RecaptchaToken: "tok",
	})
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if !sub.IsSubscribed {
		t.Error("new subscription must be active")
	}
	waitForMail(t, mailer, 1)
	if mailer.Sent[0].To != "ada@example.com" {
		t.Errorf("welcome mail went to %q", mailer.Sent[0].To)
	}
}

func TestSubscriptionService_Subscribe_DuplicateEmail(t *testing.T) {
	subRepo := mocks.NewMockSubscriptionRepo()
	svc := service.NewSubscriptionService(subRepo, mocks.NewMockBotVerifier(true), mocks.NewMockMailSender())

	req := &dto.SubscriptionCreateDTO{FirstName: "A", LastName: "B", Email: "dup@example.com", RecaptchaToken: "tok"}
	if _, err := svc.Subscribe(context.Background(), req); err != nil {
		t.Fatalf("first Subscribe failed: %v", err)
	}
	if _, err := svc.Subscribe(context.Background(), req); !errors.Is(err, service.ErrEmailSubscribed) {
		t.Fatalf("expected ErrEmailSubscribed, got %v", err)
	}

	// Unsubscribing does not reopen the address for signup.
	if _, err := svc.Unsubscribe(context.Background(), "dup@example.com"); err != nil {
		t.Fatalf("Unsubscribe failed: %v", err)
	}
	if _, err := svc.Subscribe(context.Background(), req); !errors.Is(err, service.ErrEmailSubscribed) {
		t.Fatalf("expected ErrEmailSubscribed after unsubscribe, got %v", err)
	}
}

func TestSubscriptionService_Subscribe_BotChecks(t *testing.T) {
	subRepo := mocks.NewMockSubscriptionRepo()
	svc := service.NewSubscriptionService(subRepo, mocks.NewMockBotVerifier(false), mocks.NewMockMailSender())

	_, err := svc.Subscribe(context.Background(), &dto.SubscriptionCreateDTO{
		FirstName: "A", LastName: "B", Email: "a@example.com",
	})
	if !errors.Is(err, service.ErrBotTokenMissing) {
		t.Fatalf("expected ErrBotTokenMissing, got %v", err)
	}

	_, err = svc.Subscribe(context.Background(), &dto.SubscriptionCreateDTO{
		FirstName: "A", LastName: "B", Email: "a@example.com", RecaptchaToken: "bad",
	})
	if !errors.Is(err, service.ErrBotCheckFailed) {
		t.Fatalf("expected ErrBotCheckFailed, got %v", err)
	}
	if len(subRepo.Subscriptions) != 0 {
		t.Error("failed checks must not persist a subscription")
	}
}

func TestSubscriptionService_Unsubscribe(t *testing.T) {
	subRepo := mocks.NewMockSubscriptionRepo()
	svc := service.NewSubscriptionService(subRepo, mocks.NewMockBotVerifier(true), mocks.NewMockMailSender())

	if _, err := svc.Unsubscribe(context.Background(), ""); !errors.Is(err, service.ErrEmailRequired) {
		t.Fatalf("expected ErrEmailRequired, got %v", err)
	}
	if _, err := svc.Unsubscribe(context.Background(), "ghost@example.com"); !errors.Is(err, service.ErrSubscriptionNotFound) {
		t.Fatalf("expected ErrSubscriptionNotFound, got %v", err)
	}

	created, err := svc.Subscribe(context.Background(), &dto.SubscriptionCreateDTO{
		FirstName: "A", LastName: "B", Email: "soft@example.com", RecaptchaToken: "tok",
	})
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	sub, err := svc.Unsubscribe(context.Background(), "soft@example.com")
	if err != nil {
		t.Fatalf("Unsubscribe failed: %v", err)
	}
	if sub.IsSubscribed {
		t.Error("unsubscribe must clear the flag")
	}
	if _, ok := subRepo.Subscriptions[created.ID]; !ok {
		t.Error("unsubscribe must keep the row")
	}
}
