package service

import (
	"context"
	"log/slog"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/dto"
	"github.com/adilhusain01/aadil-rasheed-server/internal/model"
	"github.com/adilhusain01/aadil-rasheed-server/internal/repository"
)

type SubscriptionService interface {
	Subscribe(ctx context.Context, req *dto.SubscriptionCreateDTO) (*model.Subscription, error)
	Unsubscribe(ctx context.Context, email string) (*model.Subscription, error)
	List(ctx context.Context) ([]*model.Subscription, error)
	Delete(ctx context.Context, id uint64) error
}

type subscriptionServiceImpl struct {
	subscriptionRepo repository.SubscriptionRepo
	botVerifier      BotVerifier
	mailer           MailSender
}

func NewSubscriptionService(subscriptionRepo repository.SubscriptionRepo, botVerifier BotVerifier, mailer MailSender) SubscriptionService {
	return &subscriptionServiceImpl{
		subscriptionRepo: subscriptionRepo,
		botVerifier:      botVerifier,
		mailer:           mailer,
	}
}

func (s *subscriptionServiceImpl) Subscribe(ctx context.Context, req *dto.SubscriptionCreateDTO) (*model.Subscription, error) {
	if req.RecaptchaToken == "" {
		return nil, ErrBotTokenMissing
	}
	if !s.botVerifier.Verify(ctx, req.RecaptchaToken) {
		return nil, ErrBotCheckFailed
	}

	existing, err := s.subscriptionRepo.GetSubscriptionByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	// A known address is rejected even when it has unsubscribed; the
	// soft flag keeps history, not a re-signup path.
	if existing != nil {
		return nil, ErrEmailSubscribed
	}

	sub := &model.Subscription{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		IsSubscribed: true,
	}
	if err = s.subscriptionRepo.CreateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	to := sub.Email
	subject := welcomeSubject()
	body := welcomeBody(sub)
	go func() {
		if err := s.mailer.Send(to, subject, body); err != nil {
			slog.Warn("welcome mail failed", "error", err, "subscription_id", sub.ID)
		}
	}()

	return sub, nil
}

func (s *subscriptionServiceImpl) Unsubscribe(ctx context.Context, email string) (*model.Subscription, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}

	sub, err := s.subscriptionRepo.GetSubscriptionByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubscriptionNotFound
	}

	if sub.IsSubscribed {
		if err = s.subscriptionRepo.SetSubscribed(ctx, sub.ID, false); err != nil {
			return nil, err
		}
		sub.IsSubscribed = false
	}
	return sub, nil
}

func (s *subscriptionServiceImpl) List(ctx context.Context) ([]*model.Subscription, error) {
	return s.subscriptionRepo.ListSubscriptions(ctx)
}

func (s *subscriptionServiceImpl) Delete(ctx context.Context, id uint64) error {
	sub, err := s.subscriptionRepo.GetSubscriptionByID(ctx, id)
	if err != nil {
		return err
	}
	if sub == nil {
		return ErrSubscriptionNotFound
	}
	return s.subscriptionRepo.DeleteSubscription(ctx, id)
}
