package service

import (
	"context"
	"log/slog"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/dto"
	"github.com/adilhusain01/aadil-rasheed-server/internal/model"
	"github.com/adilhusain01/aadil-rasheed-server/internal/repository"
)

type ContactService interface {
	Create(ctx context.Context, req *dto.ContactCreateDTO) (*model.Contact, error)
	List(ctx context.Context) ([]*model.Contact, error)
	Get(ctx context.Context, id uint64) (*model.Contact, error)
	SetRead(ctx context.Context, id uint64, read bool) (*model.Contact, error)
	Delete(ctx context.Context, id uint64) error
}

type contactServiceImpl struct {
	contactRepo repository.ContactRepo
	botVerifier BotVerifier
	mailer      MailSender
}

func NewContactService(contactRepo repository.ContactRepo, botVerifier BotVerifier, mailer MailSender) ContactService {
	return &contactServiceImpl{
		contactRepo: contactRepo,
		botVerifier: botVerifier,
		mailer:      mailer,
	}
}

func (s *contactServiceImpl) Create(ctx context.Context, req *dto.ContactCreateDTO) (*model.Contact, error) {
	if req.RecaptchaToken == "" {
		return nil, ErrBotTokenMissing
	}
	if !s.botVerifier.Verify(ctx, req.RecaptchaToken) {
		return nil, ErrBotCheckFailed
	}

	contact := &model.Contact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Message:   req.Message,
	}
	if err := s.contactRepo.CreateContact(ctx, contact); err != nil {
		return nil, err
	}

	// Operator notification is best-effort; a mail outage must not fail
	// the submission that is already persisted. Recipient and body are
	// resolved here so the goroutine never touches the live config.
	to := operatorAddress()
	subject := contactSubject(contact)
	body := contactBody(contact)
	go func() {
		if err := s.mailer.Send(to, subject, body); err != nil {
			slog.Warn("contact notification mail failed", "error", err, "contact_id", contact.ID)
		}
	}()

	return contact, nil
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.Contact, error) {
	return s.contactRepo.ListContacts(ctx)
}

// Get fetches a single message and marks it read as a side effect, so
// opening a message in the dashboard clears its unread badge.
func (s *contactServiceImpl) Get(ctx context.Context, id uint64) (*model.Contact, error) {
	return s.SetRead(ctx, id, true)
}

func (s *contactServiceImpl) SetRead(ctx context.Context, id uint64, read bool) (*model.Contact, error) {
	contact, err := s.contactRepo.GetContactByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}

	if contact.IsRead != read {
		if err = s.contactRepo.SetRead(ctx, id, read); err != nil {
			return nil, err
		}
		contact.IsRead = read
	}
	return contact, nil
}

func (s *contactServiceImpl) Delete(ctx context.Context, id uint64) error {
	contact, err := s.contactRepo.GetContactByID(ctx, id)
	if err != nil {
		return err
	}
	if contact == nil {
		return ErrContactNotFound
	}
	return s.contactRepo.DeleteContact(ctx, id)
}
