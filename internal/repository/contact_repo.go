package repository

import (
	"context"
	"errors"

	"github.com/adilhusain01/aadil-rasheed-server/internal/model"

	"gorm.io/gorm"
)

type ContactRepo interface {
	CreateContact(ctx context.Context, contact *model.Contact) error
	GetContactByID(ctx context.Context, id uint64) (*model.Contact, error)
	ListContacts(ctx context.Context) ([]*model.Contact, error)
	SetRead(ctx context.Context, id uint64, read bool) error
	DeleteContact(ctx context.Context, id uint64) error
}

type ContactRepoImpl struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) ContactRepo {
	return &ContactRepoImpl{db: db}
}

func (s ContactRepoImpl) CreateContact(ctx context.Context, contact *model.Contact) error {
	return s.db.WithContext(ctx).Create(contact).Error
}

func (s ContactRepoImpl) GetContactByID(ctx context.Context, id uint64) (*model.Contact, error) {
	var contact model.Contact
	err := s.db.WithContext(ctx).First(&contact, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (s ContactRepoImpl) ListContacts(ctx context.Context) ([]*model.Contact, error) {
	var contacts []*model.Contact
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (s ContactRepoImpl) SetRead(ctx context.Context, id uint64, read bool) error {
	return s.db.WithContext(ctx).Model(&model.Contact{}).
		Where("id = ?", id).
		Update("is_read", read).Error
}

func (s ContactRepoImpl) DeleteContact(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Contact{}, id).Error
}
