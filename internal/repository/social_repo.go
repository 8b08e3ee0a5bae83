package repository

import (
	"context"
	"errors"

	"github.com/adilhusain01/aadil-rasheed-server/internal/model"

	"gorm.io/gorm"
)

type SocialRepo interface {
	CreateLink(ctx context.Context, link *model.SocialLink) error
	GetLinkByID(ctx context.Context, id uint64) (*model.SocialLink, error)
	ListActiveLinks(ctx context.Context) ([]*model.SocialLink, error)
	UpdateLink(ctx context.Context, link *model.SocialLink) error
	DeleteLink(ctx context.Context, id uint64) error
}

type SocialRepoImpl struct {
	db *gorm.DB
}

func NewSocialRepo(db *gorm.DB) SocialRepo {
	return &SocialRepoImpl{db: db}
}

func (s SocialRepoImpl) CreateLink(ctx context.Context, link *model.SocialLink) error {
	return s.db.WithContext(ctx).Create(link).Error
}

func (s SocialRepoImpl) GetLinkByID(ctx context.Context, id uint64) (*model.SocialLink, error) {
	var link model.SocialLink
	err := s.db.WithContext(ctx).First(&link, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (s SocialRepoImpl) ListActiveLinks(ctx context.Context) ([]*model.SocialLink, error) {
	var links []*model.SocialLink
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (s SocialRepoImpl) UpdateLink(ctx context.Context, link *model.SocialLink) error {
	return s.db.WithContext(ctx).Save(link).Error
}

func (s SocialRepoImpl) DeleteLink(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.SocialLink{}, id).Error
}
