package repository

import (
	"context"
	"errors"

	"github.com/adilhusain01/aadil-rasheed-server/internal/model"

	"gorm.io/gorm"
)

type GalleryRepo interface {
	CreateItem(ctx context.Context, item *model.GalleryItem) error
	GetItemByID(ctx context.Context, id uint64) (*model.GalleryItem, error)
	ListActiveItems(ctx context.Context) ([]*model.GalleryItem, error)
	UpdateItem(ctx context.Context, item *model.GalleryItem) error
	DeleteItem(ctx context.Context, id uint64) error
}

type GalleryRepoImpl struct {
	db *gorm.DB
}

func NewGalleryRepo(db *gorm.DB) GalleryRepo {
	return &GalleryRepoImpl{db: db}
}

func (s GalleryRepoImpl) CreateItem(ctx context.Context, item *model.GalleryItem) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s GalleryRepoImpl) GetItemByID(ctx context.Context, id uint64) (*model.GalleryItem, error) {
	var item model.GalleryItem
	err := s.db.WithContext(ctx).First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s GalleryRepoImpl) ListActiveItems(ctx context.Context) ([]*model.GalleryItem, error) {
	var items []*model.GalleryItem
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s GalleryRepoImpl) UpdateItem(ctx context.Context, item *model.GalleryItem) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s GalleryRepoImpl) DeleteItem(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.GalleryItem{}, id).Error
}
