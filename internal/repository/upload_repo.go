package repository

import (
	"context"
	"errors"

	"github.com/adilhusain01/aadil-rasheed-server/internal/model"

	"gorm.io/gorm"
)

type UploadRepo interface {
	CreateUpload(ctx context.Context, upload *model.Upload) error
	GetUploadByID(ctx context.Context, id uint64) (*model.Upload, error)
	ListUploads(ctx context.Context) ([]*model.Upload, error)
	DeleteUpload(ctx context.Context, id uint64) error
}

type UploadRepoImpl struct {
	db *gorm.DB
}

func NewUploadRepo(db *gorm.DB) UploadRepo {
	return &UploadRepoImpl{db: db}
}

func (s UploadRepoImpl) CreateUpload(ctx context.Context, upload *model.Upload) error {
	return s.db.WithContext(ctx).Create(upload).Error
}

func (s UploadRepoImpl) GetUploadByID(ctx context.Context, id uint64) (*model.Upload, error) {
	var upload model.Upload
	err := s.db.WithContext(ctx).First(&upload, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &upload, nil
}

func (s UploadRepoImpl) ListUploads(ctx context.Context) ([]*model.Upload, error) {
	var uploads []*model.Upload
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&uploads).Error
	if err != nil {
		return nil, err
	}
	return uploads, nil
}

func (s UploadRepoImpl) DeleteUpload(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Upload{}, id).Error
}
