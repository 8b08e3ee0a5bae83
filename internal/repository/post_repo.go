package repository

import (
	"context"
	"errors"

	"github.com/adilhusain01/aadil-rasheed-server/internal/model"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPostByID(ctx context.Context, id uint64) (*model.Post, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*model.Post, error)
	ListPublished(ctx context.Context) ([]*model.Post, error)
	ListAll(ctx context.Context) ([]*model.Post, error)
	UpdatePost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id uint64) error
	IncrementLikes(ctx context.Context, id uint64) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s PostRepoImpl) GetPostByID(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s PostRepoImpl) GetPublishedBySlug(ctx context.Context, slug string) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Where("slug = ? AND is_published = ?", slug, true).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s PostRepoImpl) ListPublished(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s PostRepoImpl) ListAll(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Save(post).Error
}

func (s PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Post{}, id).Error
}

// IncrementLikes bumps the counter atomically in the store so
// concurrent likes never lose updates.
func (s PostRepoImpl) IncrementLikes(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Update("likes", gorm.Expr("likes + ?", 1)).Error
}
