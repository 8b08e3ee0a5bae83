package repository

import (
	"context"
	"errors"

	"github.com/adilhusain01/aadil-rasheed-server/internal/model"

	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentByID(ctx context.Context, id uint64) (*model.Comment, error)
	ListTopLevelApproved(ctx context.Context, postID uint64) ([]*model.Comment, error)
	ListApprovedReplies(ctx context.Context, parentIDs []uint64) ([]*model.Comment, error)
	ListAllWithPost(ctx context.Context) ([]*model.Comment, error)
	ApproveComment(ctx context.Context, id uint64) error
	DeleteWithReplies(ctx context.Context, id uint64) error
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

func (s CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s CommentRepoImpl) GetCommentByID(ctx context.Context, id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (s CommentRepoImpl) ListTopLevelApproved(ctx context.Context, postID uint64) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Where("post_id = ? AND parent_id IS NULL AND is_approved = ?", postID, true).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s CommentRepoImpl) ListApprovedReplies(ctx context.Context, parentIDs []uint64) ([]*model.Comment, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	var replies []*model.Comment
	err := s.db.WithContext(ctx).
		Where("parent_id IN ? AND is_approved = ?", parentIDs, true).
		Order("created_at ASC").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}

func (s CommentRepoImpl) ListAllWithPost(ctx context.Context) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Preload("Post", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "slug")
		}).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s CommentRepoImpl) ApproveComment(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", id).
		Update("is_approved", true).Error
}

// DeleteWithReplies removes the comment and its direct replies in one
// transaction. The cascade is one level deep only.
func (s CommentRepoImpl) DeleteWithReplies(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Comment{}, id).Error
	})
}
