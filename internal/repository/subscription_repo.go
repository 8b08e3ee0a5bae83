package repository

import (
	"context"
	"errors"

	"github.com/adilhusain01/aadil-rasheed-server/internal/model"

	"gorm.io/gorm"
)

type SubscriptionRepo interface {
	CreateSubscription(ctx context.Context, sub *model.Subscription) error
	GetSubscriptionByID(ctx context.Context, id uint64) (*model.Subscription, error)
	GetSubscriptionByEmail(ctx context.Context, email string) (*model.Subscription, error)
	ListSubscriptions(ctx context.Context) ([]*model.Subscription, error)
	SetSubscribed(ctx context.Context, id uint64, subscribed bool) error
	DeleteSubscription(ctx context.Context, id uint64) error
}

type SubscriptionRepoImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepo(db *gorm.DB) SubscriptionRepo {
	return &SubscriptionRepoImpl{db: db}
}

func (s SubscriptionRepoImpl) CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	return s.db.WithContext(ctx).Create(sub).Error
}

func (s SubscriptionRepoImpl) GetSubscriptionByID(ctx context.Context, id uint64) (*model.Subscription, error) {
	var sub model.Subscription
	err := s.db.WithContext(ctx).First(&sub, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (s SubscriptionRepoImpl) GetSubscriptionByEmail(ctx context.Context, email string) (*model.Subscription, error) {
	var sub model.Subscription
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (s SubscriptionRepoImpl) ListSubscriptions(ctx context.Context) ([]*model.Subscription, error) {
	var subs []*model.Subscription
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (s SubscriptionRepoImpl) SetSubscribed(ctx context.Context, id uint64, subscribed bool) error {
	return s.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("id = ?", id).
		Update("is_subscribed", subscribed).Error
}

func (s SubscriptionRepoImpl) DeleteSubscription(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Subscription{}, id).Error
}
