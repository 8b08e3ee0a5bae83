package service

import (
	"context"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/dto"
	"github.com/adilhusain01/aadil-rasheed-server/internal/model"
	"github.com/adilhusain01/aadil-rasheed-server/internal/repository"
)

type SocialService interface {
	ListActive(ctx context.Context) ([]*model.SocialLink, error)
	Create(ctx context.Context, req *dto.SocialLinkDTO) (*model.SocialLink, error)
	Update(ctx context.Context, id uint64, req *dto.SocialLinkDTO) (*model.SocialLink, error)
	Delete(ctx context.Context, id uint64) error
}

type socialServiceImpl struct {
	socialRepo repository.SocialRepo
}

func NewSocialService(socialRepo repository.SocialRepo) SocialService {
	return &socialServiceImpl{socialRepo: socialRepo}
}

func (s *socialServiceImpl) ListActive(ctx context.Context) ([]*model.SocialLink, error) {
	return s.socialRepo.ListActiveLinks(ctx)
}

func (s *socialServiceImpl) Create(ctx context.Context, req *dto.SocialLinkDTO) (*model.SocialLink, error) {
	link := &model.SocialLink{
		Type: req.Type,
		URL:  req.URL,
	}
	if link.Type == "" {
		link.Type = model.SocialTypeInstagram
	}
	if req.DisplayOrder != nil {
		link.DisplayOrder = *req.DisplayOrder
	}
	link.IsActive = true
	if req.IsActive != nil {
		link.IsActive = *req.IsActive
	}
	if err := s.socialRepo.CreateLink(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *socialServiceImpl) Update(ctx context.Context, id uint64, req *dto.SocialLinkDTO) (*model.SocialLink, error) {
	link, err := s.socialRepo.GetLinkByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, ErrSocialNotFound
	}

	if req.Type != "" {
		link.Type = req.Type
	}
	if req.URL != "" {
		link.URL = req.URL
	}
	if req.DisplayOrder != nil {
		link.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		link.IsActive = *req.IsActive
	}

	if err = s.socialRepo.UpdateLink(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *socialServiceImpl) Delete(ctx context.Context, id uint64) error {
	link, err := s.socialRepo.GetLinkByID(ctx, id)
	if err != nil {
		return err
	}
	if link == nil {
		return ErrSocialNotFound
	}
	return s.socialRepo.DeleteLink(ctx, id)
}
