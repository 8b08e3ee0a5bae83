package service

import (
	"context"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/dto"
	"github.com/adilhusain01/aadil-rasheed-server/internal/model"
	"github.com/adilhusain01/aadil-rasheed-server/internal/repository"
)

type GalleryService interface {
	ListActive(ctx context.Context) ([]*model.GalleryItem, error)
	Create(ctx context.Context, req *dto.GalleryItemDTO) (*model.GalleryItem, error)
	Update(ctx context.Context, id uint64, req *dto.GalleryItemDTO) (*model.GalleryItem, error)
	Delete(ctx context.Context, id uint64) error
}

type galleryServiceImpl struct {
	galleryRepo repository.GalleryRepo
}

func NewGalleryService(galleryRepo repository.GalleryRepo) GalleryService {
	return &galleryServiceImpl{galleryRepo: galleryRepo}
}

func (s *galleryServiceImpl) ListActive(ctx context.Context) ([]*model.GalleryItem, error) {
	return s.galleryRepo.ListActiveItems(ctx)
}

func (s *galleryServiceImpl) Create(ctx context.Context, req *dto.GalleryItemDTO) (*model.GalleryItem, error) {
	item := &model.GalleryItem{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if req.DisplayOrder != nil {
		item.DisplayOrder = *req.DisplayOrder
	}
	item.IsActive = true
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if err := s.galleryRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *galleryServiceImpl) Update(ctx context.Context, id uint64, req *dto.GalleryItemDTO) (*model.GalleryItem, error) {
	item, err := s.galleryRepo.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrGalleryNotFound
	}

	if req.Title != "" {
		item.Title = req.Title
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.ImageURL != "" {
		item.ImageURL = req.ImageURL
	}
	if req.DisplayOrder != nil {
		item.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err = s.galleryRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *galleryServiceImpl) Delete(ctx context.Context, id uint64) error {
	item, err := s.galleryRepo.GetItemByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrGalleryNotFound
	}
	return s.galleryRepo.DeleteItem(ctx, id)
}
