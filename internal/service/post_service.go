package service

import (
	"context"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/dto"
	"github.com/adilhusain01/aadil-rasheed-server/internal/model"
	"github.com/adilhusain01/aadil-rasheed-server/internal/repository"

	"github.com/jinzhu/copier"
)

type PostService interface {
	ListPublished(ctx context.Context) ([]*model.Post, error)
	ListAll(ctx context.Context) ([]*model.Post, error)
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)
	GetByID(ctx context.Context, id uint64) (*model.Post, error)
	Create(ctx context.Context, req *dto.PostCreateDTO) (*model.Post, error)
	Update(ctx context.Context, id uint64, req *dto.PostUpdateDTO) (*model.Post, error)
	Delete(ctx context.Context, id uint64) error
	Like(ctx context.Context, id uint64) (*model.Post, error)
}

type postServiceImpl struct {
	postRepo repository.PostRepo
}

func NewPostService(postRepo repository.PostRepo) PostService {
	return &postServiceImpl{postRepo: postRepo}
}

func (s *postServiceImpl) ListPublished(ctx context.Context) ([]*model.Post, error) {
	return s.postRepo.ListPublished(ctx)
}

func (s *postServiceImpl) ListAll(ctx context.Context) ([]*model.Post, error) {
	return s.postRepo.ListAll(ctx)
}

// GetBySlug only resolves published posts. Drafts stay invisible on the
// public surface even when the slug is known.
func (s *postServiceImpl) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	post, err := s.postRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *postServiceImpl) GetByID(ctx context.Context, id uint64) (*model.Post, error) {
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *postServiceImpl) Create(ctx context.Context, req *dto.PostCreateDTO) (*model.Post, error) {
	post := &model.Post{}
	if err := copier.Copy(post, req); err != nil {
		return nil, err
	}
	if req.IsPublished != nil {
		post.IsPublished = *req.IsPublished
	} else {
		post.IsPublished = true
	}
	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postServiceImpl) Update(ctx context.Context, id uint64, req *dto.PostUpdateDTO) (*model.Post, error) {
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Slug != nil {
		post.Slug = *req.Slug
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Image != nil {
		post.Image = *req.Image
	}
	if req.Date != nil {
		post.Date = *req.Date
	}
	if req.IsPublished != nil {
		post.IsPublished = *req.IsPublished
	}

	if err = s.postRepo.UpdatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postServiceImpl) Delete(ctx context.Context, id uint64) error {
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	return s.postRepo.DeletePost(ctx, id)
}

func (s *postServiceImpl) Like(ctx context.Context, id uint64) (*model.Post, error) {
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if err = s.postRepo.IncrementLikes(ctx, id); err != nil {
		return nil, err
	}
	post.Likes++
	return post, nil
}
