package service

import (
	"context"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/dto"
	"github.com/adilhusain01/aadil-rasheed-server/internal/model"
	"github.com/adilhusain01/aadil-rasheed-server/internal/repository"

	"github.com/jinzhu/copier"
)

type CommentService interface {
	ListForPost(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error)
	CreateTopLevel(ctx context.Context, postID uint64, req *dto.CommentCreateDTO) (*model.Comment, error)
	CreateReply(ctx context.Context, parentID uint64, req *dto.CommentCreateDTO) (*model.Comment, error)
	ListAll(ctx context.Context) ([]*dto.AdminCommentDTO, error)
	Approve(ctx context.Context, id uint64) (*model.Comment, error)
	Delete(ctx context.Context, id uint64) error
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
	botVerifier BotVerifier
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo, botVerifier BotVerifier) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		botVerifier: botVerifier,
	}
}

// ListForPost returns the approved comment tree for a post: top-level
// comments newest first, each carrying its approved replies oldest
// first. Replies are fetched in one batch query rather than per parent.
func (s *commentServiceImpl) ListForPost(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error) {
	// An unknown post simply has no comments; listing never 404s.
	parents, err := s.commentRepo.ListTopLevelApproved(ctx, postID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CommentDTO, 0, len(parents))
	byID := make(map[uint64]*dto.CommentDTO, len(parents))
	parentIDs := make([]uint64, 0, len(parents))
	for _, parent := range parents {
		node := toCommentDTO(parent)
		result = append(result, node)
		byID[parent.ID] = node
		parentIDs = append(parentIDs, parent.ID)
	}

	if len(parentIDs) > 0 {
		replies, err := s.commentRepo.ListApprovedReplies(ctx, parentIDs)
		if err != nil {
			return nil, err
		}
		for _, reply := range replies {
			if reply.ParentID == nil {
				continue
			}
			if parent, ok := byID[*reply.ParentID]; ok {
				parent.Replies = append(parent.Replies, toCommentDTO(reply))
			}
		}
	}

	return result, nil
}

func (s *commentServiceImpl) CreateTopLevel(ctx context.Context, postID uint64, req *dto.CommentCreateDTO) (*model.Comment, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if err = s.checkBot(ctx, req.RecaptchaToken); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		PostID:  postID,
		Name:    req.Name,
		Email:   req.Email,
		Content: req.Content,
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateReply attaches a reply to a top-level comment. Replying to a
// reply is rejected so the tree never grows past two levels.
func (s *commentServiceImpl) CreateReply(ctx context.Context, parentID uint64, req *dto.CommentCreateDTO) (*model.Comment, error) {
	parent, err := s.commentRepo.GetCommentByID(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if parent == nil || parent.ParentID != nil {
		return nil, ErrParentNotFound
	}

	if err = s.checkBot(ctx, req.RecaptchaToken); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		PostID:   parent.PostID,
		ParentID: &parent.ID,
		Name:     req.Name,
		Email:    req.Email,
		Content:  req.Content,
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentServiceImpl) ListAll(ctx context.Context) ([]*dto.AdminCommentDTO, error) {
	comments, err := s.commentRepo.ListAllWithPost(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AdminCommentDTO, 0, len(comments))
	for _, comment := range comments {
		item := &dto.AdminCommentDTO{}
		if err = copier.Copy(&item.CommentDTO, comment); err != nil {
			return nil, err
		}
		item.Replies = nil
		if comment.Post != nil {
			item.Post = &dto.CommentPostRef{
				ID:    comment.Post.ID,
				Title: comment.Post.Title,
				Slug:  comment.Post.Slug,
			}
		}
		result = append(result, item)
	}
	return result, nil
}

// Approve is idempotent; approving an already approved comment is a
// no-op that still returns the comment.
func (s *commentServiceImpl) Approve(ctx context.Context, id uint64) (*model.Comment, error) {
	comment, err := s.commentRepo.GetCommentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	if !comment.IsApproved {
		if err = s.commentRepo.ApproveComment(ctx, id); err != nil {
			return nil, err
		}
		comment.IsApproved = true
	}
	return comment, nil
}

// Delete removes a comment together with its direct replies.
func (s *commentServiceImpl) Delete(ctx context.Context, id uint64) error {
	comment, err := s.commentRepo.GetCommentByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	return s.commentRepo.DeleteWithReplies(ctx, id)
}

func (s *commentServiceImpl) checkBot(ctx context.Context, token string) error {
	if token == "" {
		return ErrBotTokenMissing
	}
	if !s.botVerifier.Verify(ctx, token) {
		return ErrBotCheckFailed
	}
	return nil
}

func toCommentDTO(comment *model.Comment) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:         comment.ID,
		PostID:     comment.PostID,
		ParentID:   comment.ParentID,
		Name:       comment.Name,
		Email:      comment.Email,
		Content:    comment.Content,
		IsApproved: comment.IsApproved,
		CreatedAt:  comment.CreatedAt,
	}
}
