package handler

import (
	"github.com/adilhusain01/aadil-rasheed-server/internal/api/dto"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/response"
	"github.com/adilhusain01/aadil-rasheed-server/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

// ListForPost returns the approved two-level thread for a post. An
// empty thread is an empty list, never null.
func (s *CommentHandler) ListForPost(c *gin.Context) {
	postID, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	comments, err := s.commentSvc.ListForPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, comments, len(comments))
}

func (s *CommentHandler) Create(c *gin.Context) {
	postID, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.CommentCreateDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	comment, err := s.commentSvc.CreateTopLevel(c.Request.Context(), postID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, comment)
}

func (s *CommentHandler) Reply(c *gin.Context) {
	parentID, err := parseID(c, "comment_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.CommentCreateDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	comment, err := s.commentSvc.CreateReply(c.Request.Context(), parentID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, comment)
}

func (s *CommentHandler) ListAll(c *gin.Context) {
	comments, err := s.commentSvc.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, comments, len(comments))
}

func (s *CommentHandler) Approve(c *gin.Context) {
	id, err := parseID(c, "comment_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	comment, err := s.commentSvc.Approve(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *CommentHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "comment_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = s.commentSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Comment deleted"})
}
