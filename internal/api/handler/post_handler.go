package handler

import (
	"github.com/adilhusain01/aadil-rasheed-server/internal/api/dto"
	"github.com/adilhusain01/aadil-rasheed-server/internal/model"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/response"
	"github.com/adilhusain01/aadil-rasheed-server/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

func (s *PostHandler) ListPublished(c *gin.Context) {
	posts, err := s.postSvc.ListPublished(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, posts, len(posts))
}

// ListAll is the admin dashboard listing: every post, with publish
// totals alongside.
func (s *PostHandler) ListAll(c *gin.Context) {
	posts, err := s.postSvc.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	published := 0
	for _, post := range posts {
		if post.IsPublished {
			published++
		}
	}
	response.Success(c, &dto.PostAdminListDTO{
		Count:            len(posts),
		PublishedCount:   published,
		UnpublishedCount: len(posts) - published,
		Posts:            posts,
	})
}

func (s *PostHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")
	post, err := s.postSvc.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) GetByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	post, err := s.postSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) Create(c *gin.Context) {
	var req dto.PostCreateDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	post, err := s.postSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, post)
}

func (s *PostHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.PostUpdateDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	post, err := s.postSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = s.postSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Post deleted"})
}

// Like is public and unauthenticated; every call increments.
func (s *PostHandler) Like(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var post *model.Post
	if post, err = s.postSvc.Like(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"likes": post.Likes})
}
