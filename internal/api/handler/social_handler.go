package handler

import (
	"github.com/adilhusain01/aadil-rasheed-server/internal/api/dto"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/response"
	"github.com/adilhusain01/aadil-rasheed-server/internal/service"

	"github.com/gin-gonic/gin"
)

type SocialHandler struct {
	socialSvc service.SocialService
}

func NewSocialHandler(socialSvc service.SocialService) *SocialHandler {
	return &SocialHandler{socialSvc: socialSvc}
}

func (s *SocialHandler) ListActive(c *gin.Context) {
	links, err := s.socialSvc.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, links, len(links))
}

func (s *SocialHandler) Create(c *gin.Context) {
	var req dto.SocialLinkDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	link, err := s.socialSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, link)
}

func (s *SocialHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.SocialLinkDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	link, err := s.socialSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, link)
}

func (s *SocialHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = s.socialSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Link deleted"})
}
