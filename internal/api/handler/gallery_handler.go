package handler

import (
	"github.com/adilhusain01/aadil-rasheed-server/internal/api/dto"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/response"
	"github.com/adilhusain01/aadil-rasheed-server/internal/service"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	gallerySvc service.GalleryService
}

func NewGalleryHandler(gallerySvc service.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallerySvc: gallerySvc}
}

func (s *GalleryHandler) ListActive(c *gin.Context) {
	items, err := s.gallerySvc.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, items, len(items))
}

func (s *GalleryHandler) Create(c *gin.Context) {
	var req dto.GalleryItemDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	item, err := s.gallerySvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

func (s *GalleryHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.GalleryItemDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	item, err := s.gallerySvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

func (s *GalleryHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = s.gallerySvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Gallery item deleted"})
}
