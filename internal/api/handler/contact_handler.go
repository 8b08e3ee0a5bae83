package handler

import (
	"github.com/adilhusain01/aadil-rasheed-server/internal/api/dto"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/response"
	"github.com/adilhusain01/aadil-rasheed-server/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactSvc service.ContactService
}

func NewContactHandler(contactSvc service.ContactService) *ContactHandler {
	return &ContactHandler{contactSvc: contactSvc}
}

func (s *ContactHandler) Create(c *gin.Context) {
	var req dto.ContactCreateDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	contact, err := s.contactSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, contact)
}

func (s *ContactHandler) List(c *gin.Context) {
	contacts, err := s.contactSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, contacts, len(contacts))
}

// Get marks the message read on fetch.
func (s *ContactHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	contact, err := s.contactSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, contact)
}

func (s *ContactHandler) MarkRead(c *gin.Context) {
	s.setRead(c, true)
}

func (s *ContactHandler) MarkUnread(c *gin.Context) {
	s.setRead(c, false)
}

func (s *ContactHandler) setRead(c *gin.Context, read bool) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	contact, err := s.contactSvc.SetRead(c.Request.Context(), id, read)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, contact)
}

func (s *ContactHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = s.contactSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Message deleted"})
}
