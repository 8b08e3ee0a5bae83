package handler

import (
	"github.com/adilhusain01/aadil-rasheed-server/internal/api/dto"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/response"
	"github.com/adilhusain01/aadil-rasheed-server/internal/service"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionSvc service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionSvc service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionSvc: subscriptionSvc}
}

func (s *SubscriptionHandler) Subscribe(c *gin.Context) {
	var req dto.SubscriptionCreateDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	sub, err := s.subscriptionSvc.Subscribe(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, sub)
}

func (s *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	var req dto.UnsubscribeDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	sub, err := s.subscriptionSvc.Unsubscribe(c.Request.Context(), req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, sub)
}

func (s *SubscriptionHandler) List(c *gin.Context) {
	subs, err := s.subscriptionSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, subs, len(subs))
}

func (s *SubscriptionHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = s.subscriptionSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Subscriber deleted"})
}
