package handler

import (
	"net/http"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/config"
	"github.com/adilhusain01/aadil-rasheed-server/internal/api/dto"
	"github.com/adilhusain01/aadil-rasheed-server/internal/api/middleware"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/consts"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/response"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/security"
	"github.com/adilhusain01/aadil-rasheed-server/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

func (s *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	setAuthCookie(c, token)
	response.Created(c, gin.H{"token": token})
}

func (s *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	setAuthCookie(c, token)
	response.Success(c, gin.H{"token": token})
}

func (s *AuthHandler) GetMe(c *gin.Context) {
	userID := c.GetUint64(middleware.CtxUserIDKey)
	user, err := s.authSvc.GetMe(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

// Logout denylists the current token and expires the cookie.
func (s *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(middleware.CtxTokenKey)
	if err := s.authSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	clearAuthCookie(c)
	response.Success(c, gin.H{"message": "Logged out"})
}

func setAuthCookie(c *gin.Context, token string) {
	maxAge := security.ExpireDays() * 24 * 3600
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(consts.AuthCookieName, token, maxAge, "/", "", config.IsProduction(), true)
}

func clearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(consts.AuthCookieName, "", -1, "/", "", config.IsProduction(), true)
}
