package service

import (
	"context"
	"time"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/dto"
	"github.com/adilhusain01/aadil-rasheed-server/internal/model"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/consts"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/redis"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/security"
	"github.com/adilhusain01/aadil-rasheed-server/internal/repository"

	"github.com/jinzhu/copier"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) (string, error)
	Login(ctx context.Context, req *dto.LoginDTO) (string, error)
	GetMe(ctx context.Context, userID uint64) (*dto.UserDTO, error)
	Logout(ctx context.Context, token string) error
	ResolveSubject(ctx context.Context, userID uint64) (*model.User, error)
}

type authServiceImpl struct {
	userRepo repository.UserRepo
}

func NewAuthService(userRepo repository.UserRepo) AuthService {
	return &authServiceImpl{userRepo: userRepo}
}

func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) (string, error) {
	existing, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrUserExists
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     model.RoleUser,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return "", err
	}

	return security.GenerateToken(user.ID)
}

func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginDTO) (string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err = security.CheckPasswordHash(req.Password, user.Password); err != nil {
		return "", ErrInvalidCredentials
	}

	return security.GenerateToken(user.ID)
}

func (s *authServiceImpl) GetMe(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserGone
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	return userDTO, nil
}

// Logout denylists the token's signature until its natural expiry so a
// stolen cookie cannot outlive the session.
func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrTokenInvalid
	}

	ttl := time.Duration(security.ExpireDays()) * 24 * time.Hour
	return redis.SetWithExpiration(ctx, consts.TokenDenyKey+signature, "1", ttl)
}

// ResolveSubject loads the identity encoded in a verified token. A nil
// user means the subject was deleted after token issuance.
func (s *authServiceImpl) ResolveSubject(ctx context.Context, userID uint64) (*model.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}
