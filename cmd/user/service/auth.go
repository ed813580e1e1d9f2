package service

import (
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/dal/db"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/jwt"
	"vidtube.com/pkg/utils"
)

type RegisterRequest struct {
	UserName string
	Email    string
	FullName string
	Password string
}

// TokenPair 登录态 刷新令牌落库 轮换时旧令牌作废
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (service *UserService) Register(req *RegisterRequest) (*model.User, error) {
	req.UserName = strings.TrimSpace(req.UserName)
	req.Email = strings.TrimSpace(req.Email)
	if req.UserName == "" || req.Email == "" || req.Password == "" {
		return nil, errno.ParamErr.WithMessage("Username, email and password are required")
	}
	taken, err := db.IsUserNameOrEmailTaken(service.ctx, req.UserName, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errno.ParamErr.WithMessage("Username or email already exists")
	}

	hashed, err := utils.Crypt(req.Password)
	if err != nil {
		hlog.CtxErrorf(service.ctx, "Failed to hash password: %v", err)
		return nil, err
	}
	now := time.Now().Format(constants.DataFormate)
	user := &model.User{
		UserId:    utils.GenerateID(),
		UserName:  req.UserName,
		Email:     req.Email,
		FullName:  req.FullName,
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateUser(service.ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (service *UserService) Login(userName, password string) (*model.User, *TokenPair, error) {
	user, err := db.GetUserByName(service.ctx, userName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errno.UserNotExistErr
		}
		return nil, nil, err
	}
	if _, ok := utils.VerifyPassword(password, user.Password); !ok {
		return nil, nil, errno.AuthorizationErr.WithMessage("Incorrect password")
	}
	pair, err := service.issueTokens(user.UserId)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// RefreshTokens rotates both tokens for the holder of a refresh token.
func (service *UserService) RefreshTokens(refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, errno.AuthorizationErr.WithMessage("Refresh token is required")
	}
	user, err := db.GetUserByRefreshToken(service.ctx, refreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.AuthorizationErr.WithMessage("Invalid refresh token")
		}
		return nil, err
	}
	return service.issueTokens(user.UserId)
}

func (service *UserService) Logout(userId int64) error {
	return db.UpdateRefreshToken(service.ctx, userId, "")
}

func (service *UserService) issueTokens(userId int64) (*TokenPair, error) {
	access, err := jwt.GenerateAccessToken(userId)
	if err != nil {
		return nil, err
	}
	refresh := uuid.NewString()
	if err := db.UpdateRefreshToken(service.ctx, userId, refresh); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
