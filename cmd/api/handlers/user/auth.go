package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/user/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/jwt"
)

type RegisterParam struct {
	UserName string `json:"user_name" form:"user_name"`
	Email    string `json:"email" form:"email"`
	FullName string `json:"full_name" form:"full_name"`
	Password string `json:"password" form:"password"`
}

type LoginParam struct {
	UserName string `json:"user_name" form:"user_name"`
	Password string `json:"password" form:"password"`
}

type RefreshParam struct {
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

func Register(ctx context.Context, c *app.RequestContext) {
	var req RegisterParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	user, err := service.NewUserService(ctx).Register(&service.RegisterRequest{
		UserName: req.UserName,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}

func Login(ctx context.Context, c *app.RequestContext) {
	var req LoginParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	user, tokens, err := service.NewUserService(ctx).Login(req.UserName, req.Password)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"user":   user,
		"tokens": tokens,
	})
}

func RefreshTokens(ctx context.Context, c *app.RequestContext) {
	var req RefreshParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	tokens, err := service.NewUserService(ctx).RefreshTokens(req.RefreshToken)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, tokens)
}

func Logout(ctx context.Context, c *app.RequestContext) {
	if err := service.NewUserService(ctx).Logout(jwt.GetUserID(c)); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
