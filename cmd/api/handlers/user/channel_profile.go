package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"vidtube.com/cmd/user/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/jwt"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

// GetChannelProfile 游客可访问 携带令牌时返回是否已订阅
func GetChannelProfile(ctx context.Context, c *app.RequestContext) {
	userName := c.Param("username")
	if userName == "" {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	viewerId := jwt.GetUserID(c)
	resp, err := service.NewUserService(ctx).GetChannelProfile(userName, viewerId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
