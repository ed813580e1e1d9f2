package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"vidtube.com/cmd/dashboard/service"
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

// GetChannelStats 频道主查看自己的统计
func GetChannelStats(ctx context.Context, c *app.RequestContext) {
	userId := jwt.GetUserID(c)
	resp, err := service.NewDashboardService(ctx).GetChannelStats(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func GetChannelVideos(ctx context.Context, c *app.RequestContext) {
	userId := jwt.GetUserID(c)
	resp, err := service.NewDashboardService(ctx).GetChannelVideos(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
