package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"vidtube.com/cmd/relation/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/jwt"
	"vidtube.com/pkg/utils"
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

func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	userId := jwt.GetUserID(c)
	channelId, err := utils.ConvertStringToInt64(c.Param("channel_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	resp, err := service.NewRelationService(ctx).ToggleSubscription(userId, channelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func GetChannelSubscribers(ctx context.Context, c *app.RequestContext) {
	channelId, err := utils.ConvertStringToInt64(c.Param("channel_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	resp, err := service.NewRelationService(ctx).GetChannelSubscribers(channelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func GetSubscribedChannels(ctx context.Context, c *app.RequestContext) {
	subscriberId, err := utils.ConvertStringToInt64(c.Param("subscriber_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	resp, err := service.NewRelationService(ctx).GetSubscribedChannels(subscriberId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
