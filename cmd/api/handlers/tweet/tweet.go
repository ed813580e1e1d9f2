package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"vidtube.com/cmd/tweet/service"
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

type TweetParam struct {
	Content string `json:"content" form:"content"`
}

func CreateTweet(ctx context.Context, c *app.RequestContext) {
	var param TweetParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	userId := jwt.GetUserID(c)
	resp, err := service.NewTweetService(ctx).CreateTweet(userId, param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func GetUserTweets(ctx context.Context, c *app.RequestContext) {
	userId, err := utils.ConvertStringToInt64(c.Param("user_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	resp, err := service.NewTweetService(ctx).GetUserTweets(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func UpdateTweet(ctx context.Context, c *app.RequestContext) {
	var param TweetParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	userId := jwt.GetUserID(c)
	tweetId, err := utils.ConvertStringToInt64(c.Param("tweet_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	if err := service.NewTweetService(ctx).UpdateTweet(userId, tweetId, param.Content); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func DeleteTweet(ctx context.Context, c *app.RequestContext) {
	userId := jwt.GetUserID(c)
	tweetId, err := utils.ConvertStringToInt64(c.Param("tweet_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	if err := service.NewTweetService(ctx).DeleteTweet(userId, tweetId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
