package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/interaction/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/jwt"
	"vidtube.com/pkg/utils"
)

func ToggleVideoLike(ctx context.Context, c *app.RequestContext) {
	userId := jwt.GetUserID(c)
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	resp, err := service.NewLikeActionService(ctx).ToggleVideoLike(userId, videoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func ToggleCommentLike(ctx context.Context, c *app.RequestContext) {
	userId := jwt.GetUserID(c)
	commentId, err := utils.ConvertStringToInt64(c.Param("comment_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	resp, err := service.NewLikeActionService(ctx).ToggleCommentLike(userId, commentId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func ToggleTweetLike(ctx context.Context, c *app.RequestContext) {
	userId := jwt.GetUserID(c)
	tweetId, err := utils.ConvertStringToInt64(c.Param("tweet_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	resp, err := service.NewLikeActionService(ctx).ToggleTweetLike(userId, tweetId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func GetLikedVideos(ctx context.Context, c *app.RequestContext) {
	userId := jwt.GetUserID(c)
	resp, err := service.NewLikedVideosService(ctx).LikedVideos(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
