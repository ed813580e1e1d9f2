package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/cmd/video/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/jwt"
	"vidtube.com/pkg/utils"
)

func PublishVideo(ctx context.Context, c *app.RequestContext) {
	var param PublishVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	userId := jwt.GetUserID(c)
	resp, err := service.NewVideoPublishService(ctx).PublishVideo(userId, &service.PublishVideoRequest{
		Title:       param.Title,
		Description: param.Description,
		VideoUrl:    param.VideoUrl,
		CoverUrl:    param.CoverUrl,
		Duration:    param.Duration,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	var param UpdateVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	userId := jwt.GetUserID(c)
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	resp, err := service.NewVideoPublishService(ctx).UpdateVideo(userId, videoId, param.Title, param.Description, param.CoverUrl)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	userId := jwt.GetUserID(c)
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	if err := service.NewVideoPublishService(ctx).DeleteVideo(userId, videoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func TogglePublishStatus(ctx context.Context, c *app.RequestContext) {
	userId := jwt.GetUserID(c)
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	resp, err := service.NewVideoPublishService(ctx).TogglePublishStatus(userId, videoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
