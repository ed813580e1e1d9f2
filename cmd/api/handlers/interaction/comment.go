package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/cmd/interaction/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/jwt"
	"vidtube.com/pkg/utils"
)

func ListComments(ctx context.Context, c *app.RequestContext) {
	var param ListCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	resp, err := service.NewCommentService(ctx).ListComments(videoId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func AddComment(ctx context.Context, c *app.RequestContext) {
	var param CreateCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	userId := jwt.GetUserID(c)
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	resp, err := service.NewCommentService(ctx).AddComment(userId, videoId, param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	var param UpdateCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	userId := jwt.GetUserID(c)
	commentId, err := utils.ConvertStringToInt64(c.Param("comment_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	if err := service.NewCommentService(ctx).UpdateComment(userId, commentId, param.Content); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	userId := jwt.GetUserID(c)
	commentId, err := utils.ConvertStringToInt64(c.Param("comment_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	if err := service.NewCommentService(ctx).DeleteComment(userId, commentId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
