package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"vidtube.com/cmd/playlist/service"
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

type PlaylistParam struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	var param PlaylistParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	userId := jwt.GetUserID(c)
	resp, err := service.NewPlaylistService(ctx).CreatePlaylist(userId, param.Name, param.Description)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func GetPlaylistById(ctx context.Context, c *app.RequestContext) {
	playlistId, err := utils.ConvertStringToInt64(c.Param("playlist_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	resp, err := service.NewPlaylistService(ctx).GetPlaylistById(playlistId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func GetUserPlaylists(ctx context.Context, c *app.RequestContext) {
	userId, err := utils.ConvertStringToInt64(c.Param("user_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	resp, err := service.NewPlaylistService(ctx).GetUserPlaylists(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	var param PlaylistParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	userId := jwt.GetUserID(c)
	playlistId, err := utils.ConvertStringToInt64(c.Param("playlist_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	resp, err := service.NewPlaylistService(ctx).UpdatePlaylist(userId, playlistId, param.Name, param.Description)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	userId := jwt.GetUserID(c)
	playlistId, err := utils.ConvertStringToInt64(c.Param("playlist_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	if err := service.NewPlaylistService(ctx).DeletePlaylist(userId, playlistId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func AddVideoToPlaylist(ctx context.Context, c *app.RequestContext) {
	userId := jwt.GetUserID(c)
	playlistId, err := utils.ConvertStringToInt64(c.Param("playlist_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	if err := service.NewPlaylistService(ctx).AddVideo(userId, playlistId, videoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func RemoveVideoFromPlaylist(ctx context.Context, c *app.RequestContext) {
	userId := jwt.GetUserID(c)
	playlistId, err := utils.ConvertStringToInt64(c.Param("playlist_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	if err := service.NewPlaylistService(ctx).RemoveVideo(userId, playlistId, videoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
