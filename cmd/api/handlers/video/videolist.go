package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/cmd/video/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type listVideosResponse struct {
	Videos []*service.VideoSummary `json:"videos"`
	Total  int64                   `json:"total"`
}

func ListVideos(ctx context.Context, c *app.RequestContext) {
	var param ListVideosParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	videos, total, err := service.NewVideoListService(ctx).ListVideos(&service.ListVideosRequest{
		Page:     param.Page,
		Limit:    param.Limit,
		Query:    param.Query,
		SortBy:   param.SortBy,
		SortType: param.SortType,
		OwnerId:  param.UserId,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, &listVideosResponse{Videos: videos, Total: total})
}

func GetVideoById(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	resp, err := service.NewVideoDetailService(ctx).GetVideoById(videoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
