package handlers

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"vidtube.com/pkg/errno"
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

type ListVideosParam struct {
	Page     int64  `query:"page"`
	Limit    int64  `query:"limit"`
	Query    string `query:"query"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType"`
	UserId   int64  `query:"user_id"`
}

type PublishVideoParam struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	VideoUrl    string `json:"video_url" form:"video_url"`
	CoverUrl    string `json:"cover_url" form:"cover_url"`
	Duration    int64  `json:"duration" form:"duration"`
}

type UpdateVideoParam struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	CoverUrl    string `json:"cover_url" form:"cover_url"`
}
