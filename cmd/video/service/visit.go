package service

import (
	"vidtube.com/cmd/dal/db"
	"vidtube.com/pkg/errno"
)

// RecordVisit 观看计数 视频必须存在
// 详情视图本身是只读的 计数走这条独立路径
func (service *VideoDetailService) RecordVisit(videoId int64) error {
	exist, err := db.IsVideoExist(service.ctx, videoId)
	if err != nil {
		return err
	}
	if !exist {
		return errno.VideoNotExistErr
	}
	return db.IncrVideoVisit(service.ctx, videoId)
}
