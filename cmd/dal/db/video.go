package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
)

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return err
	}
	return nil
}

func IsVideoExist(ctx context.Context, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

// 获取视频信息
func GetVideoInfo(ctx context.Context, videoId int64) (*model.Video, error) {
	var video model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// 对于视频列表的查询
func GetVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id IN (?)", videoIds).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// 获取用户发布的视频
func GetVideosByUserId(ctx context.Context, userId int64) ([]*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideosByUserId failed,err:%v", err)
	}
	return videos, nil
}

func UpdateVideoInfo(ctx context.Context, videoId int64, updates map[string]interface{}) error {
	return DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Updates(updates).Error
}

func UpdateVideoPublish(ctx context.Context, videoId int64, published bool) error {
	return DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Update("is_published", published).Error
}

// IncrVideoVisit 观看数自增 单条SQL内完成 避免读改写竞争
func IncrVideoVisit(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		UpdateColumn("visit_count", gorm.Expr("visit_count + 1")).Error
}

func DeleteVideo(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Delete(&model.Video{}).Error; err != nil {
		return err
	}
	return nil
}

func SumVideoViews(ctx context.Context, userId int64) (int64, error) {
	var total *int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).
		Select("SUM(visit_count)").Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func CountVideosByUser(ctx context.Context, userId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// VideoQueryOption 视频目录查询的过滤、排序与窗口参数
// OrderBy是已经过白名单解析的列名
type VideoQueryOption struct {
	Keyword       string
	OwnerId       int64
	PublishedOnly bool
	OrderBy       string
	Desc          bool
	Offset        int
	Limit         int
}

// QueryVideos 过滤→排序→窗口 过滤在排序前 排序在分页前
func QueryVideos(ctx context.Context, opt *VideoQueryOption) ([]*model.Video, int64, error) {
	var videos []*model.Video
	var count int64

	q := DB.WithContext(ctx).Model(&model.Video{})
	if opt.PublishedOnly {
		q = q.Where("is_published = ?", true)
	}
	if opt.OwnerId != 0 {
		q = q.Where("user_id = ?", opt.OwnerId)
	}
	if opt.Keyword != "" {
		kw := "%" + opt.Keyword + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", kw, kw)
	}

	if err := q.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "QueryVideos count failed,err:%v", err)
	}

	order := opt.OrderBy
	if opt.Desc {
		order += " DESC"
	}
	if err := q.Order(order).Offset(opt.Offset).Limit(opt.Limit).Find(&videos).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "QueryVideos failed,err:%v", err)
	}
	return videos, count, nil
}
