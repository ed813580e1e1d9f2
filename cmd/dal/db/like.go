package db

import (
	"context"
	"time"

	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/utils"
)

// 点赞的翻转统一走"先删后插"的单事务路径
// 删除命中说明边已存在(翻转为取消) 未命中则插入新边
// 边表上的复合唯一索引保证并发翻转下同一(用户,目标)至多一条边

func ToggleVideoLike(ctx context.Context, userId, videoId int64) (bool, *model.Like, error) {
	var created bool
	var edge *model.Like
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("liked_by = ? AND video_id = ?", userId, videoId).Delete(&model.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			created = false
			return nil
		}
		edge = &model.Like{
			LikeId:    utils.GenerateID(),
			LikedBy:   userId,
			VideoId:   &videoId,
			CreatedAt: time.Now().Format(constants.DataFormate),
		}
		if err := tx.Create(edge).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, nil, err
	}
	if !created {
		edge = nil
	}
	return created, edge, nil
}

func ToggleCommentLike(ctx context.Context, userId, commentId int64) (bool, *model.Like, error) {
	var created bool
	var edge *model.Like
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("liked_by = ? AND comment_id = ?", userId, commentId).Delete(&model.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			created = false
			return nil
		}
		edge = &model.Like{
			LikeId:    utils.GenerateID(),
			LikedBy:   userId,
			CommentId: &commentId,
			CreatedAt: time.Now().Format(constants.DataFormate),
		}
		if err := tx.Create(edge).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, nil, err
	}
	if !created {
		edge = nil
	}
	return created, edge, nil
}

func ToggleTweetLike(ctx context.Context, userId, tweetId int64) (bool, *model.Like, error) {
	var created bool
	var edge *model.Like
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("liked_by = ? AND tweet_id = ?", userId, tweetId).Delete(&model.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			created = false
			return nil
		}
		edge = &model.Like{
			LikeId:    utils.GenerateID(),
			LikedBy:   userId,
			TweetId:   &tweetId,
			CreatedAt: time.Now().Format(constants.DataFormate),
		}
		if err := tx.Create(edge).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, nil, err
	}
	if !created {
		edge = nil
	}
	return created, edge, nil
}

// 获取用户点赞过的视频边 目标视频可能已被删除 由上层联查时剔除
func GetVideoLikesByUser(ctx context.Context, userId int64) ([]*model.Like, error) {
	var likes []*model.Like
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("liked_by = ? AND video_id IS NOT NULL", userId).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func CountLikesByTarget(ctx context.Context, column string, targetId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Like{}).Where(column+" = ?", targetId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// 频道维度的点赞统计 三类目标分别联查各自的实体表后求和
// 悬挂边(目标已删除)因内联失配自然不计入

func CountVideoLikesForOwner(ctx context.Context, userId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Joins("JOIN videos ON videos.video_id = likes.video_id").
		Where("videos.user_id = ?", userId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func CountCommentLikesForOwner(ctx context.Context, userId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Joins("JOIN comments ON comments.comment_id = likes.comment_id").
		Where("comments.user_id = ?", userId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func CountTweetLikesForOwner(ctx context.Context, userId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Joins("JOIN tweets ON tweets.tweet_id = likes.tweet_id").
		Where("tweets.user_id = ?", userId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
