package db

import (
	"context"

	"vidtube.com/cmd/model"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	return DB.WithContext(ctx).Create(comment).Error
}

func DeleteComment(ctx context.Context, commentId int64) error {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).Delete(&model.Comment{}).Error; err != nil {
		return err
	}
	return nil
}

func UpdateCommentContent(ctx context.Context, commentId int64, content, updatedAt string) error {
	return DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).
		Updates(map[string]interface{}{"content": content, "updated_at": updatedAt}).Error
}

// 获取某一条评论的全部信息
func GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error) {
	var comment model.Comment
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// 用来检查给定的comment_id是否在这个数据表中
func IsCommentExist(ctx context.Context, commentId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

// 获取视频的评论列表
func GetCommentsByVideo(ctx context.Context, videoId int64, offset, limit int) ([]*model.Comment, error) {
	var comments []*model.Comment
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).
		Offset(offset).Limit(limit).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
