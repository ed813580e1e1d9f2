package db

import (
	"context"

	"vidtube.com/cmd/model"
)

func CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	return DB.WithContext(ctx).Create(tweet).Error
}

func DeleteTweet(ctx context.Context, tweetId int64) error {
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).Delete(&model.Tweet{}).Error; err != nil {
		return err
	}
	return nil
}

func UpdateTweetContent(ctx context.Context, tweetId int64, content, updatedAt string) error {
	return DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).
		Updates(map[string]interface{}{"content": content, "updated_at": updatedAt}).Error
}

func GetTweetInfo(ctx context.Context, tweetId int64) (*model.Tweet, error) {
	var tweet model.Tweet
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).First(&tweet).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

func IsTweetExist(ctx context.Context, tweetId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

func GetTweetsByUser(ctx context.Context, userId int64) ([]*model.Tweet, error) {
	var tweets []*model.Tweet
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("user_id = ?", userId).Find(&tweets).Error; err != nil {
		return nil, err
	}
	return tweets, nil
}
