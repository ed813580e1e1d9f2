package service

import (
	"context"
	"strings"
	"time"

	"vidtube.com/cmd/dal/db"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type TweetService struct {
	ctx context.Context
}

func NewTweetService(ctx context.Context) *TweetService {
	return &TweetService{ctx: ctx}
}

func (service *TweetService) CreateTweet(userId int64, content string) (*model.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errno.ParamErr.WithMessage("Tweet content should not be empty")
	}
	now := time.Now().Format(constants.DataFormate)
	tweet := &model.Tweet{
		TweetId:   utils.GenerateID(),
		UserId:    userId,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateTweet(service.ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

func (service *TweetService) GetUserTweets(userId int64) ([]*model.Tweet, error) {
	exist, err := db.IsUserExist(service.ctx, userId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.UserNotExistErr
	}
	return db.GetTweetsByUser(service.ctx, userId)
}

func (service *TweetService) UpdateTweet(userId, tweetId int64, content string) error {
	if strings.TrimSpace(content) == "" {
		return errno.ParamErr.WithMessage("Tweet content should not be empty")
	}
	if _, err := service.ownTweet(userId, tweetId); err != nil {
		return err
	}
	return db.UpdateTweetContent(service.ctx, tweetId, content, time.Now().Format(constants.DataFormate))
}

func (service *TweetService) DeleteTweet(userId, tweetId int64) error {
	if _, err := service.ownTweet(userId, tweetId); err != nil {
		return err
	}
	return db.DeleteTweet(service.ctx, tweetId)
}

func (service *TweetService) ownTweet(userId, tweetId int64) (*model.Tweet, error) {
	exist, err := db.IsTweetExist(service.ctx, tweetId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.TweetNotExistErr
	}
	tweet, err := db.GetTweetInfo(service.ctx, tweetId)
	if err != nil {
		return nil, err
	}
	if tweet.UserId != userId {
		return nil, errno.AuthorizationErr
	}
	return tweet, nil
}
