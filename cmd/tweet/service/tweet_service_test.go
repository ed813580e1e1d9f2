package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vidtube.com/cmd/dal/db"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
)

func initTestDB(t *testing.T) {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))
	db.DB = conn
}

func seedUser(t *testing.T, userId int64, name string) {
	t.Helper()
	require.NoError(t, db.CreateUser(context.Background(), &model.User{
		UserId:   userId,
		UserName: name,
		Email:    name + "@example.com",
	}))
}

func TestTweetLifecycle(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()
	seedUser(t, 100, "alice")

	service := NewTweetService(ctx)
	tweet, err := service.CreateTweet(100, "hello world")
	require.NoError(t, err)
	assert.NotZero(t, tweet.TweetId)

	_, err = service.CreateTweet(100, "   ")
	assert.ErrorIs(t, err, errno.ParamErr)

	tweets, err := service.GetUserTweets(100)
	require.NoError(t, err)
	require.Len(t, tweets, 1)

	require.NoError(t, service.UpdateTweet(100, tweet.TweetId, "edited"))
	updated, err := db.GetTweetInfo(ctx, tweet.TweetId)
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	require.NoError(t, service.DeleteTweet(100, tweet.TweetId))
	err = service.DeleteTweet(100, tweet.TweetId)
	assert.ErrorIs(t, err, errno.TweetNotExistErr)
}

func TestTweetOwnership(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()
	seedUser(t, 100, "alice")
	seedUser(t, 101, "bob")

	service := NewTweetService(ctx)
	tweet, err := service.CreateTweet(100, "mine")
	require.NoError(t, err)

	err = service.UpdateTweet(101, tweet.TweetId, "hijacked")
	assert.ErrorIs(t, err, errno.AuthorizationErr)
	err = service.DeleteTweet(101, tweet.TweetId)
	assert.ErrorIs(t, err, errno.AuthorizationErr)

	_, err = service.GetUserTweets(999)
	assert.ErrorIs(t, err, errno.UserNotExistErr)
}
