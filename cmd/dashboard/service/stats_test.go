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

func TestGetChannelStatsEmpty(t *testing.T) {
	initTestDB(t)
	seedUser(t, 100, "alice")

	stats, err := NewDashboardService(context.Background()).GetChannelStats(100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalViews)
	assert.Equal(t, int64(0), stats.TotalVideos)
	assert.Equal(t, int64(0), stats.Subscribers)
	assert.Equal(t, int64(0), stats.TotalLikes)
}

// 总点赞 = 视频赞 + 推文赞 + 评论赞 三路互不串扰
func TestGetChannelStatsAdditivity(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()
	seedUser(t, 100, "alice")
	seedUser(t, 101, "bob")
	seedUser(t, 102, "carol")

	require.NoError(t, db.InsertVideo(ctx, &model.Video{VideoId: 200, UserId: 100, Title: "v1", VisitCount: 40, IsPublished: true}))
	require.NoError(t, db.InsertVideo(ctx, &model.Video{VideoId: 201, UserId: 100, Title: "v2", VisitCount: 2, IsPublished: true}))
	require.NoError(t, db.CreateComment(ctx, &model.Comment{CommentId: 300, VideoId: 200, UserId: 101, Content: "c"}))
	require.NoError(t, db.CreateTweet(ctx, &model.Tweet{TweetId: 400, UserId: 100, Content: "t"}))

	// 评论的作者是bob 其上的赞计入bob的频道而不是视频作者alice
	// alice名下: 视频200两个赞 推文400一个赞
	for _, likedBy := range []int64{101, 102} {
		_, _, err := db.ToggleVideoLike(ctx, likedBy, 200)
		require.NoError(t, err)
	}
	_, _, err := db.ToggleTweetLike(ctx, 101, 400)
	require.NoError(t, err)
	_, _, err = db.ToggleCommentLike(ctx, 102, 300)
	require.NoError(t, err)

	_, _, err = db.ToggleSubscription(ctx, 101, 100)
	require.NoError(t, err)

	service := NewDashboardService(ctx)
	stats, err := service.GetChannelStats(100)
	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalViews)
	assert.Equal(t, int64(2), stats.TotalVideos)
	assert.Equal(t, int64(1), stats.Subscribers)
	assert.Equal(t, int64(3), stats.TotalLikes)

	bobStats, err := service.GetChannelStats(101)
	require.NoError(t, err)
	assert.Equal(t, int64(1), bobStats.TotalLikes)

	// 取消一路点赞只影响对应分量
	_, _, err = db.ToggleCommentLike(ctx, 102, 300)
	require.NoError(t, err)
	bobStats, err = service.GetChannelStats(101)
	require.NoError(t, err)
	assert.Equal(t, int64(0), bobStats.TotalLikes)
	stats, err = service.GetChannelStats(100)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalLikes)
}

func TestGetChannelVideosIncludesUnpublished(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()
	seedUser(t, 100, "alice")
	require.NoError(t, db.InsertVideo(ctx, &model.Video{VideoId: 200, UserId: 100, Title: "public", IsPublished: true}))
	require.NoError(t, db.InsertVideo(ctx, &model.Video{VideoId: 201, UserId: 100, Title: "draft", IsPublished: false}))

	videos, err := NewDashboardService(ctx).GetChannelVideos(100)
	require.NoError(t, err)
	assert.Len(t, videos, 2)
}
