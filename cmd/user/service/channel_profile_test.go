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
		FullName: name + " smith",
	}))
}

func TestGetChannelProfile(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()
	seedUser(t, 100, "alice")
	seedUser(t, 101, "bob")
	seedUser(t, 102, "carol")

	_, _, err := db.ToggleSubscription(ctx, 101, 100)
	require.NoError(t, err)
	_, _, err = db.ToggleSubscription(ctx, 100, 102)
	require.NoError(t, err)

	service := NewUserService(ctx)

	// 匿名访问
	profile, err := service.GetChannelProfile("alice", -1)
	require.NoError(t, err)
	assert.Equal(t, int64(100), profile.UserId)
	assert.Equal(t, "alice smith", profile.FullName)
	assert.Equal(t, int64(1), profile.SubscribersCount)
	assert.Equal(t, int64(1), profile.ChannelsSubscribedTo)
	assert.False(t, profile.IsSubscribed)

	// 已订阅的观看者
	profile, err = service.GetChannelProfile("alice", 101)
	require.NoError(t, err)
	assert.True(t, profile.IsSubscribed)

	// 未订阅的观看者
	profile, err = service.GetChannelProfile("alice", 102)
	require.NoError(t, err)
	assert.False(t, profile.IsSubscribed)

	_, err = service.GetChannelProfile("nobody", -1)
	assert.ErrorIs(t, err, errno.UserNotExistErr)
}
