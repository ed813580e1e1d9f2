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

func seedVideo(t *testing.T, videoId, userId int64, title string) {
	t.Helper()
	require.NoError(t, db.InsertVideo(context.Background(), &model.Video{
		VideoId:     videoId,
		UserId:      userId,
		Title:       title,
		IsPublished: true,
	}))
}

func TestPlaylistMembership(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()
	seedUser(t, 100, "alice")
	seedVideo(t, 200, 100, "first")

	service := NewPlaylistService(ctx)
	playlist, err := service.CreatePlaylist(100, "favorites", "best of")
	require.NoError(t, err)

	require.NoError(t, service.AddVideo(100, playlist.PlaylistId, 200))

	err = service.AddVideo(100, playlist.PlaylistId, 200)
	assert.ErrorIs(t, err, errno.VideoAlreadyInPlaylistErr)

	err = service.AddVideo(100, playlist.PlaylistId, 999)
	assert.ErrorIs(t, err, errno.VideoNotExistErr)

	require.NoError(t, service.RemoveVideo(100, playlist.PlaylistId, 200))
	err = service.RemoveVideo(100, playlist.PlaylistId, 200)
	assert.ErrorIs(t, err, errno.VideoNotInPlaylistErr)
}

func TestPlaylistOwnership(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()
	seedUser(t, 100, "alice")
	seedUser(t, 101, "bob")
	seedVideo(t, 200, 100, "first")

	service := NewPlaylistService(ctx)
	playlist, err := service.CreatePlaylist(100, "favorites", "best of")
	require.NoError(t, err)

	err = service.AddVideo(101, playlist.PlaylistId, 200)
	assert.ErrorIs(t, err, errno.AuthorizationErr)

	_, err = service.UpdatePlaylist(101, playlist.PlaylistId, "stolen", "")
	assert.ErrorIs(t, err, errno.AuthorizationErr)

	err = service.DeletePlaylist(101, playlist.PlaylistId)
	assert.ErrorIs(t, err, errno.AuthorizationErr)
}

// 详情视图剔除悬挂成员 存量序列不动
func TestPlaylistDetailDanglingMember(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()
	seedUser(t, 100, "alice")
	seedVideo(t, 200, 100, "keep")
	seedVideo(t, 201, 100, "drop")

	service := NewPlaylistService(ctx)
	playlist, err := service.CreatePlaylist(100, "favorites", "best of")
	require.NoError(t, err)
	require.NoError(t, service.AddVideo(100, playlist.PlaylistId, 200))
	require.NoError(t, service.AddVideo(100, playlist.PlaylistId, 201))

	require.NoError(t, db.DeleteVideo(ctx, 201))

	detail, err := service.GetPlaylistById(playlist.PlaylistId)
	require.NoError(t, err)
	require.Len(t, detail.Videos, 1)
	assert.Equal(t, int64(200), detail.Videos[0].VideoId)
	assert.Equal(t, "alice", detail.Videos[0].Owner.UserName)
	assert.Equal(t, int64(1), detail.VideosCount)
	assert.Equal(t, "alice", detail.Owner.UserName)

	// 存量成员仍是两条 概览视图按存量计
	stored, err := db.CountPlaylistVideos(ctx, playlist.PlaylistId)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored)

	summaries, err := service.GetUserPlaylists(100)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(2), summaries[0].VideosCount)
}

func TestPlaylistDetailOrdering(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()
	seedUser(t, 100, "alice")
	seedVideo(t, 200, 100, "a")
	seedVideo(t, 201, 100, "b")
	seedVideo(t, 202, 100, "c")

	service := NewPlaylistService(ctx)
	playlist, err := service.CreatePlaylist(100, "ordered", "in order")
	require.NoError(t, err)
	for _, videoId := range []int64{202, 200, 201} {
		require.NoError(t, service.AddVideo(100, playlist.PlaylistId, videoId))
	}

	detail, err := service.GetPlaylistById(playlist.PlaylistId)
	require.NoError(t, err)
	require.Len(t, detail.Videos, 3)
	// 加入序即返回序
	assert.Equal(t, int64(202), detail.Videos[0].VideoId)
	assert.Equal(t, int64(200), detail.Videos[1].VideoId)
	assert.Equal(t, int64(201), detail.Videos[2].VideoId)
}

func TestCreatePlaylistValidation(t *testing.T) {
	initTestDB(t)
	seedUser(t, 100, "alice")

	service := NewPlaylistService(context.Background())
	_, err := service.CreatePlaylist(100, "   ", "desc")
	assert.ErrorIs(t, err, errno.ParamErr)

	_, err = service.GetPlaylistById(999)
	assert.ErrorIs(t, err, errno.PlaylistNotExistErr)
}
