package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube.com/pkg/errno"
)

func TestPublishVideo(t *testing.T) {
	initTestDB(t)
	seedUser(t, 100, "alice")

	service := NewVideoPublishService(context.Background())
	video, err := service.PublishVideo(100, &PublishVideoRequest{
		Title:       "my video",
		Description: "about things",
		VideoUrl:    "https://cdn.example.com/v.mp4",
		Duration:    90,
	})
	require.NoError(t, err)
	assert.True(t, video.IsPublished)
	assert.NotZero(t, video.VideoId)

	_, err = service.PublishVideo(100, &PublishVideoRequest{Title: " ", Description: "d", VideoUrl: "u"})
	assert.ErrorIs(t, err, errno.ParamErr)
	_, err = service.PublishVideo(100, &PublishVideoRequest{Title: "t", Description: "d"})
	assert.ErrorIs(t, err, errno.ParamErr)
}

func TestUpdateVideoOwnership(t *testing.T) {
	initTestDB(t)
	seedCatalog(t)
	ctx := context.Background()
	seedUser(t, 101, "bob")

	service := NewVideoPublishService(ctx)
	_, err := service.UpdateVideo(101, 200, "new title", "new desc", "")
	assert.ErrorIs(t, err, errno.AuthorizationErr)

	updated, err := service.UpdateVideo(100, 200, "new title", "new desc", "cover.png")
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "cover.png", updated.CoverUrl)

	err = service.DeleteVideo(101, 200)
	assert.ErrorIs(t, err, errno.AuthorizationErr)
	require.NoError(t, service.DeleteVideo(100, 200))
	err = service.DeleteVideo(100, 200)
	assert.ErrorIs(t, err, errno.VideoNotExistErr)
}

func TestTogglePublishStatus(t *testing.T) {
	initTestDB(t)
	seedCatalog(t)
	ctx := context.Background()

	service := NewVideoPublishService(ctx)
	video, err := service.TogglePublishStatus(100, 200)
	require.NoError(t, err)
	assert.False(t, video.IsPublished)

	video, err = service.TogglePublishStatus(100, 200)
	require.NoError(t, err)
	assert.True(t, video.IsPublished)
}
