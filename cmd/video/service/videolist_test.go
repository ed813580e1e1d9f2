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
	"vidtube.com/config"
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

func seedCatalog(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	seedUser(t, 100, "alice")
	videos := []*model.Video{
		{VideoId: 200, UserId: 100, Title: "go tutorial", Description: "channels", VisitCount: 10, IsPublished: true},
		{VideoId: 201, UserId: 100, Title: "rust intro", Description: "ownership", VisitCount: 50, IsPublished: true},
		{VideoId: 202, UserId: 100, Title: "zig basics", Description: "comptime go", VisitCount: 30, IsPublished: true},
	}
	for _, video := range videos {
		require.NoError(t, db.InsertVideo(ctx, video))
	}
}

func TestListVideosSortAndWindow(t *testing.T) {
	initTestDB(t)
	seedCatalog(t)

	service := NewVideoListService(context.Background())
	summaries, total, err := service.ListVideos(&ListVideosRequest{Page: 1, Limit: 2, SortBy: "views", SortType: "desc"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, summaries, 2)
	assert.Equal(t, int64(50), summaries[0].VisitCount)
	assert.Equal(t, int64(30), summaries[1].VisitCount)
	assert.Equal(t, "alice", summaries[0].UserName)
}

func TestListVideosAscending(t *testing.T) {
	initTestDB(t)
	seedCatalog(t)

	service := NewVideoListService(context.Background())
	summaries, _, err := service.ListVideos(&ListVideosRequest{Page: 1, Limit: 10, SortBy: "views", SortType: "asc"})
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, int64(10), summaries[0].VisitCount)
	assert.Equal(t, int64(50), summaries[2].VisitCount)
}

// 相同参数重复调用结果一致
func TestListVideosDeterministic(t *testing.T) {
	initTestDB(t)
	seedCatalog(t)

	service := NewVideoListService(context.Background())
	req := func() *ListVideosRequest {
		return &ListVideosRequest{Page: 1, Limit: 3, SortBy: "title", SortType: "asc"}
	}
	first, _, err := service.ListVideos(req())
	require.NoError(t, err)
	second, _, err := service.ListVideos(req())
	require.NoError(t, err)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].VideoId, second[i].VideoId)
	}
}

// 旧版窗口: page=2 limit=1 取 offset=1 take=2
// strict_pages开启时固定返回一条
func TestListVideosCumulativeWindow(t *testing.T) {
	initTestDB(t)
	seedCatalog(t)

	service := NewVideoListService(context.Background())
	req := &ListVideosRequest{Page: 2, Limit: 1, SortBy: "views", SortType: "desc"}

	summaries, _, err := service.ListVideos(req)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, int64(30), summaries[0].VisitCount)
	assert.Equal(t, int64(10), summaries[1].VisitCount)

	config.ConfigInfo.Pagination.StrictPages = true
	defer func() { config.ConfigInfo.Pagination.StrictPages = false }()

	summaries, _, err = service.ListVideos(req)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(30), summaries[0].VisitCount)
}

func TestListVideosKeywordFilter(t *testing.T) {
	initTestDB(t)
	seedCatalog(t)

	service := NewVideoListService(context.Background())
	summaries, total, err := service.ListVideos(&ListVideosRequest{Query: "go"})
	require.NoError(t, err)
	// 标题或描述包含关键字都命中
	assert.Equal(t, int64(2), total)
	assert.Len(t, summaries, 2)
}

func TestListVideosPublishedOnly(t *testing.T) {
	initTestDB(t)
	seedCatalog(t)
	ctx := context.Background()
	require.NoError(t, db.InsertVideo(ctx, &model.Video{VideoId: 203, UserId: 100, Title: "draft", IsPublished: false}))

	service := NewVideoListService(ctx)
	_, total, err := service.ListVideos(&ListVideosRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	// 限定所有者时同样不含未发布的 草稿只经dashboard可见
	summaries, total, err := service.ListVideos(&ListVideosRequest{OwnerId: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	for _, summary := range summaries {
		assert.NotEqual(t, int64(203), summary.VideoId)
	}
}

func TestListVideosUnknownSortFallsBack(t *testing.T) {
	initTestDB(t)
	seedCatalog(t)

	service := NewVideoListService(context.Background())
	summaries, _, err := service.ListVideos(&ListVideosRequest{SortBy: "password"})
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, int64(50), summaries[0].VisitCount)
}

func TestListVideosOwnerMissing(t *testing.T) {
	initTestDB(t)
	seedCatalog(t)

	_, _, err := NewVideoListService(context.Background()).ListVideos(&ListVideosRequest{OwnerId: 999})
	assert.ErrorIs(t, err, errno.UserNotExistErr)
}

func TestGetVideoById(t *testing.T) {
	initTestDB(t)
	seedCatalog(t)
	ctx := context.Background()
	seedUser(t, 101, "bob")
	_, _, err := db.ToggleSubscription(ctx, 101, 100)
	require.NoError(t, err)
	_, _, err = db.ToggleVideoLike(ctx, 101, 200)
	require.NoError(t, err)

	service := NewVideoDetailService(ctx)
	detail, err := service.GetVideoById(200)
	require.NoError(t, err)
	assert.Equal(t, int64(10), detail.VisitCount)
	assert.Equal(t, int64(1), detail.LikesCount)
	assert.Equal(t, "alice", detail.UserName)
	assert.Equal(t, int64(1), detail.Subscribers)

	// 详情是只读视图 重复读取返回相同快照
	detail, err = service.GetVideoById(200)
	require.NoError(t, err)
	assert.Equal(t, int64(10), detail.VisitCount)

	_, err = service.GetVideoById(999)
	assert.ErrorIs(t, err, errno.VideoNotExistErr)
}

func TestRecordVisit(t *testing.T) {
	initTestDB(t)
	seedCatalog(t)
	ctx := context.Background()

	service := NewVideoDetailService(ctx)
	require.NoError(t, service.RecordVisit(200))
	require.NoError(t, service.RecordVisit(200))

	detail, err := service.GetVideoById(200)
	require.NoError(t, err)
	assert.Equal(t, int64(12), detail.VisitCount)

	err = service.RecordVisit(999)
	assert.ErrorIs(t, err, errno.VideoNotExistErr)
}
