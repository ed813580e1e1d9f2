package model

type Video struct {
	VideoId     int64  `json:"video_id" gorm:"primaryKey"`
	UserId      int64  `json:"user_id" gorm:"index"`
	VideoUrl    string `json:"video_url"`
	CoverUrl    string `json:"cover_url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int64  `json:"duration"` // seconds
	VisitCount  int64  `json:"visit_count"`
	IsPublished bool   `json:"is_published"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type Playlist struct {
	PlaylistId  int64  `json:"playlist_id" gorm:"primaryKey"`
	UserId      int64  `json:"user_id" gorm:"index"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// PlaylistVideo 播放列表中的视频 同一视频在一个列表中只允许出现一次
type PlaylistVideo struct {
	PlaylistVideoId int64  `json:"playlist_video_id" gorm:"primaryKey"`
	PlaylistId      int64  `json:"playlist_id" gorm:"uniqueIndex:uk_playlist_video"`
	VideoId         int64  `json:"video_id" gorm:"uniqueIndex:uk_playlist_video"`
	Position        int64  `json:"position"`
	CreatedAt       string `json:"created_at"`
}
