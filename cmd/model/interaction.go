package model

type Comment struct {
	CommentId int64  `json:"comment_id" gorm:"primaryKey"`
	VideoId   int64  `json:"video_id" gorm:"index"`
	UserId    int64  `json:"user_id" gorm:"index"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Tweet struct {
	TweetId   int64  `json:"tweet_id" gorm:"primaryKey"`
	UserId    int64  `json:"user_id" gorm:"index"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Like 点赞边记录 三个目标列中恰好有一个非空
// 复合唯一索引保证每个(用户,目标)至多存在一条边
type Like struct {
	LikeId    int64  `json:"like_id" gorm:"primaryKey"`
	LikedBy   int64  `json:"liked_by" gorm:"uniqueIndex:uk_like_video;uniqueIndex:uk_like_comment;uniqueIndex:uk_like_tweet"`
	VideoId   *int64 `json:"video_id,omitempty" gorm:"uniqueIndex:uk_like_video"`
	CommentId *int64 `json:"comment_id,omitempty" gorm:"uniqueIndex:uk_like_comment"`
	TweetId   *int64 `json:"tweet_id,omitempty" gorm:"uniqueIndex:uk_like_tweet"`
	CreatedAt string `json:"created_at"`
}
