package model

type User struct {
	UserId        int64  `json:"user_id" gorm:"primaryKey"`
	UserName      string `json:"user_name" gorm:"size:64;uniqueIndex"`
	Email         string `json:"email" gorm:"size:128;uniqueIndex"`
	FullName      string `json:"full_name"`
	AvatarUrl     string `json:"avatar_url"`
	CoverImageUrl string `json:"cover_image_url"`
	Password      string `json:"-"`
	RefreshToken  string `json:"-"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}
