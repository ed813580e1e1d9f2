package db

import (
	"context"

	"vidtube.com/cmd/model"
)

func CreateUser(ctx context.Context, user *model.User) error {
	return DB.WithContext(ctx).Create(user).Error
}

func IsUserExist(ctx context.Context, userId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

// 获取某一个用户的全部信息
func GetUserInfo(ctx context.Context, userId int64) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByName(ctx context.Context, userName string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_name = ?", userName).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// 用户名或邮箱占用检查
func IsUserNameOrEmailTaken(ctx context.Context, userName, email string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).
		Where("user_name = ? OR email = ?", userName, email).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

func GetUserByRefreshToken(ctx context.Context, refreshToken string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("refresh_token = ?", refreshToken).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateRefreshToken(ctx context.Context, userId int64, refreshToken string) error {
	return DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).
		Update("refresh_token", refreshToken).Error
}

// 批量查询用户 用于视图的所有者投影
func GetUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error) {
	var users []*model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id IN (?)", userIds).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
