package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube.com/cmd/dal/db"
	"vidtube.com/config"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/jwt"
)

func initJwtConfig() {
	config.ConfigInfo.Jwt.SecretKey = "test-secret"
	config.ConfigInfo.Jwt.Issuer = "vidtube-test"
}

func TestRegisterAndLogin(t *testing.T) {
	initTestDB(t)
	initJwtConfig()
	ctx := context.Background()

	service := NewUserService(ctx)
	user, err := service.Register(&RegisterRequest{
		UserName: "alice",
		Email:    "alice@example.com",
		FullName: "alice smith",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.UserId)
	// 密码落库前加密
	assert.NotEqual(t, "hunter22", user.Password)

	_, err = service.Register(&RegisterRequest{UserName: "alice", Email: "other@example.com", Password: "x"})
	assert.ErrorIs(t, err, errno.ParamErr)

	logged, tokens, err := service.Login("alice", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.UserId, logged.UserId)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)

	claims, err := jwt.ParseAccessToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.UserId, claims.UserID)

	_, _, err = service.Login("alice", "wrong")
	assert.ErrorIs(t, err, errno.AuthorizationErr)
	_, _, err = service.Login("nobody", "hunter22")
	assert.ErrorIs(t, err, errno.UserNotExistErr)
}

func TestRefreshTokenRotation(t *testing.T) {
	initTestDB(t)
	initJwtConfig()
	ctx := context.Background()

	service := NewUserService(ctx)
	user, err := service.Register(&RegisterRequest{
		UserName: "alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	_, tokens, err := service.Login("alice", "hunter22")
	require.NoError(t, err)

	rotated, err := service.RefreshTokens(tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, tokens.RefreshToken, rotated.RefreshToken)

	// 旧刷新令牌轮换后作废
	_, err = service.RefreshTokens(tokens.RefreshToken)
	assert.ErrorIs(t, err, errno.AuthorizationErr)

	require.NoError(t, service.Logout(user.UserId))
	_, err = service.RefreshTokens(rotated.RefreshToken)
	assert.ErrorIs(t, err, errno.AuthorizationErr)

	_, err = service.RefreshTokens("")
	assert.ErrorIs(t, err, errno.AuthorizationErr)

	stored, err := db.GetUserInfo(ctx, user.UserId)
	require.NoError(t, err)
	assert.Empty(t, stored.RefreshToken)
}
