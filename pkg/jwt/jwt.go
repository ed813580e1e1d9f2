package jwt

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"vidtube.com/config"
	"vidtube.com/pkg/errno"
)

const (
	identityKey    = "user_id"
	accessTokenTTL = 24 * time.Hour
)

// Claims 访问令牌的载荷
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateAccessToken 签发访问令牌
func GenerateAccessToken(userId int64) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userId,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.ConfigInfo.Jwt.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.ConfigInfo.Jwt.SecretKey))
	if err != nil {
		return "", errors.Wrap(err, "sign access token failed")
	}
	return signed, nil
}

// ParseAccessToken verify a token and return its claims.
func ParseAccessToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.ConfigInfo.Jwt.SecretKey), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse access token failed")
	}
	if !token.Valid {
		return nil, errno.AuthorizationErr
	}
	return claims, nil
}

func tokenFromHeader(c *app.RequestContext) string {
	auth := string(c.GetHeader("Authorization"))
	if auth == "" {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

// Auth 鉴权中间件 解析访问令牌并将用户ID写入请求上下文
func Auth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		token := tokenFromHeader(c)
		if token == "" {
			c.JSON(consts.StatusUnauthorized, map[string]interface{}{
				"code":    errno.AuthorizationFailedCode,
				"message": errno.AuthorizationErr.ErrMsg,
			})
			c.Abort()
			return
		}
		claims, err := ParseAccessToken(token)
		if err != nil {
			c.JSON(consts.StatusUnauthorized, map[string]interface{}{
				"code":    errno.AuthorizationFailedCode,
				"message": errno.ConvertErr(err).ErrMsg,
			})
			c.Abort()
			return
		}
		c.Set(identityKey, claims.UserID)
		c.Next(ctx)
	}
}

// OptionalAuth resolves the actor when a token is present but lets
// anonymous requests through. Views like the channel profile use it to
// answer viewer-relative fields.
func OptionalAuth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if token := tokenFromHeader(c); token != "" {
			if claims, err := ParseAccessToken(token); err == nil {
				c.Set(identityKey, claims.UserID)
			}
		}
		c.Next(ctx)
	}
}

// GetUserID 获取当前请求的用户ID 未登录时返回-1
func GetUserID(c *app.RequestContext) int64 {
	v, ok := c.Get(identityKey)
	if !ok {
		return -1
	}
	id, ok := v.(int64)
	if !ok {
		return -1
	}
	return id
}
