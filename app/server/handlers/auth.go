package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"recipe-box/app/server/constants"
	"recipe-box/app/server/models"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// bearerToken 从 Authorization 头提取 Bearer 凭据
func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("missing auth token")
	}

	splits := strings.Split(authHeader, " ")
	if len(splits) != 2 {
		return "", fmt.Errorf("invalid auth header: %s", authHeader)
	}

	if strings.ToLower(splits[0]) != "bearer" {
		return "", fmt.Errorf("unknown auth method: %s", splits[0])
	}

	return splits[1], nil
}

// authUser 从请求中解析出发起调用的用户，任何数据访问之前都必须先通过这里
func (a *App) authUser(c echo.Context) (*models.User, error, int) {
	rctx := c.Request().Context()

	// 提取 token
	tokenString, err := bearerToken(c)
	if err != nil {
		return nil, err, http.StatusUnauthorized
	}

	// 格式化 UUID
	uuidToken, err := uuid.Parse(tokenString)
	if err != nil {
		return nil, fmt.Errorf("invalid uuid token: %s", tokenString), http.StatusUnauthorized
	}

	var user models.User

	// 查询缓存
	cacheKey := fmt.Sprintf(constants.CacheKeyAuthToken, uuidToken)
	if cacheBytes, err := a.rdb.Get(rctx, cacheKey).Bytes(); err != nil {
		if !errors.Is(err, redis.Nil) {
			a.l.Error("failed to query cache for auth user", zap.String("token", uuidToken.String()), zap.Error(err))
		}
	} else if err = json.Unmarshal(cacheBytes, &user); err != nil {
		a.l.Error("failed to unmarshal auth user", zap.ByteString("cacheBytes", cacheBytes), zap.Error(err))
		// 可能是无效的缓存，清理掉
		a.rdb.Del(rctx, cacheKey)
	} else {
		// 成功拉取到并格式化
		if !user.IsActive {
			return nil, fmt.Errorf("user is inactive"), http.StatusUnauthorized
		}
		return &user, nil, http.StatusOK
	}

	// 查询数据库
	var token models.AuthToken
	if err := a.db.WithContext(rctx).First(&token, "key = ?", uuidToken).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("unknown token"), http.StatusUnauthorized
		}
		return nil, fmt.Errorf("failed to find token: %w", err), http.StatusInternalServerError
	}

	if err := a.db.WithContext(rctx).First(&user, "id = ?", token.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("token user no longer exists"), http.StatusUnauthorized
		}
		return nil, fmt.Errorf("failed to find user: %w", err), http.StatusInternalServerError
	}

	if !user.IsActive {
		return nil, fmt.Errorf("user is inactive"), http.StatusUnauthorized
	}

	// 格式化并加入缓存，方便下一次查询
	if cacheBytes, err := json.Marshal(&user); err != nil {
		a.l.Error("failed to marshal auth user", zap.Uint("id", user.ID), zap.Error(err))
	} else {
		a.rdb.Set(rctx, cacheKey, cacheBytes, constants.CacheExpireAuthToken)
	}

	return &user, nil, http.StatusOK
}

// clearAuthCache 清理当前请求所用 token 的缓存（用户信息变更之后调用）
func (a *App) clearAuthCache(c echo.Context) {
	tokenString, err := bearerToken(c)
	if err != nil {
		return
	}

	// 经过 uuid 解析，保证和写入时的键一致
	uuidToken, err := uuid.Parse(tokenString)
	if err != nil {
		return
	}

	a.rdb.Del(c.Request().Context(), fmt.Sprintf(constants.CacheKeyAuthToken, uuidToken))
}
