package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"recipe-box/app/server/accounts"
	"recipe-box/app/server/models"
	"recipe-box/app/server/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TokenCreate 签发不透明 bearer token ，与用户一一对应：
// 重复签发返回同一个 token ，不产生新的身份。
func (a *App) TokenCreate(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req TokenCreateRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 没有写邮箱或密码
	if req.Email == nil || *req.Email == "" {
		return a.erFields(c, map[string]string{"email": "this field is required"})
	}
	if req.Password == nil || *req.Password == "" {
		return a.erFields(c, map[string]string{"password": "this field is required"})
	}

	// 校验凭据。凭据错误返回 400 ，响应中不能出现 token 字段
	user, err := accounts.VerifyCredential(rctx, a.db, *req.Email, *req.Password)
	if err != nil {
		if errors.Is(err, accounts.ErrInvalidCredentials) {
			return a.erFields(c, map[string]string{"non_field_errors": "unable to authenticate with provided credentials"})
		}
		a.l.Error("failed to verify credential", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 取回已有 token ，没有才创建
	var token *models.AuthToken
	var existing models.AuthToken
	if err := a.db.WithContext(rctx).First(&existing, "user_id = ?", user.ID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			a.l.Error("failed to find token", zap.Uint("userID", user.ID), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}

		if token, err = a.createToken(rctx, user.ID); err != nil {
			a.l.Error("failed to create token", zap.Uint("userID", user.ID), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	} else {
		token = &existing
	}

	return c.JSON(http.StatusOK, &TokenResponse{
		Token: utils.P(token.Key.String()),
	})
}

// createToken 为用户插入新的 token 记录。两个请求并发首次签发时只有一个能
// 通过 user_id 唯一索引，竞争失败的一方读取并返回已写入的记录。
func (a *App) createToken(ctx context.Context, userID uint) (*models.AuthToken, error) {
	token := models.AuthToken{
		Key:    uuid.New(),
		UserID: userID,
	}
	if err := a.db.WithContext(ctx).Create(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.AuthToken
			if err := a.db.WithContext(ctx).First(&existing, "user_id = ?", userID).Error; err != nil {
				return nil, fmt.Errorf("failed to find token after conflict: %w", err)
			}
			return &existing, nil
		}
		return nil, err
	}

	return &token, nil
}
