package handlers

import (
	"net/http"
	"recipe-box/app/server/constants"

	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// MeGet 返回当前用户自己的资料
func (a *App) MeGet(c echo.Context) error {
	// 抓取 user 信息（认证）
	user, err, statusCode := a.authUser(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	return c.JSON(http.StatusOK, &UserInfo{
		Email: &user.Email,
		Name:  &user.Name,
	})
}

// MeUpdate 更新显示名称，密码可选（重新散列，不与旧密码比较）
func (a *App) MeUpdate(c echo.Context) error {
	// 抓取 user 信息（认证）
	user, err, statusCode := a.authUser(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req MeUpdateRequest
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		if len(*req.Password) < constants.PasswordMinLength {
			return a.erFields(c, map[string]string{"password": "password is too short"})
		}

		passwordHash, err := argon2id.CreateHash(*req.Password, argon2id.DefaultParams)
		if err != nil {
			a.l.Error("failed to hash password", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
		user.Password = passwordHash
	}

	// 更新用户信息
	if err := a.db.WithContext(rctx).Save(user).Error; err != nil {
		a.l.Error("failed to update user", zap.Uint("id", user.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 缓存里还是旧资料，清理掉
	a.clearAuthCache(c)

	return c.JSON(http.StatusOK, &UserInfo{
		Email: &user.Email,
		Name:  &user.Name,
	})
}
