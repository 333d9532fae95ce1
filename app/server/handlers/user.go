package handlers

import (
	"errors"
	"net/http"
	"recipe-box/app/server/accounts"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserCreate 开放注册，不需要认证
func (a *App) UserCreate(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req UserCreateRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	var (
		email    string
		password string
		name     string
	)
	if req.Email != nil {
		email = *req.Email
	}
	if req.Password != nil {
		password = *req.Password
	}
	if req.Name != nil {
		name = *req.Name
	}

	// 创建用户
	user, err := accounts.CreateUser(rctx, a.db, email, password, name)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrEmailRequired):
			return a.erFields(c, map[string]string{"email": err.Error()})
		case errors.Is(err, accounts.ErrPasswordTooShort):
			return a.erFields(c, map[string]string{"password": err.Error()})
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return a.erFields(c, map[string]string{"email": "user with this email already exists"})
		default:
			a.l.Error("failed to create user", zap.String("email", email), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 响应里永远不包含密码
	return c.JSON(http.StatusCreated, &UserInfo{
		Email: &user.Email,
		Name:  &user.Name,
	})
}
