package handlers

import (
	"net/http"
	"recipe-box/app/server/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) TagCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	user, err, statusCode := a.authUser(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req TagInfoInput
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if req.Name == nil || *req.Name == "" {
		return a.erFields(c, map[string]string{"name": "this field is required"})
	}

	// 创建：所属用户永远是发起调用的用户
	tag := models.Tag{
		Name:   *req.Name,
		UserID: user.ID,
	}
	if err := a.db.WithContext(rctx).Create(&tag).Error; err != nil {
		a.l.Error("failed to create tag", zap.Any("tag", tag), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, &TagInfoWithID{
		Id:   &tag.ID,
		Name: &tag.Name,
	})
}

func (a *App) TagList(c echo.Context) error {
	// 抓取 user 信息（认证）
	user, err, statusCode := a.authUser(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 只取自己的标签
	var tags []models.Tag
	if err := a.db.WithContext(rctx).
		Where("user_id = ?", user.ID).
		Order("name DESC").
		Find(&tags).Error; err != nil {
		a.l.Error("failed to get tag list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resTags := []TagInfoWithID{}
	for i := range tags {
		resTags = append(resTags, TagInfoWithID{
			Id:   &tags[i].ID,
			Name: &tags[i].Name,
		})
	}

	return c.JSON(http.StatusOK, resTags)
}
