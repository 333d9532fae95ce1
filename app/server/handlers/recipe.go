package handlers

import (
	"context"
	"errors"
	"net/http"
	"recipe-box/app/server/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (a *App) recipeMapFields(req *RecipeInfoInput, recipe *models.Recipe) {
	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.TimeMinutes != nil {
		recipe.TimeMinutes = *req.TimeMinutes
	}
	if req.Price != nil {
		recipe.Price = *req.Price
	}
	if req.Link != nil {
		recipe.Link = req.Link
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	// 标签关联在各自的 handler 里单独处理
}

// recipeFetchTags 校验并取回请求引用的标签。只要求标签存在，不要求属于同一用户
func (a *App) recipeFetchTags(ctx context.Context, ids []uint) ([]models.Tag, error, int) {
	if err, statusCode := validateIDs[models.Tag](a.db.WithContext(ctx), ids); err != nil {
		return nil, err, statusCode
	}

	tags := []models.Tag{}
	if len(ids) > 0 {
		if err := a.db.WithContext(ctx).Find(&tags, "id IN ?", ids).Error; err != nil {
			return nil, err, http.StatusInternalServerError
		}
	}

	return tags, nil, http.StatusOK
}

// recipeInfo 组装详情形态的响应（列表同样使用详情形态）
func (a *App) recipeInfo(recipe *models.Recipe) *RecipeInfoWithID {
	tagIds := []uint{}
	for _, tag := range recipe.Tags {
		tagIds = append(tagIds, tag.ID)
	}

	return &RecipeInfoWithID{
		Id:          &recipe.ID,
		Title:       &recipe.Title,
		TimeMinutes: &recipe.TimeMinutes,
		Price:       &recipe.Price,
		Link:        recipe.Link,
		Description: &recipe.Description,
		TagIds:      &tagIds,
	}
}

func (a *App) RecipeCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	user, err, statusCode := a.authUser(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req RecipeInfoInput
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 必填字段，标题不允许为空白
	missing := map[string]string{}
	if req.Title == nil {
		missing["title"] = "this field is required"
	} else if *req.Title == "" {
		missing["title"] = "this field may not be blank"
	}
	if req.TimeMinutes == nil {
		missing["time_minutes"] = "this field is required"
	}
	if req.Price == nil {
		missing["price"] = "this field is required"
	}
	if len(missing) > 0 {
		return a.erFields(c, missing)
	}

	// 创建：所属用户永远是发起调用的用户，请求体里写什么都不认
	recipe := models.Recipe{
		UserID: user.ID,
	}
	a.recipeMapFields(&req, &recipe)

	if req.TagIds != nil {
		tags, err, statusCode := a.recipeFetchTags(rctx, *req.TagIds)
		if err != nil {
			a.l.Error("failed to validate tags", zap.Error(err))
			return a.er(c, statusCode)
		}
		recipe.Tags = tags
	}

	if err := a.db.WithContext(rctx).Create(&recipe).Error; err != nil {
		a.l.Error("failed to create recipe", zap.Any("recipe", recipe), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, a.recipeInfo(&recipe))
}

func (a *App) RecipeList(c echo.Context) error {
	// 抓取 user 信息（认证）
	user, err, statusCode := a.authUser(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 只取自己的记录，新的在前
	var recipes []models.Recipe
	if err := a.db.WithContext(rctx).
		Preload("Tags").
		Where("user_id = ?", user.ID).
		Order("id DESC").
		Find(&recipes).Error; err != nil {
		a.l.Error("failed to get recipe list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resRecipes := []RecipeInfoWithID{}
	for i := range recipes {
		resRecipes = append(resRecipes, *a.recipeInfo(&recipes[i]))
	}

	return c.JSON(http.StatusOK, resRecipes)
}

func (a *App) RecipeInfoGet(c echo.Context) error {
	// 抓取 user 信息（认证）
	user, err, statusCode := a.authUser(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusNotFound)
	}

	rctx := c.Request().Context()

	// 从数据库中获得。查询始终带上所属用户：不属于自己的记录等同于不存在
	var recipe models.Recipe
	if err := a.db.WithContext(rctx).Preload("Tags").First(&recipe, "id = ? AND user_id = ?", id, user.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get recipe", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	return c.JSON(http.StatusOK, a.recipeInfo(&recipe))
}

func (a *App) RecipeInfoUpdate(c echo.Context) error {
	// 抓取 user 信息（认证）
	user, err, statusCode := a.authUser(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusNotFound)
	}

	rctx := c.Request().Context()

	// 绑定请求体。请求体里的 user 字段不在结构内，绑定时直接丢弃
	var req RecipeInfoInput
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 从数据库中获得
	var recipe models.Recipe
	if err := a.db.WithContext(rctx).Preload("Tags").First(&recipe, "id = ? AND user_id = ?", id, user.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get recipe", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	a.recipeMapFields(&req, &recipe)

	// 更新信息（标签单独替换，不跟随行更新）
	if err := a.db.WithContext(rctx).Omit(clause.Associations).Save(&recipe).Error; err != nil {
		a.l.Error("failed to update recipe", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	if req.TagIds != nil {
		tags, err, statusCode := a.recipeFetchTags(rctx, *req.TagIds)
		if err != nil {
			a.l.Error("failed to validate tags", zap.Error(err))
			return a.er(c, statusCode)
		}

		if err := a.db.WithContext(rctx).Model(&recipe).Association("Tags").Replace(tags); err != nil {
			a.l.Error("failed to replace tags", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
		recipe.Tags = tags
	}

	return c.JSON(http.StatusOK, a.recipeInfo(&recipe))
}

func (a *App) RecipeDelete(c echo.Context) error {
	// 抓取 user 信息（认证）
	user, err, statusCode := a.authUser(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, statusCode)
	}

	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusNotFound)
	}

	rctx := c.Request().Context()

	// 先按所属用户确认记录存在，不存在（或不属于自己）都是 404
	var recipe models.Recipe
	if err := a.db.WithContext(rctx).First(&recipe, "id = ? AND user_id = ?", id, user.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to get recipe", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 删除
	if err := a.db.WithContext(rctx).Delete(&recipe).Error; err != nil {
		a.l.Error("failed to delete recipe", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusNoContent)
}
