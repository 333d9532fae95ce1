package handlers

import (
	"fmt"
	"net/http"
	"recipe-box/app/server/models"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// 方法不能有类型形参，所以这个不能用 (a *App)
func validateIDs[M models.Tag](db *gorm.DB, ids []uint) (error, int) {
	if len(ids) > 0 {
		var (
			count int64
			model M
		)
		if err := db.
			Model(&model).
			Where("id IN ?", ids).
			Count(&count).Error; err != nil {
			// 查询失败
			return fmt.Errorf("count: %w", err), http.StatusInternalServerError
		} else if int(count) != len(ids) {
			// 数量对不上
			return fmt.Errorf("count ids mismatch"), http.StatusBadRequest
		}
	}

	return nil, http.StatusOK
}

// parseID 解析路径参数里的记录 ID ，解析不了视作记录不存在
func parseID(c echo.Context) (uint, error) {
	idUint64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id: %s", c.Param("id"))
	}

	return uint(idUint64), nil
}
