package handlers

import (
	"net/http"
	"recipe-box/app/server/utils"

	"github.com/labstack/echo/v4"
)

func (a *App) er(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, &ErrorMessage{
		Message: utils.P(http.StatusText(statusCode)),
	})
}

// erFields 返回带字段级信息的 400
func (a *App) erFields(c echo.Context, fields map[string]string) error {
	return c.JSON(http.StatusBadRequest, &ValidationErrorMessage{
		Errors: fields,
	})
}
