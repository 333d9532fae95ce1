package handlers

import "github.com/labstack/echo/v4"

// RegisterRoutes 注册全部路由。未注册的方法（例如 POST /api/user/me ）由
// echo 路由自动返回 405 。
func (a *App) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	user := api.Group("/user")
	user.POST("/create", a.UserCreate)
	user.POST("/token", a.TokenCreate)
	user.GET("/me", a.MeGet)
	user.PATCH("/me", a.MeUpdate)
	user.PUT("/me", a.MeUpdate)

	recipe := api.Group("/recipe")
	recipe.GET("/recipes", a.RecipeList)
	recipe.POST("/recipes", a.RecipeCreate)
	recipe.GET("/recipes/:id", a.RecipeInfoGet)
	recipe.PATCH("/recipes/:id", a.RecipeInfoUpdate)
	recipe.PUT("/recipes/:id", a.RecipeInfoUpdate)
	recipe.DELETE("/recipes/:id", a.RecipeDelete)
	recipe.GET("/tags", a.TagList)
	recipe.POST("/tags", a.TagCreate)
}
