package handlers

import "github.com/shopspring/decimal"

type ErrorMessage struct {
	Message *string `json:"message"`
}

// ValidationErrorMessage 按字段返回校验失败信息
type ValidationErrorMessage struct {
	Errors map[string]string `json:"errors"`
}

type UserCreateRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
}

type UserInfo struct {
	Email *string `json:"email"`
	Name  *string `json:"name"`
}

type MeUpdateRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

type TokenCreateRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type TokenResponse struct {
	Token *string `json:"token"`
}

type RecipeInfoInput struct {
	Title       *string          `json:"title"`
	TimeMinutes *int             `json:"time_minutes"`
	Price       *decimal.Decimal `json:"price"`
	Link        *string          `json:"link"`
	Description *string          `json:"description"`
	TagIds      *[]uint          `json:"tags"`
}

type RecipeInfoWithID struct {
	Id          *uint            `json:"id"`
	Title       *string          `json:"title"`
	TimeMinutes *int             `json:"time_minutes"`
	Price       *decimal.Decimal `json:"price"`
	Link        *string          `json:"link"`
	Description *string          `json:"description"`
	TagIds      *[]uint          `json:"tags"`
}

type TagInfoInput struct {
	Name *string `json:"name"`
}

type TagInfoWithID struct {
	Id   *uint   `json:"id"`
	Name *string `json:"name"`
}
