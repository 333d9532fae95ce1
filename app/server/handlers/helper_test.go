package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"recipe-box/app/server/accounts"
	"recipe-box/app/server/models"
	"recipe-box/app/server/utils"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testApp struct {
	app *App
	e   *echo.Echo
	db  *gorm.DB
}

// newTestApp 以内存 sqlite 和 miniredis 搭建完整的 handler app
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.Tag{},
		&models.Recipe{},
	))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	app := NewApp(zap.NewNop(), db, rdb)
	e := echo.New()
	app.RegisterRoutes(e)

	return &testApp{app: app, e: e, db: db}
}

func (ta *testApp) createUser(t *testing.T, email string, password string) *models.User {
	t.Helper()

	user, err := accounts.CreateUser(context.Background(), ta.db, email, password, "Test Name")
	require.NoError(t, err)
	return user
}

func (ta *testApp) issueToken(t *testing.T, user *models.User) string {
	t.Helper()

	token := models.AuthToken{
		Key:    uuid.New(),
		UserID: user.ID,
	}
	require.NoError(t, ta.db.Create(&token).Error)
	return token.Key.String()
}

func (ta *testApp) createRecipe(t *testing.T, user *models.User, title string) *models.Recipe {
	t.Helper()

	recipe := models.Recipe{
		Title:       title,
		Description: "Sample description",
		TimeMinutes: 22,
		Price:       decimal.RequireFromString("5.20"),
		Link:        utils.P("http://example.com/recipe.pdf"),
		UserID:      user.ID,
	}
	require.NoError(t, ta.db.Create(&recipe).Error)
	return &recipe
}

func (ta *testApp) createTag(t *testing.T, user *models.User, name string) *models.Tag {
	t.Helper()

	tag := models.Tag{
		Name:   name,
		UserID: user.ID,
	}
	require.NoError(t, ta.db.Create(&tag).Error)
	return &tag
}

// request 把请求直接打进 echo ，token 为空表示不带认证头
func (ta *testApp) request(t *testing.T, method string, path string, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ta.e.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}
