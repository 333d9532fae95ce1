package handlers

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	l   *zap.Logger   // 日志
	db  *gorm.DB      // 数据库
	rdb *redis.Client // Redis ，作为 token 认证的读穿缓存
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client) *App {
	return &App{
		l:   l,
		db:  db,
		rdb: rdb,
	}
}
