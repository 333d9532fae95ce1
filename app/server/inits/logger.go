package inits

import (
	"fmt"
	"go.uber.org/zap"
)

func Logger(debugMode bool) (l *zap.Logger, err error) {
	// 统一带上服务名，多服务共用日志管道时用于区分来源
	opts := []zap.Option{
		zap.Fields(zap.String("service", "recipe-box")),
	}

	if debugMode {
		l, err = zap.NewDevelopment(opts...)
	} else {
		l, err = zap.NewProduction(opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return l, nil
}
