package inits

import (
	"fmt"
	"recipe-box/app/server/config"

	"github.com/caarlos0/env/v11"
)

func Config() (*config.Config, error) {
	// 从环境变量自动映射配置
	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config from env: %w", err)
	}

	return cfg, nil
}
