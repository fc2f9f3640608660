package service

import "restaurant-review-server/internal/config"

// AppService 各模块共享的运行时依赖，目前只提供配置快照
type AppService struct {
	provider func() config.Config
}

// NewAppService provider 为空时使用 config.Get
func NewAppService(provider func() config.Config) *AppService {
	if provider == nil {
		provider = config.Get
	}
	return &AppService{provider: provider}
}

// NewStaticAppService 使用固定配置，主要用于测试
func NewStaticAppService(cfg config.Config) *AppService {
	return &AppService{provider: func() config.Config { return cfg }}
}

func (s *AppService) Config() config.Config {
	return s.provider()
}
