package middleware

import (
	"restaurant-review-server/internal/config"
	"restaurant-review-server/internal/platform/service"
	"restaurant-review-server/internal/testutils"
)

func newTestService(mutate func(cfg *config.Config)) *service.AppService {
	cfg := testutils.TestConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return service.NewStaticAppService(cfg)
}
