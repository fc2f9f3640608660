package auth

import (
	"restaurant-review-server/internal/modules/auth/handler"
	"restaurant-review-server/internal/modules/auth/repo"
	"restaurant-review-server/internal/modules/auth/service"
	platformservice "restaurant-review-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, userStore repo.UserStore) *Module {
	moduleService := service.New(appService, userStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
