package restaurant

import (
	"restaurant-review-server/internal/modules/restaurant/handler"
	"restaurant-review-server/internal/modules/restaurant/repo"
	"restaurant-review-server/internal/modules/restaurant/service"
	platformservice "restaurant-review-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, restaurantStore repo.RestaurantStore) *Module {
	moduleService := service.New(appService, restaurantStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
