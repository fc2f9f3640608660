package review

import (
	"restaurant-review-server/internal/modules/review/handler"
	"restaurant-review-server/internal/modules/review/repo"
	"restaurant-review-server/internal/modules/review/service"
	platformservice "restaurant-review-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(
	appService *platformservice.AppService,
	reviewStore repo.ReviewStore,
	restaurantService service.RestaurantService,
	userService service.UserService,
) *Module {
	moduleService := service.New(appService, reviewStore, restaurantService, userService)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
