package mapview

import (
	"restaurant-review-server/internal/modules/mapview/handler"
	"restaurant-review-server/internal/modules/mapview/service"
	platformservice "restaurant-review-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, locations service.LocationSource) *Module {
	moduleService := service.New(appService, locations)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
