package modules

import (
	"restaurant-review-server/internal/modules/auth"
	authrepo "restaurant-review-server/internal/modules/auth/repo"
	"restaurant-review-server/internal/modules/mapview"
	"restaurant-review-server/internal/modules/panel"
	"restaurant-review-server/internal/modules/restaurant"
	restaurantrepo "restaurant-review-server/internal/modules/restaurant/repo"
	"restaurant-review-server/internal/modules/review"
	reviewrepo "restaurant-review-server/internal/modules/review/repo"
	platformservice "restaurant-review-server/internal/platform/service"

	"gorm.io/gorm"
)

type AppModules struct {
	Auth       *auth.Module
	Restaurant *restaurant.Module
	Review     *review.Module
	MapView    *mapview.Module
	Panel      *panel.Module
}

func New(
	appService *platformservice.AppService,
	userStore authrepo.UserStore,
	restaurantStore restaurantrepo.RestaurantStore,
	reviewStore reviewrepo.ReviewStore,
) *AppModules {
	authModule := auth.New(appService, userStore)
	restaurantModule := restaurant.New(appService, restaurantStore)

	return &AppModules{
		Auth:       authModule,
		Restaurant: restaurantModule,
		Review:     review.New(appService, reviewStore, restaurantModule.Service, authModule.Service),
		MapView:    mapview.New(appService, restaurantModule.Service),
		Panel:      panel.New(),
	}
}

// NewFromDB 使用 gorm 实现的存储装配全部模块
func NewFromDB(appService *platformservice.AppService, gdb *gorm.DB) *AppModules {
	return New(
		appService,
		authrepo.NewUserRepository(gdb),
		restaurantrepo.NewRestaurantRepository(gdb),
		reviewrepo.NewReviewRepository(gdb),
	)
}
