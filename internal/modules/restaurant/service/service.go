package service

import (
	"context"

	"restaurant-review-server/internal/model"
	moduledto "restaurant-review-server/internal/modules/restaurant/dto"
	"restaurant-review-server/internal/modules/restaurant/repo"
	platformservice "restaurant-review-server/internal/platform/service"
)

const (
	MsgFillAllFields      = "Please fill in all fields."
	MsgRestaurantAdded    = "Restaurant added successfully!"
	MsgRestaurantNotFound = "Restaurant not found."
)

type Service struct {
	*platformservice.AppService
	restaurantStore repo.RestaurantStore
}

func New(appService *platformservice.AppService, restaurantStore repo.RestaurantStore) *Service {
	return &Service{
		AppService:      appService,
		restaurantStore: restaurantStore,
	}
}

// AddRestaurant 五个字段都必须为真值；坐标恰好为 0.0 同样视为缺失，
// 因此位于赤道或本初子午线上的餐厅无法录入。
func (s *Service) AddRestaurant(ctx context.Context, req moduledto.AddRestaurantRequest) (*model.Restaurant, error) {
	if req.Name == "" || req.Address == "" || req.City == "" || req.Latitude == 0 || req.Longitude == 0 {
		return nil, platformservice.NewValidationError(MsgFillAllFields)
	}

	restaurant := &model.Restaurant{
		Name:      req.Name,
		Address:   req.Address,
		City:      req.City,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if err := s.restaurantStore.Create(ctx, restaurant); err != nil {
		return nil, platformservice.WrapInternal(err)
	}
	return restaurant, nil
}

// ListRestaurants 供下拉选择使用的 (id, name)
func (s *Service) ListRestaurants(ctx context.Context) ([]moduledto.RestaurantOption, error) {
	restaurants, err := s.restaurantStore.List(ctx)
	if err != nil {
		return nil, platformservice.WrapInternal(err)
	}
	options := make([]moduledto.RestaurantOption, 0, len(restaurants))
	for _, r := range restaurants {
		options = append(options, moduledto.RestaurantOption{ID: r.ID, Name: r.Name})
	}
	return options, nil
}

// ListLocations 供地图使用的 (name, lat, lon)
func (s *Service) ListLocations(ctx context.Context) ([]moduledto.RestaurantLocation, error) {
	restaurants, err := s.restaurantStore.List(ctx)
	if err != nil {
		return nil, platformservice.WrapInternal(err)
	}
	locations := make([]moduledto.RestaurantLocation, 0, len(restaurants))
	for _, r := range restaurants {
		locations = append(locations, moduledto.RestaurantLocation{Name: r.Name, Latitude: r.Latitude, Longitude: r.Longitude})
	}
	return locations, nil
}

func (s *Service) FindByID(ctx context.Context, id uint) (*model.Restaurant, error) {
	restaurant, err := s.restaurantStore.FindByID(ctx, id)
	if err != nil {
		return nil, platformservice.FromStore(err, MsgRestaurantNotFound)
	}
	return restaurant, nil
}
