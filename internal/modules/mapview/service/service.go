package service

import (
	"context"

	moduledto "restaurant-review-server/internal/modules/mapview/dto"
	restaurantdto "restaurant-review-server/internal/modules/restaurant/dto"
	platformservice "restaurant-review-server/internal/platform/service"

	"github.com/goccy/go-json"
)

// LocationSource 地图只依赖餐厅模块的坐标列表
type LocationSource interface {
	ListLocations(ctx context.Context) ([]restaurantdto.RestaurantLocation, error)
}

type Service struct {
	*platformservice.AppService
	locations LocationSource
}

func New(appService *platformservice.AppService, locations LocationSource) *Service {
	return &Service{
		AppService: appService,
		locations:  locations,
	}
}

// ViewMap 以第一家餐厅为中心；没有餐厅时返回 Empty 视图
func (s *Service) ViewMap(ctx context.Context) (*moduledto.MapView, error) {
	locations, err := s.locations.ListLocations(ctx)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return &moduledto.MapView{Empty: true}, nil
	}

	cfg := s.Config().Map
	view := &moduledto.MapView{
		Center:      moduledto.Point{Latitude: locations[0].Latitude, Longitude: locations[0].Longitude},
		Zoom:        cfg.Zoom,
		TileURL:     cfg.TileURL,
		Attribution: cfg.Attribution,
		Markers:     make([]moduledto.Marker, 0, len(locations)),
	}
	for _, l := range locations {
		view.Markers = append(view.Markers, moduledto.Marker{Name: l.Name, Latitude: l.Latitude, Longitude: l.Longitude})
	}
	return view, nil
}

// MarkersJSON 供前端脚本读取的标记数组
func MarkersJSON(view *moduledto.MapView) (string, error) {
	if view == nil || view.Markers == nil {
		return "[]", nil
	}
	b, err := json.Marshal(view.Markers)
	if err != nil {
		return "", platformservice.WrapInternal(err)
	}
	return string(b), nil
}
