package handler

import mapviewservice "restaurant-review-server/internal/modules/mapview/service"

type Handler struct {
	mapService *mapviewservice.Service
}

func New(mapService *mapviewservice.Service) *Handler {
	return &Handler{mapService: mapService}
}
