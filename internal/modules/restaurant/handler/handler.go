package handler

import restaurantservice "restaurant-review-server/internal/modules/restaurant/service"

type Handler struct {
	restaurantService *restaurantservice.Service
}

func New(restaurantService *restaurantservice.Service) *Handler {
	return &Handler{restaurantService: restaurantService}
}
