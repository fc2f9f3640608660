package repo

import (
	"context"

	"restaurant-review-server/internal/model"
)

type RestaurantStore interface {
	Create(ctx context.Context, restaurant *model.Restaurant) error
	FindByID(ctx context.Context, id uint) (*model.Restaurant, error)
	List(ctx context.Context) ([]model.Restaurant, error)
}
