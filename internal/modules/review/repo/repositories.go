package repo

import (
	"context"

	"restaurant-review-server/internal/model"
)

// ReviewRow 列表查询结果，不携带照片内容
type ReviewRow struct {
	ID             uint
	RestaurantID   uint
	RestaurantName string
	Date           string
	DishName       string
	Description    string
	Rating         int
	HasPhoto       bool
}

// ReviewFilter RestaurantName 为空时不按餐厅过滤
type ReviewFilter struct {
	UserID         uint
	StartDate      string
	EndDate        string
	RestaurantName string
}

type ReviewUpdate struct {
	DishName    string
	Description string
	Rating      int
}

type ReviewStore interface {
	Create(ctx context.Context, review *model.Review) error
	List(ctx context.Context, filter ReviewFilter) ([]ReviewRow, error)
	ListByUser(ctx context.Context, userID uint) ([]ReviewRow, error)
	FindOwned(ctx context.Context, userID uint, id uint) (*model.Review, error)
	FindPhoto(ctx context.Context, userID uint, id uint) ([]byte, error)
	UpdateOwned(ctx context.Context, userID uint, id uint, update ReviewUpdate) (int64, error)
	DeleteOwned(ctx context.Context, userID uint, id uint) (int64, error)
}
