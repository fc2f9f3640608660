package repo

import (
	"context"

	"restaurant-review-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const rowColumns = "rev.id, rev.restaurant_id, r.name AS restaurant_name, rev.date, rev.dish_name, rev.description, rev.rating, " +
	"CASE WHEN rev.photo IS NULL THEN 0 ELSE 1 END AS has_photo"

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(review).Error
}

// rows 以当前用户为前提的联表查询，结果按 rev.id 升序即插入顺序
func (r *ReviewRepository) rows(ctx context.Context, userID uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("reviews AS rev").
		Select(rowColumns).
		Joins("JOIN restaurants r ON rev.restaurant_id = r.id").
		Where("rev.user_id = ?", userID).
		Order("rev.id ASC")
}

func (r *ReviewRepository) List(ctx context.Context, filter ReviewFilter) ([]ReviewRow, error) {
	query := r.rows(ctx, filter.UserID).
		Where("rev.date BETWEEN ? AND ?", filter.StartDate, filter.EndDate)
	if filter.RestaurantName != "" {
		query = query.Where("r.name = ?", filter.RestaurantName)
	}

	var rows []ReviewRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID uint) ([]ReviewRow, error) {
	var rows []ReviewRow
	if err := r.rows(ctx, userID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindOwned 不读取照片列
func (r *ReviewRepository) FindOwned(ctx context.Context, userID uint, id uint) (*model.Review, error) {
	var review model.Review
	err := r.db.WithContext(ctx).
		Select("id", "restaurant_id", "user_id", "date", "dish_name", "description", "rating").
		Where("id = ? AND user_id = ?", id, userID).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) FindPhoto(ctx context.Context, userID uint, id uint) ([]byte, error) {
	var review model.Review
	err := r.db.WithContext(ctx).
		Select("id", "photo").
		Where("id = ? AND user_id = ?", id, userID).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return review.Photo, nil
}

// UpdateOwned 只更新菜品、描述、评分三列
func (r *ReviewRepository) UpdateOwned(ctx context.Context, userID uint, id uint, update ReviewUpdate) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"dish_name":   update.DishName,
			"description": update.Description,
			"rating":      update.Rating,
		})
	return result.RowsAffected, result.Error
}

func (r *ReviewRepository) DeleteOwned(ctx context.Context, userID uint, id uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Review{})
	return result.RowsAffected, result.Error
}
