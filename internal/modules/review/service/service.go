package service

import (
	"context"
	"fmt"
	"time"

	"restaurant-review-server/internal/model"
	restaurantdto "restaurant-review-server/internal/modules/restaurant/dto"
	moduledto "restaurant-review-server/internal/modules/review/dto"
	"restaurant-review-server/internal/modules/review/repo"
	platformservice "restaurant-review-server/internal/platform/service"
)

const (
	MsgFillRequired     = "Please fill in all required fields."
	MsgInvalidDate      = "Invalid date, expected YYYY-MM-DD."
	MsgDateRange        = "Start date must not be after end date."
	MsgReviewNotFound   = "Review not found."
	MsgPhotoNotFound    = "Photo not found."
	MsgRestaurantAbsent = "Restaurant not found."
	MsgUserAbsent       = "User not found."
	MsgReviewAdded      = "Review added successfully!"
	MsgReviewUpdated    = "Review updated successfully!"
	MsgReviewDeleted    = "Review deleted successfully!"

	// DefaultStartDate 查看点评时开始日期的默认值
	DefaultStartDate = "2020-01-01"
)

type RestaurantService interface {
	FindByID(ctx context.Context, id uint) (*model.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]restaurantdto.RestaurantOption, error)
}

type UserService interface {
	FindUserByID(ctx context.Context, id uint) (*model.User, error)
}

type Service struct {
	*platformservice.AppService
	reviewStore       repo.ReviewStore
	restaurantService RestaurantService
	userService       UserService
	now               func() time.Time
}

func New(appService *platformservice.AppService, reviewStore repo.ReviewStore, restaurantService RestaurantService, userService UserService) *Service {
	return &Service{
		AppService:        appService,
		reviewStore:       reviewStore,
		restaurantService: restaurantService,
		userService:       userService,
		now:               time.Now,
	}
}

// Today 当天日期，格式与库中一致
func (s *Service) Today() string {
	return s.now().Format(model.DateLayout)
}

// DefaultFilter 开始日期 2020-01-01，结束日期今天，不按餐厅过滤
func (s *Service) DefaultFilter(userID uint) moduledto.ViewFilter {
	return moduledto.ViewFilter{
		UserID:     userID,
		StartDate:  DefaultStartDate,
		EndDate:    s.Today(),
		Restaurant: moduledto.AllRestaurants,
	}
}

func (s *Service) Restaurants(ctx context.Context) ([]restaurantdto.RestaurantOption, error) {
	return s.restaurantService.ListRestaurants(ctx)
}

// AddReview 菜品与描述必填，评分限制在 [0,5]，照片可选。
// 引用的餐厅和用户必须存在，否则返回 not_found。
func (s *Service) AddReview(ctx context.Context, req moduledto.AddReviewRequest) (*model.Review, error) {
	if req.DishName == "" || req.Description == "" {
		return nil, platformservice.NewValidationError(MsgFillRequired)
	}

	date := req.Date
	if date == "" {
		date = s.Today()
	}
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	if _, err := s.restaurantService.FindByID(ctx, req.RestaurantID); err != nil {
		return nil, referenceError(err, MsgRestaurantAbsent)
	}
	if _, err := s.userService.FindUserByID(ctx, req.UserID); err != nil {
		return nil, referenceError(err, MsgUserAbsent)
	}

	var photo []byte
	if len(req.Photo) > 0 {
		upload := s.Config().Upload
		photo, err = EncodeJPEG(req.Photo, upload.JPEGQuality, upload.MaxPhotoPixels)
		if err != nil {
			return nil, err
		}
	}

	review := &model.Review{
		RestaurantID: req.RestaurantID,
		UserID:       req.UserID,
		Date:         date,
		DishName:     req.DishName,
		Photo:        photo,
		Description:  req.Description,
		Rating:       ClampRating(req.Rating),
	}
	if err := s.reviewStore.Create(ctx, review); err != nil {
		return nil, platformservice.WrapInternal(err)
	}
	return review, nil
}

// ViewReviews 只返回 filter.UserID 自己的点评，日期区间两端都包含
func (s *Service) ViewReviews(ctx context.Context, filter moduledto.ViewFilter) ([]moduledto.ReviewView, error) {
	start, err := normalizeDate(filter.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := normalizeDate(filter.EndDate)
	if err != nil {
		return nil, err
	}
	if start > end {
		return nil, platformservice.NewValidationError(MsgDateRange)
	}

	restaurantName := filter.Restaurant
	if restaurantName == moduledto.AllRestaurants {
		restaurantName = ""
	}

	rows, err := s.reviewStore.List(ctx, repo.ReviewFilter{
		UserID:         filter.UserID,
		StartDate:      start,
		EndDate:        end,
		RestaurantName: restaurantName,
	})
	if err != nil {
		return nil, platformservice.WrapInternal(err)
	}

	views := make([]moduledto.ReviewView, 0, len(rows))
	for _, row := range rows {
		views = append(views, moduledto.ReviewView{
			ID:             row.ID,
			RestaurantName: row.RestaurantName,
			Date:           row.Date,
			DishName:       row.DishName,
			Description:    row.Description,
			Rating:         row.Rating,
			Stars:          Stars(row.Rating),
			HasPhoto:       row.HasPhoto,
		})
	}
	return views, nil
}

// ListOwnReviews 编辑和删除页面的下拉项
func (s *Service) ListOwnReviews(ctx context.Context, userID uint) ([]moduledto.ReviewOption, error) {
	rows, err := s.reviewStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, platformservice.WrapInternal(err)
	}
	options := make([]moduledto.ReviewOption, 0, len(rows))
	for _, row := range rows {
		options = append(options, moduledto.ReviewOption{
			ID:    row.ID,
			Label: fmt.Sprintf("%s - %s - %s", row.RestaurantName, row.Date, row.DishName),
		})
	}
	return options, nil
}

func (s *Service) GetOwnReview(ctx context.Context, userID uint, reviewID uint) (*moduledto.ReviewDetail, error) {
	review, err := s.reviewStore.FindOwned(ctx, userID, reviewID)
	if err != nil {
		return nil, platformservice.FromStore(err, MsgReviewNotFound)
	}
	return &moduledto.ReviewDetail{
		ID:           review.ID,
		RestaurantID: review.RestaurantID,
		Date:         review.Date,
		DishName:     review.DishName,
		Description:  review.Description,
		Rating:       review.Rating,
	}, nil
}

// EditReview 仅更新菜品、描述、评分；非本人的点评按不存在处理
func (s *Service) EditReview(ctx context.Context, userID uint, reviewID uint, req moduledto.EditReviewRequest) error {
	if req.DishName == "" || req.Description == "" {
		return platformservice.NewValidationError(MsgFillRequired)
	}

	affected, err := s.reviewStore.UpdateOwned(ctx, userID, reviewID, repo.ReviewUpdate{
		DishName:    req.DishName,
		Description: req.Description,
		Rating:      ClampRating(req.Rating),
	})
	if err != nil {
		return platformservice.WrapInternal(err)
	}
	if affected == 0 {
		// 部分驱动在取值未变化时返回 0 行，需再确认记录是否存在
		if _, err := s.reviewStore.FindOwned(ctx, userID, reviewID); err != nil {
			return platformservice.FromStore(err, MsgReviewNotFound)
		}
	}
	return nil
}

func (s *Service) DeleteReview(ctx context.Context, userID uint, reviewID uint) error {
	affected, err := s.reviewStore.DeleteOwned(ctx, userID, reviewID)
	if err != nil {
		return platformservice.WrapInternal(err)
	}
	if affected == 0 {
		return platformservice.NewNotFoundError(MsgReviewNotFound)
	}
	return nil
}

// GetPhoto 返回本人点评的 JPEG 照片
func (s *Service) GetPhoto(ctx context.Context, userID uint, reviewID uint) ([]byte, error) {
	photo, err := s.reviewStore.FindPhoto(ctx, userID, reviewID)
	if err != nil {
		return nil, platformservice.FromStore(err, MsgPhotoNotFound)
	}
	if len(photo) == 0 {
		return nil, platformservice.NewNotFoundError(MsgPhotoNotFound)
	}
	return photo, nil
}

func normalizeDate(s string) (string, error) {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return "", platformservice.NewValidationError(MsgInvalidDate)
	}
	return t.Format(model.DateLayout), nil
}

// referenceError 被引用记录不存在时统一返回 not_found
func referenceError(err error, message string) error {
	if se, ok := platformservice.AsServiceError(err); ok && se.Code == platformservice.ErrorCodeNotFound {
		return platformservice.NewNotFoundError(message)
	}
	return err
}
