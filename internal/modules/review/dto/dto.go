package dto

// AddReviewForm 添加点评表单的回填数据
type AddReviewForm struct {
	RestaurantID uint
	Date         string
	DishName     string
	Description  string
	Rating       int
}

type AddReviewRequest struct {
	RestaurantID uint
	UserID       uint
	Date         string
	DishName     string
	Description  string
	Rating       int
	Photo        []byte // 原始上传内容，为空表示未上传
}

// ViewFilter Restaurant 为 AllRestaurants 或空时不按餐厅过滤
type ViewFilter struct {
	UserID     uint
	StartDate  string
	EndDate    string
	Restaurant string
}

// AllRestaurants 不按餐厅过滤的保留值
const AllRestaurants = "All"

type ReviewView struct {
	ID             uint
	RestaurantName string
	Date           string
	DishName       string
	Description    string
	Rating         int
	Stars          string
	HasPhoto       bool
}

// ReviewOption 编辑/删除时的下拉项，Label 形如 "餐厅 - 日期 - 菜品"
type ReviewOption struct {
	ID    uint
	Label string
}

type ReviewDetail struct {
	ID           uint
	RestaurantID uint
	Date         string
	DishName     string
	Description  string
	Rating       int
}

type EditReviewRequest struct {
	DishName    string
	Description string
	Rating      int
}
