package dto

// AddRestaurantForm 表单原始输入，坐标保留字符串便于回填
type AddRestaurantForm struct {
	Name      string `form:"name"`
	Address   string `form:"address"`
	City      string `form:"city"`
	Latitude  string `form:"latitude"`
	Longitude string `form:"longitude"`
}

type AddRestaurantRequest struct {
	Name      string
	Address   string
	City      string
	Latitude  float64
	Longitude float64
}

// RestaurantOption 下拉选择项
type RestaurantOption struct {
	ID   uint
	Name string
}

// RestaurantLocation 地图标记所需字段
type RestaurantLocation struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
