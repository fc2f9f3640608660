package dto

type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Marker 每家餐厅一个标记，提示框与弹窗都显示名称
type Marker struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MapView 地图渲染所需的全部数据；Empty 为 true 时其余字段无意义
type MapView struct {
	Empty       bool
	Center      Point
	Zoom        int
	TileURL     string
	Attribution string
	Markers     []Marker
}
