package model

type Restaurant struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Name      string  `json:"name" gorm:"column:name"`
	Address   string  `json:"address" gorm:"column:address"`
	City      string  `json:"city" gorm:"column:city"`
	Latitude  float64 `json:"latitude" gorm:"column:latitude;type:real"`
	Longitude float64 `json:"longitude" gorm:"column:longitude;type:real"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
