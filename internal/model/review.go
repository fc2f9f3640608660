package model

// DateLayout 评价日期在库中的存储格式，字典序与日历顺序一致
const DateLayout = "2006-01-02"

type Review struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	RestaurantID uint   `json:"restaurant_id" gorm:"column:restaurant_id;index"`
	UserID       uint   `json:"user_id" gorm:"column:user_id;index"`
	Date         string `json:"date" gorm:"column:date"`
	DishName     string `json:"dish_name" gorm:"column:dish_name"`
	Photo        []byte `json:"-" gorm:"column:photo"`
	Description  string `json:"description" gorm:"column:description"`
	Rating       int    `json:"rating" gorm:"column:rating;type:integer"`

	Restaurant Restaurant `json:"-" gorm:"foreignKey:RestaurantID;references:ID"`
	User       User       `json:"-" gorm:"foreignKey:UserID;references:ID"`
}

func (Review) TableName() string {
	return "reviews"
}
