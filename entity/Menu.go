package entity

import (
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	MenuName string  `json:"menuName"`
	Detail   string  `json:"detail"`
	Price    float64 `json:"price"`
	Picture  string  `json:"picture"`

	MenuCategoryID uint         `json:"menuCategoryId"`
	MenuCategory   MenuCategory `json:"-"` // preload เมื่อจำเป็น

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Options    []Option    `gorm:"many2many:menu_options;" json:"options"`
	OrderItems []OrderItem `json:"-"`
}

// Customizable reports whether the item exposes any option to pick from.
func (m *Menu) Customizable() bool {
	return len(m.Options) > 0
}
