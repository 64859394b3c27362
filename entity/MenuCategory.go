package entity

import (
	"gorm.io/gorm"
)

// MenuCategory keeps the category -> items mapping explicit and ordered
// instead of hanging menus off arbitrary string keys.
type MenuCategory struct {
	gorm.Model
	CategoryName string `json:"categoryName"`
	SortOrder    int    `json:"sortOrder"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Menus []Menu `json:"menus"`
}
