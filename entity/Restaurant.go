package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name         string  `json:"name"`
	Picture      string  `json:"picture"`
	Rating       float64 `json:"rating"`       // 0.0 - 5.0
	DeliveryTime string  `json:"deliveryTime"` // free text, e.g. "25-35 min"
	PriceRange   string  `json:"priceRange"`   // "$", "$$", "$$$"

	Cuisines []Cuisine `gorm:"many2many:restaurant_cuisines;" json:"cuisines"`

	// preload เมื่อจำเป็น
	Categories []MenuCategory `json:"-"`
	Orders     []Order        `json:"-"`
}
