package entity

import (
	"gorm.io/gorm"
)

type Cart struct {
	gorm.Model
	SessionID string `json:"sessionId" gorm:"uniqueIndex"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
