package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Taxes       float64 `json:"taxes"`
	Total       float64 `json:"total"`
	Note        string  `json:"note"` // special instructions from checkout

	EstimatedDelivery time.Time `json:"estimatedDelivery"`

	SessionID string `json:"sessionId" gorm:"index"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload เมื่อจำเป็น

	OrderStatusID uint        `json:"orderStatusId"`
	OrderStatus   OrderStatus `json:"orderStatus"`

	// preload แค่ตอน detail
	OrderItems []OrderItem `json:"-"`
}
