package entity

import (
	"gorm.io/gorm"
)

// Seeded status names, in delivery order. "delivered" is terminal.
const (
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
)

type OrderStatus struct {
	gorm.Model
	StatusName string `json:"statusName"`

	// ไม่จำเป็นต้องส่ง relation ทุกครั้ง
	Orders []Order `json:"-"`
}
