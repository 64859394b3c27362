package entity

import (
	"gorm.io/gorm"
)

type Cuisine struct {
	gorm.Model
	Name string `gorm:"uniqueIndex" json:"name"`

	Restaurants []Restaurant `gorm:"many2many:restaurant_cuisines;" json:"-"`
}
