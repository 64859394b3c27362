package entity

import (
	"gorm.io/gorm"
)

type OptionValue struct {
	gorm.Model
	OptionID  uint   `json:"optionId"`
	Option    Option `json:"-"`
	ValueName string `json:"valueName"`

	// Options do not change the price in the current product; the column is
	// kept so a pricing rule becomes a seed change, not a schema change.
	PriceAdjustment float64 `json:"priceAdjustment"`
	SortOrder       int     `json:"sortOrder"`
}
