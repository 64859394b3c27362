package entity

import (
	"gorm.io/gorm"
)

const (
	OptionTypeSingle = "single" // size: picking one replaces the previous pick
	OptionTypeMulti  = "multi"  // toppings: toggled in and out, set semantics
)

type Option struct {
	gorm.Model
	OptionName string `json:"optionName"` // "Size", "Toppings"
	OptionType string `json:"optionType"` // single | multi
	SortOrder  int    `json:"sortOrder"`

	// preload option values บ่อย → keep
	OptionValues []OptionValue `json:"optionValues"`

	Menus []Menu `gorm:"many2many:menu_options;" json:"-"`
}
