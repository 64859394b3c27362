package configs

import (
	"backend/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB opens the store. The default DSN is an in-memory sqlite
// database: all catalog data is mock data seeded at startup and nothing is
// meant to survive a restart.
func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.Cuisine{}, &entity.Restaurant{},
		&entity.MenuCategory{}, &entity.Menu{},
		&entity.Option{}, &entity.OptionValue{},
		&entity.Cart{}, &entity.CartItem{}, &entity.CartItemSelection{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderItem{},
	)
}
