package services

import (
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Cuisine{}, &entity.Restaurant{},
		&entity.MenuCategory{}, &entity.Menu{},
		&entity.Option{}, &entity.OptionValue{},
		&entity.Cart{}, &entity.CartItem{}, &entity.CartItemSelection{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func seedStatuses(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, name := range []string{
		entity.StatusConfirmed, entity.StatusPreparing,
		entity.StatusOutForDelivery, entity.StatusDelivered,
	} {
		require.NoError(t, db.Create(&entity.OrderStatus{StatusName: name}).Error)
	}
}

// seedMenuFixture creates one restaurant with a customizable pizza and a
// plain drink, mirroring the demo catalog.
func seedMenuFixture(t *testing.T, db *gorm.DB) (rest entity.Restaurant, pizza, cola entity.Menu) {
	t.Helper()

	rest = entity.Restaurant{Name: "Pizza Palace", Rating: 4.5, DeliveryTime: "25-35 min"}
	require.NoError(t, db.Create(&rest).Error)

	pizza = entity.Menu{
		MenuName: "Margherita Pizza", Price: 15.99, RestaurantID: rest.ID,
		Options: []entity.Option{
			{
				OptionName: "Size", OptionType: entity.OptionTypeSingle, SortOrder: 1,
				OptionValues: []entity.OptionValue{
					{ValueName: "Medium", SortOrder: 1},
					{ValueName: "Large", SortOrder: 2},
				},
			},
			{
				OptionName: "Toppings", OptionType: entity.OptionTypeMulti, SortOrder: 2,
				OptionValues: []entity.OptionValue{
					{ValueName: "Extra Cheese", SortOrder: 1},
					{ValueName: "Mushrooms", SortOrder: 2},
					{ValueName: "Pepperoni", SortOrder: 3},
				},
			},
		},
	}
	require.NoError(t, db.Create(&pizza).Error)

	cola = entity.Menu{MenuName: "Coca-Cola", Price: 2.50, RestaurantID: rest.ID}
	require.NoError(t, db.Create(&cola).Error)
	return rest, pizza, cola
}

func newCartFixture(t *testing.T) (*gorm.DB, *CartService, entity.Restaurant, entity.Menu, entity.Menu) {
	t.Helper()
	db := newTestDB(t)
	seedStatuses(t, db)
	rest, pizza, cola := seedMenuFixture(t, db)
	svc := NewCartService(db,
		repository.NewCartRepository(db), repository.NewMenuRepository(db), 5.00, 0.08)
	return db, svc, rest, pizza, cola
}
