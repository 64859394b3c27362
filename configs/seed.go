package configs

import (
	"log"
	"time"

	"backend/entity"
)

// Seed ค่า lookup/status เริ่มต้น
func SeedLookups() error {
	db := DB()

	// Order statuses, in delivery order. IDs follow insertion order so the
	// tracker can walk them by name lookup, not by ID arithmetic.
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: entity.StatusConfirmed})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: entity.StatusPreparing})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: entity.StatusOutForDelivery})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: entity.StatusDelivered})

	for _, name := range []string{
		"Pizza", "Italian", "Burgers", "American", "Sushi", "Japanese",
		"Pasta", "Indian", "Curry", "Salads", "Healthy", "Mexican", "Fast Food",
	} {
		db.FirstOrCreate(&entity.Cuisine{}, entity.Cuisine{Name: name})
	}
	return nil
}

// SeedCatalog fills the restaurant/menu reference data. All of it is mock
// data; the eventual real backend would own this.
func SeedCatalog() error {
	db := DB()

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		log.Println("catalog already seeded")
		return nil
	}

	cuisine := func(name string) entity.Cuisine {
		var c entity.Cuisine
		db.Where("name = ?", name).First(&c)
		return c
	}

	restaurants := []struct {
		name, picture, deliveryTime, priceRange string
		rating                                  float64
		cuisines                                []string
	}{
		{"Pizza Palace", "https://images.unsplash.com/photo-1513104890138-7c749659a591?q=80&w=870&auto=format&fit=crop", "25-35 min", "$$", 4.5, []string{"Pizza", "Italian"}},
		{"Burger Barn", "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?q=80&w=999&auto=format&fit=crop", "20-30 min", "$", 4.2, []string{"Burgers", "American"}},
		{"Sushi Spot", "https://images.unsplash.com/photo-1579871494447-9811cf80d66c?q=80&w=870&auto=format&fit=crop", "30-40 min", "$$$", 4.8, []string{"Sushi", "Japanese"}},
		{"Pasta Place", "https://images.unsplash.com/photo-1563379926898-05f4575a457f?q=80&w=870&auto=format&fit=crop", "35-45 min", "$$", 4.0, []string{"Italian", "Pasta"}},
		{"Curry Corner", "https://images.unsplash.com/photo-1585937421612-70a008356fbe?q=80&w=870&auto=format&fit=crop", "30-40 min", "$$", 4.6, []string{"Indian", "Curry"}},
		{"Salad Station", "https://images.unsplash.com/photo-1540189549336-e6e99c3679fe?q=80&w=387&auto=format&fit=crop", "15-25 min", "$", 4.1, []string{"Salads", "Healthy"}},
	}

	for _, r := range restaurants {
		rest := entity.Restaurant{
			Name:         r.name,
			Picture:      r.picture,
			Rating:       r.rating,
			DeliveryTime: r.deliveryTime,
			PriceRange:   r.priceRange,
		}
		for _, cn := range r.cuisines {
			rest.Cuisines = append(rest.Cuisines, cuisine(cn))
		}
		if err := db.Create(&rest).Error; err != nil {
			return err
		}
	}

	return seedPizzaPalaceMenu()
}

func seedPizzaPalaceMenu() error {
	db := DB()

	var palace entity.Restaurant
	if err := db.Where("name = ?", "Pizza Palace").First(&palace).Error; err != nil {
		return err
	}

	size := entity.Option{
		OptionName: "Size", OptionType: entity.OptionTypeSingle, SortOrder: 1,
		OptionValues: []entity.OptionValue{
			{ValueName: "Medium", SortOrder: 1},
			{ValueName: "Large", SortOrder: 2},
		},
	}
	toppings := entity.Option{
		OptionName: "Toppings", OptionType: entity.OptionTypeMulti, SortOrder: 2,
		OptionValues: []entity.OptionValue{
			{ValueName: "Extra Cheese", SortOrder: 1},
			{ValueName: "Mushrooms", SortOrder: 2},
			{ValueName: "Pepperoni", SortOrder: 3},
		},
	}
	if err := db.Create(&size).Error; err != nil {
		return err
	}
	if err := db.Create(&toppings).Error; err != nil {
		return err
	}

	categories := []entity.MenuCategory{
		{
			CategoryName: "Appetizers", SortOrder: 1, RestaurantID: palace.ID,
			Menus: []entity.Menu{
				{MenuName: "Garlic Bread", Detail: "Crusty bread with garlic butter.", Price: 5.99, RestaurantID: palace.ID,
					Picture: "https://images.unsplash.com/photo-1604382354936-07c5d9983bd3?q=80&w=580&auto=format&fit=crop"},
				{MenuName: "Caprese Salad", Detail: "Fresh mozzarella, tomatoes, and basil.", Price: 7.50, RestaurantID: palace.ID},
			},
		},
		{
			CategoryName: "Main Courses", SortOrder: 2, RestaurantID: palace.ID,
			Menus: []entity.Menu{
				{MenuName: "Margherita Pizza", Detail: "Classic cheese and tomato pizza.", Price: 12.99, RestaurantID: palace.ID,
					Picture: "https://images.unsplash.com/photo-1594007654729-407eedc4be65?q=80&w=687&auto=format&fit=crop",
					Options: []entity.Option{size, toppings}},
				{MenuName: "Pepperoni Pizza", Detail: "Pizza with generous pepperoni.", Price: 14.99, RestaurantID: palace.ID,
					Picture: "https://images.unsplash.com/photo-1534308983496-4fabb1a015ee?q=80&w=876&auto=format&fit=crop"},
				{MenuName: "Spaghetti Carbonara", Detail: "Creamy pasta with bacon and egg.", Price: 13.50, RestaurantID: palace.ID},
			},
		},
		{
			CategoryName: "Drinks", SortOrder: 3, RestaurantID: palace.ID,
			Menus: []entity.Menu{
				{MenuName: "Coca-Cola", Price: 2.50, RestaurantID: palace.ID},
				{MenuName: "Sparkling Water", Price: 2.00, RestaurantID: palace.ID},
			},
		},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedDemoOrder creates one order already in flight so the tracking view has
// something to show on a fresh boot. It starts at "preparing", matching the
// demo data the frontend shipped with.
func SeedDemoOrder(deliveryFee, taxRate float64) error {
	db := DB()

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	if count > 0 {
		return nil
	}

	var palace entity.Restaurant
	if err := db.Where("name = ?", "Pizza Palace").First(&palace).Error; err != nil {
		return err
	}
	var preparing entity.OrderStatus
	if err := db.Where("status_name = ?", entity.StatusPreparing).First(&preparing).Error; err != nil {
		return err
	}
	var pizza, cola entity.Menu
	db.Where("menu_name = ?", "Margherita Pizza").First(&pizza)
	db.Where("menu_name = ?", "Coca-Cola").First(&cola)

	subtotal := 15.99*1 + 2.50*2
	order := entity.Order{
		Subtotal:          subtotal,
		DeliveryFee:       deliveryFee,
		Taxes:             subtotal * taxRate,
		Total:             subtotal + deliveryFee + subtotal*taxRate,
		SessionID:         "demo",
		RestaurantID:      palace.ID,
		OrderStatusID:     preparing.ID,
		EstimatedDelivery: time.Now().Add(30 * time.Minute),
		OrderItems: []entity.OrderItem{
			{Name: "Margherita Pizza (Customized)", Detail: "Large, Extra Cheese", Qty: 1, UnitPrice: 15.99, Total: 15.99, MenuID: pizza.ID},
			{Name: "Coca-Cola", Qty: 2, UnitPrice: 2.50, Total: 5.00, MenuID: cola.ID},
		},
	}
	return db.Create(&order).Error
}
