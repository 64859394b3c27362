// repository/restaurant_repository.go
package repository

import (
	"context"

	"backend/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// ดึงร้านทั้งหมด (catalog for the listing pipeline)
func (r *RestaurantRepository) FindAll(ctx context.Context) ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.WithContext(ctx).
		Preload("Cuisines").
		Order("id").
		Find(&rests).Error
	return rests, err
}

// ดึงร้านตาม ID พร้อมเมนูจัดหมวด
func (r *RestaurantRepository) FindByID(ctx context.Context, id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.WithContext(ctx).
		Preload("Cuisines").
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order")
		}).
		Preload("Categories.Menus", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		Preload("Categories.Menus.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order")
		}).
		Preload("Categories.Menus.Options.OptionValues", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order")
		}).
		First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}
