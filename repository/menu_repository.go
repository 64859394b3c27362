// repository/menu_repository.go
package repository

import (
	"context"

	"backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ดึงเมนูเดียวพร้อม options
func (r *MenuRepository) FindByID(ctx context.Context, id uint) (*entity.Menu, error) {
	var menu entity.Menu
	err := r.DB.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order")
		}).
		Preload("Options.OptionValues", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order")
		}).
		First(&menu, id).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) GetMenuBasics(ctx context.Context, id uint) (entity.Menu, error) {
	var m entity.Menu
	err := r.DB.WithContext(ctx).
		Select("id, menu_name, price, restaurant_id").First(&m, id).Error
	return m, err
}
