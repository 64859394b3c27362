package repository

import (
	"context"
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// คืน Cart เดิมของ session (ถ้าไม่มีก็คืน Cart ว่าง ๆ โดยไม่ error เพื่อให้ FE แสดงได้)
func (r *CartRepository) GetCartWithItems(ctx context.Context, sessionID string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.WithContext(ctx).Where("session_id = ?", sessionID).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		Preload("Items.Selections").
		Preload("Items.Menu").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{SessionID: sessionID}, nil
	}
	return &c, err
}

// สร้างหรืออ่าน Cart ของ session
func (r *CartRepository) GetOrCreateCart(ctx context.Context, sessionID string, restaurantID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.WithContext(ctx).Where("session_id = ?", sessionID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{SessionID: sessionID, RestaurantID: restaurantID}
		if err := r.DB.WithContext(ctx).Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// เพิ่มหรือรวม line: เมนูเดียวกัน + ชื่อ + รายละเอียด customization เดียวกัน → บวก qty
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND menu_id = ? AND name = ? AND detail = ?",
		cartID, row.MenuID, row.Name, row.Detail).
		First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		exist.Total = float64(exist.Qty) * exist.UnitPrice
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

// GetItem reads one line, scoped to the session's cart.
func (r *CartRepository) GetItem(tx *gorm.DB, sessionID string, itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE session_id = ?)", itemID, sessionID).
		First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) SetQty(tx *gorm.DB, sessionID string, itemID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, sessionID, itemID)
	}
	// ensure item เป็นของ cart ของ session
	return tx.Exec(`
		UPDATE cart_items
		   SET qty = ?, total = unit_price * ?
		 WHERE id = ?
		   AND cart_id IN (SELECT id FROM carts WHERE session_id = ?)
	`, qty, qty, itemID, sessionID).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, sessionID string, itemID uint) error {
	if err := tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE session_id = ?)", itemID, sessionID).
		Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	// ถ้าตะกร้าว่างแล้ว → รีเซ็ต restaurant_id = 0
	return tx.Exec(`
		UPDATE carts SET restaurant_id = 0
		 WHERE session_id = ?
		   AND NOT EXISTS (SELECT 1 FROM cart_items ci
		                    WHERE ci.cart_id = carts.id AND ci.deleted_at IS NULL)
	`, sessionID).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, sessionID string) error {
	var c entity.Cart
	if err := tx.Where("session_id = ?", sessionID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	// รีเซ็ตร้านของตะกร้าให้เป็น 0 เพื่อพร้อมรับร้านใหม่
	return tx.Model(&entity.Cart{}).Where("id = ?", c.ID).Update("restaurant_id", 0).Error
}
