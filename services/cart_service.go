package services

import (
	"context"
	"errors"

	"backend/entity"
	"backend/pkg/notice"
	"backend/repository"

	"gorm.io/gorm"
)

var (
	ErrCartOtherRestaurant = errors.New("cart has another restaurant")
	ErrMenuNotInRestaurant = errors.New("menu not in this restaurant")
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository

	DeliveryFee float64
	TaxRate     float64
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository, deliveryFee, taxRate float64) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr, DeliveryFee: deliveryFee, TaxRate: taxRate}
}

type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Taxes       float64 `json:"taxes"`
	Total       float64 `json:"total"`
}

// ComputeTotals derives the ledger totals from the lines. Never stored, so it
// can never go stale. The fee only applies to a non-empty cart.
func ComputeTotals(items []entity.CartItem, deliveryFee, taxRate float64) Totals {
	var subtotal float64
	for _, it := range items {
		subtotal += it.UnitPrice * float64(it.Qty)
	}
	fee := 0.0
	if subtotal > 0 {
		fee = deliveryFee
	}
	taxes := subtotal * taxRate
	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Taxes:       taxes,
		Total:       subtotal + fee + taxes,
	}
}

func (s *CartService) Totals(items []entity.CartItem) Totals {
	return ComputeTotals(items, s.DeliveryFee, s.TaxRate)
}

func (s *CartService) Get(ctx context.Context, sessionID string) (*entity.Cart, Totals, error) {
	c, err := s.CartRepo.GetCartWithItems(ctx, sessionID)
	if err != nil {
		return nil, Totals{}, err
	}
	return c, s.Totals(c.Items), nil
}

type AddToCartIn struct {
	RestaurantID uint `json:"restaurantId" binding:"required"`
	MenuID       uint `json:"menuId" binding:"required"`
	Qty          int  `json:"qty" binding:"min=0"`
}

// Add puts a plain, uncustomized item in the cart.
func (s *CartService) Add(ctx context.Context, sessionID string, in *AddToCartIn) (notice.Notice, error) {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	m, err := s.MenuRepo.GetMenuBasics(ctx, in.MenuID)
	if err != nil {
		return notice.Notice{}, err
	}

	line := &entity.CartItem{
		MenuID:    m.ID,
		Name:      m.MenuName,
		Qty:       in.Qty,
		UnitPrice: m.Price,
		Total:     m.Price * float64(in.Qty),
	}
	if err := s.AddLine(ctx, sessionID, in.RestaurantID, line); err != nil {
		return notice.Notice{}, err
	}
	return notice.Info("Added to Cart!", m.MenuName+" has been added to your cart."), nil
}

// AddLine is the shared insert path for plain and customized lines: it locks
// the cart to one restaurant, checks the menu belongs there, and merges
// identical lines.
func (s *CartService) AddLine(ctx context.Context, sessionID string, restaurantID uint, line *entity.CartItem) error {
	c, err := s.CartRepo.GetOrCreateCart(ctx, sessionID, restaurantID)
	if err != nil {
		return err
	}

	// ถ้าคาร์ทเคยล็อกร้านอื่นไว้ และยังไม่ถูกรีเซ็ต -> ไม่ให้ข้ามร้าน
	if c.RestaurantID != 0 && c.RestaurantID != restaurantID {
		return ErrCartOtherRestaurant
	}
	if c.RestaurantID == 0 {
		c.RestaurantID = restaurantID
		if err := s.CartRepo.DB.WithContext(ctx).Save(c).Error; err != nil {
			return err
		}
	}

	m, err := s.MenuRepo.GetMenuBasics(ctx, line.MenuID)
	if err != nil {
		return err
	}
	if m.RestaurantID != restaurantID {
		return ErrMenuNotInRestaurant
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

// ChangeQty applies a delta; the floor is zero and a line at zero is removed.
func (s *CartService) ChangeQty(ctx context.Context, sessionID string, itemID uint, delta int) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		it, err := s.CartRepo.GetItem(tx, sessionID, itemID)
		if err != nil {
			return err
		}
		qty := it.Qty + delta
		if qty < 0 {
			qty = 0
		}
		return s.CartRepo.SetQty(tx, sessionID, itemID, qty)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID string, itemID uint) (notice.Notice, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, sessionID, itemID)
	})
	if err != nil {
		return notice.Notice{}, err
	}
	return notice.Info("Item Removed", "The item has been removed from your cart."), nil
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, sessionID)
	})
}
