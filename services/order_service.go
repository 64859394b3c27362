package services

import (
	"context"
	"errors"
	"log"
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
)

// statusSequence is the fixed forward-only delivery lifecycle.
var statusSequence = []string{
	entity.StatusConfirmed,
	entity.StatusPreparing,
	entity.StatusOutForDelivery,
	entity.StatusDelivered,
}

func StatusIndex(name string) int {
	for i, s := range statusSequence {
		if s == name {
			return i
		}
	}
	return -1
}

// StatusProgress maps a status to its display percentage: step 2 of 4 is 50.
func StatusProgress(name string) float64 {
	idx := StatusIndex(name)
	if idx < 0 {
		return 0
	}
	return float64(idx+1) / float64(len(statusSequence)) * 100
}

func IsTerminalStatus(name string) bool {
	return name == statusSequence[len(statusSequence)-1]
}

func NextStatus(name string) (string, bool) {
	idx := StatusIndex(name)
	if idx < 0 || idx >= len(statusSequence)-1 {
		return "", false
	}
	return statusSequence[idx+1], true
}

type StatusIDs struct {
	Confirmed      uint
	Preparing      uint
	OutForDelivery uint
	Delivered      uint
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	Cart     *CartService

	Status    StatusIDs
	statusIDs map[string]uint // name -> seeded row id
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, cart *CartService) *OrderService {
	s := &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, Cart: cart, statusIDs: map[string]uint{}}

	for _, name := range statusSequence {
		id, err := repo.GetStatusIDByName(name)
		if err != nil {
			log.Printf("order service: status %q not seeded: %v", name, err)
			continue
		}
		s.statusIDs[name] = id
	}
	s.Status.Confirmed = s.statusIDs[entity.StatusConfirmed]
	s.Status.Preparing = s.statusIDs[entity.StatusPreparing]
	s.Status.OutForDelivery = s.statusIDs[entity.StatusOutForDelivery]
	s.Status.Delivered = s.statusIDs[entity.StatusDelivered]

	return s
}

// ----- Checkout -----

type CheckoutReq struct {
	Note string `json:"note"`
	// Collected by the cart page but not applied anywhere yet.
	PromoCode string `json:"promoCode"`
}

type CheckoutRes struct {
	ID    uint    `json:"id"`
	Total float64 `json:"total"`
}

// CheckoutFromCart turns a non-empty cart into an order at "confirmed" and
// clears the cart. An empty cart aborts with ErrEmptyCart and no state change.
func (s *OrderService) CheckoutFromCart(ctx context.Context, sessionID string, req *CheckoutReq) (*CheckoutRes, error) {
	cart, err := s.CartRepo.GetCartWithItems(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	t := s.Cart.Totals(cart.Items)

	var out CheckoutRes
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			Subtotal:          t.Subtotal,
			DeliveryFee:       t.DeliveryFee,
			Taxes:             t.Taxes,
			Total:             t.Total,
			Note:              req.Note,
			SessionID:         sessionID,
			RestaurantID:      cart.RestaurantID,
			OrderStatusID:     s.Status.Confirmed,
			EstimatedDelivery: time.Now().Add(30 * time.Minute),
		}
		for _, it := range cart.Items {
			order.OrderItems = append(order.OrderItems, entity.OrderItem{
				Name:      it.Name,
				Detail:    it.Detail,
				Qty:       it.Qty,
				UnitPrice: it.UnitPrice,
				Total:     it.UnitPrice * float64(it.Qty),
				MenuID:    it.MenuID,
			})
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		if err := s.CartRepo.ClearCart(tx, sessionID); err != nil {
			return err
		}
		out = CheckoutRes{ID: order.ID, Total: order.Total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ----- Detail -----

func (s *OrderService) Get(ctx context.Context, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

// ----- Timer-driven transition -----

// Advance moves the order one step along the sequence using the guarded
// update, so a racing advance never pushes a status backwards or skips ahead.
// At the terminal status it is a no-op. Returns the status after the call.
func (s *OrderService) Advance(orderID uint) (string, error) {
	o, err := s.Get(context.Background(), orderID)
	if err != nil {
		return "", err
	}
	current := o.OrderStatus.StatusName
	next, ok := NextStatus(current)
	if !ok {
		return current, nil
	}

	var affected int64
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var e error
		affected, e = s.Repo.UpdateStatusGuard(tx, orderID, s.statusIDs[current], s.statusIDs[next])
		return e
	})
	if err != nil {
		return current, err
	}
	if affected == 0 {
		// someone advanced it between our read and the guard; report reality
		o, err := s.Get(context.Background(), orderID)
		if err != nil {
			return current, err
		}
		return o.OrderStatus.StatusName, nil
	}
	return next, nil
}
