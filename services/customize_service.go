package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"backend/entity"
	"backend/pkg/notice"
	"backend/repository"
)

var (
	ErrNotCustomizable = errors.New("menu has no customization")
	ErrNoOpenSelection = errors.New("no customization in progress")
	ErrInvalidOption   = errors.New("invalid option value")
)

// workingSelection is the transient dialog state: one optional size plus a
// topping set, kept apart from the cart until commit.
type workingSelection struct {
	menu     *entity.Menu
	size     string
	toppings map[string]bool
}

func (w *workingSelection) option(optionType string) *entity.Option {
	for i := range w.menu.Options {
		if w.menu.Options[i].OptionType == optionType {
			return &w.menu.Options[i]
		}
	}
	return nil
}

func (w *workingSelection) hasValue(opt *entity.Option, name string) bool {
	if opt == nil {
		return false
	}
	for _, v := range opt.OptionValues {
		if v.ValueName == name {
			return true
		}
	}
	return false
}

// CustomizeService accumulates per-session option choices before they become
// a cart line. State lives only in memory; cancel or commit discards it.
type CustomizeService struct {
	mu    sync.Mutex
	Menus *repository.MenuRepository
	Cart  *CartService

	open map[string]*workingSelection // sessionID -> dialog
}

func NewCustomizeService(menus *repository.MenuRepository, cart *CartService) *CustomizeService {
	return &CustomizeService{Menus: menus, Cart: cart, open: make(map[string]*workingSelection)}
}

// Open starts a fresh selection for the item, dropping whatever was in
// progress - switching items never carries choices over.
func (s *CustomizeService) Open(ctx context.Context, sessionID string, menuID uint) (*entity.Menu, error) {
	m, err := s.Menus.FindByID(ctx, menuID)
	if err != nil {
		return nil, err
	}
	if !m.Customizable() {
		return nil, ErrNotCustomizable
	}

	s.mu.Lock()
	s.open[sessionID] = &workingSelection{menu: m, toppings: make(map[string]bool)}
	s.mu.Unlock()
	return m, nil
}

// ChooseSize replaces any previously chosen size (single-choice).
func (s *CustomizeService) ChooseSize(sessionID, size string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.open[sessionID]
	if !ok {
		return ErrNoOpenSelection
	}
	if !w.hasValue(w.option(entity.OptionTypeSingle), size) {
		return ErrInvalidOption
	}
	w.size = size
	return nil
}

// ToggleTopping adds the topping if absent and removes it if present.
func (s *CustomizeService) ToggleTopping(sessionID, topping string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.open[sessionID]
	if !ok {
		return ErrNoOpenSelection
	}
	if !w.hasValue(w.option(entity.OptionTypeMulti), topping) {
		return ErrInvalidOption
	}
	if w.toppings[topping] {
		delete(w.toppings, topping)
	} else {
		w.toppings[topping] = true
	}
	return nil
}

// Selection reports the current working choice; toppings come back in the
// menu's option order.
func (s *CustomizeService) Selection(sessionID string) (size string, toppings []string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, found := s.open[sessionID]
	if !found {
		return "", nil, false
	}
	return w.size, w.chosenToppings(), true
}

func (w *workingSelection) chosenToppings() []string {
	var out []string
	if opt := w.option(entity.OptionTypeMulti); opt != nil {
		for _, v := range opt.OptionValues {
			if w.toppings[v.ValueName] {
				out = append(out, v.ValueName)
			}
		}
	}
	return out
}

// Cancel discards the working selection without touching the cart.
func (s *CustomizeService) Cancel(sessionID string) {
	s.mu.Lock()
	delete(s.open, sessionID)
	s.mu.Unlock()
}

// Commit turns the working selection into one cart line at the item's base
// price (options carry no surcharge in the current product) with the name
// annotated, then discards the selection.
func (s *CustomizeService) Commit(ctx context.Context, sessionID string, qty int) (notice.Notice, error) {
	s.mu.Lock()
	w, ok := s.open[sessionID]
	s.mu.Unlock()
	if !ok {
		return notice.Notice{}, ErrNoOpenSelection
	}
	if qty <= 0 {
		qty = 1
	}

	var parts []string
	if w.size != "" {
		parts = append(parts, w.size)
	}
	parts = append(parts, w.chosenToppings()...)

	line := &entity.CartItem{
		MenuID:     w.menu.ID,
		Name:       w.menu.MenuName + " (Customized)",
		Detail:     strings.Join(parts, ", "),
		Qty:        qty,
		UnitPrice:  w.menu.Price,
		Total:      w.menu.Price * float64(qty),
		Selections: w.selectionRows(),
	}
	if err := s.Cart.AddLine(ctx, sessionID, w.menu.RestaurantID, line); err != nil {
		return notice.Notice{}, err
	}

	s.mu.Lock()
	delete(s.open, sessionID)
	s.mu.Unlock()
	return notice.Info("Added to Cart!", line.Name+" has been added to your cart."), nil
}

func (w *workingSelection) selectionRows() []entity.CartItemSelection {
	var rows []entity.CartItemSelection
	add := func(opt *entity.Option, picked func(string) bool) {
		if opt == nil {
			return
		}
		for _, v := range opt.OptionValues {
			if picked(v.ValueName) {
				rows = append(rows, entity.CartItemSelection{
					OptionID:      opt.ID,
					OptionValueID: v.ID,
					PriceDelta:    v.PriceAdjustment,
				})
			}
		}
	}
	add(w.option(entity.OptionTypeSingle), func(name string) bool { return name == w.size })
	add(w.option(entity.OptionTypeMulti), func(name string) bool { return w.toppings[name] })
	return rows
}
