package services

import (
	"context"
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomizeFixture(t *testing.T) (*CustomizeService, *CartService, entity.Menu, entity.Menu) {
	t.Helper()
	db, cartSvc, _, pizza, cola := newCartFixture(t)
	svc := NewCustomizeService(repository.NewMenuRepository(db), cartSvc)
	return svc, cartSvc, pizza, cola
}

func TestChooseSizeReplacesPrevious(t *testing.T) {
	svc, _, pizza, _ := newCustomizeFixture(t)
	ctx := context.Background()

	_, err := svc.Open(ctx, "s1", pizza.ID)
	require.NoError(t, err)

	require.NoError(t, svc.ChooseSize("s1", "Medium"))
	require.NoError(t, svc.ChooseSize("s1", "Large"))

	size, _, ok := svc.Selection("s1")
	require.True(t, ok)
	assert.Equal(t, "Large", size)
}

func TestToggleToppingAddsAndRemoves(t *testing.T) {
	svc, _, pizza, _ := newCustomizeFixture(t)
	ctx := context.Background()

	_, err := svc.Open(ctx, "s1", pizza.ID)
	require.NoError(t, err)

	require.NoError(t, svc.ToggleTopping("s1", "Mushrooms"))
	require.NoError(t, svc.ToggleTopping("s1", "Extra Cheese"))
	_, toppings, _ := svc.Selection("s1")
	// menu order, not click order
	assert.Equal(t, []string{"Extra Cheese", "Mushrooms"}, toppings)

	require.NoError(t, svc.ToggleTopping("s1", "Mushrooms"))
	_, toppings, _ = svc.Selection("s1")
	assert.Equal(t, []string{"Extra Cheese"}, toppings)
}

func TestInvalidOptionRejected(t *testing.T) {
	svc, _, pizza, _ := newCustomizeFixture(t)
	ctx := context.Background()

	_, err := svc.Open(ctx, "s1", pizza.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ChooseSize("s1", "Gigantic"), ErrInvalidOption)
	// a size is not a topping and vice versa
	assert.ErrorIs(t, svc.ToggleTopping("s1", "Large"), ErrInvalidOption)
	assert.ErrorIs(t, svc.ChooseSize("s1", "Pepperoni"), ErrInvalidOption)
}

func TestOpenResetsSelection(t *testing.T) {
	svc, _, pizza, _ := newCustomizeFixture(t)
	ctx := context.Background()

	_, err := svc.Open(ctx, "s1", pizza.ID)
	require.NoError(t, err)
	require.NoError(t, svc.ChooseSize("s1", "Large"))
	require.NoError(t, svc.ToggleTopping("s1", "Pepperoni"))

	// reopening the same item starts over
	_, err = svc.Open(ctx, "s1", pizza.ID)
	require.NoError(t, err)
	size, toppings, ok := svc.Selection("s1")
	require.True(t, ok)
	assert.Empty(t, size)
	assert.Empty(t, toppings)
}

func TestOpenNonCustomizableMenu(t *testing.T) {
	svc, _, _, cola := newCustomizeFixture(t)

	_, err := svc.Open(context.Background(), "s1", cola.ID)
	assert.ErrorIs(t, err, ErrNotCustomizable)
	_, _, ok := svc.Selection("s1")
	assert.False(t, ok)
}

func TestChoicesWithoutOpenSelection(t *testing.T) {
	svc, _, _, _ := newCustomizeFixture(t)

	assert.ErrorIs(t, svc.ChooseSize("s1", "Large"), ErrNoOpenSelection)
	assert.ErrorIs(t, svc.ToggleTopping("s1", "Pepperoni"), ErrNoOpenSelection)
	_, err := svc.Commit(context.Background(), "s1", 1)
	assert.ErrorIs(t, err, ErrNoOpenSelection)
}

func TestCancelLeavesCartUntouched(t *testing.T) {
	svc, cartSvc, pizza, _ := newCustomizeFixture(t)
	ctx := context.Background()

	_, err := svc.Open(ctx, "s1", pizza.ID)
	require.NoError(t, err)
	require.NoError(t, svc.ChooseSize("s1", "Large"))

	svc.Cancel("s1")
	_, _, ok := svc.Selection("s1")
	assert.False(t, ok)

	cart, totals, err := cartSvc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, totals.Total)
}

func TestCommitAnnotatesCartLine(t *testing.T) {
	svc, cartSvc, pizza, _ := newCustomizeFixture(t)
	ctx := context.Background()

	_, err := svc.Open(ctx, "s1", pizza.ID)
	require.NoError(t, err)
	require.NoError(t, svc.ChooseSize("s1", "Large"))
	require.NoError(t, svc.ToggleTopping("s1", "Extra Cheese"))

	n, err := svc.Commit(ctx, "s1", 1)
	require.NoError(t, err)
	assert.Equal(t, "Added to Cart!", n.Title)

	cart, totals, err := cartSvc.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	line := cart.Items[0]
	assert.Equal(t, "Margherita Pizza (Customized)", line.Name)
	assert.Equal(t, "Large, Extra Cheese", line.Detail)
	assert.InDelta(t, 15.99, line.UnitPrice, 1e-9)
	assert.Len(t, line.Selections, 2)
	assert.InDelta(t, 15.99, totals.Subtotal, 1e-9)

	// selection is gone once committed
	_, _, ok := svc.Selection("s1")
	assert.False(t, ok)
}

func TestCommitWithoutChoicesUsesBareDetail(t *testing.T) {
	svc, cartSvc, pizza, _ := newCustomizeFixture(t)
	ctx := context.Background()

	_, err := svc.Open(ctx, "s1", pizza.ID)
	require.NoError(t, err)

	_, err = svc.Commit(ctx, "s1", 0) // qty floors to 1
	require.NoError(t, err)

	cart, _, err := cartSvc.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Qty)
	assert.Empty(t, cart.Items[0].Detail)
	assert.Empty(t, cart.Items[0].Selections)
}

func TestDifferentCustomizationsStayAsSeparateLines(t *testing.T) {
	svc, cartSvc, pizza, _ := newCustomizeFixture(t)
	ctx := context.Background()

	_, err := svc.Open(ctx, "s1", pizza.ID)
	require.NoError(t, err)
	require.NoError(t, svc.ChooseSize("s1", "Medium"))
	_, err = svc.Commit(ctx, "s1", 1)
	require.NoError(t, err)

	_, err = svc.Open(ctx, "s1", pizza.ID)
	require.NoError(t, err)
	require.NoError(t, svc.ChooseSize("s1", "Large"))
	_, err = svc.Commit(ctx, "s1", 1)
	require.NoError(t, err)

	cart, _, err := cartSvc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}
