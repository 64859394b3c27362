package ws

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stepClock hands out timers that only fire when the test says so.
type stepClock struct {
	mu  sync.Mutex
	seq int
	due map[int]func()
}

func newStepClock() *stepClock { return &stepClock{due: make(map[int]func())} }

func (c *stepClock) AfterFunc(d time.Duration, f func()) services.StopTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.due[c.seq] = f
	return &stepTimer{c: c, id: c.seq}
}

func (c *stepClock) fire() {
	c.mu.Lock()
	fns := make([]func(), 0, len(c.due))
	for id, f := range c.due {
		fns = append(fns, f)
		delete(c.due, id)
	}
	c.mu.Unlock()
	for _, f := range fns {
		f()
	}
}

func (c *stepClock) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.due)
}

type stepTimer struct {
	c  *stepClock
	id int
}

func (t *stepTimer) Stop() bool {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	_, live := t.c.due[t.id]
	delete(t.c.due, t.id)
	return live
}

func newTrackingFixture(t *testing.T, startStatus string) (*TrackingHub, *stepClock, uint, *httptest.Server) {
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
	for _, name := range []string{
		entity.StatusConfirmed, entity.StatusPreparing,
		entity.StatusOutForDelivery, entity.StatusDelivered,
	} {
		require.NoError(t, db.Create(&entity.OrderStatus{StatusName: name}).Error)
	}

	rest := entity.Restaurant{Name: "Pizza Palace"}
	require.NoError(t, db.Create(&rest).Error)
	var status entity.OrderStatus
	require.NoError(t, db.Where("status_name = ?", startStatus).First(&status).Error)
	order := entity.Order{
		Subtotal: 15.99, DeliveryFee: 5.00, Taxes: 1.2792, Total: 22.2692,
		SessionID: "s1", RestaurantID: rest.ID, OrderStatusID: status.ID,
	}
	require.NoError(t, db.Create(&order).Error)

	cartSvc := services.NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db), 5.00, 0.08)
	orderSvc := services.NewOrderService(db, repository.NewOrderRepository(db), repository.NewCartRepository(db), cartSvc)

	hub := NewTrackingHub()
	clock := newStepClock()
	tracker := services.NewTracker(orderSvc, 15*time.Second, clock, hub.Notify)
	hub.SetTracker(tracker)
	go hub.Run()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/orders/:id", hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return hub, clock, order.ID, srv
}

func dialOrder(t *testing.T, srv *httptest.Server, orderID uint) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + fmt.Sprintf("/ws/orders/%d", orderID)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readUpdate(t *testing.T, conn *websocket.Conn) StatusUpdate {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var upd StatusUpdate
	require.NoError(t, conn.ReadJSON(&upd))
	return upd
}

// waitClients blocks until the hub has processed registrations/unregistrations
// down to n clients for the order.
func waitClients(t *testing.T, h *TrackingHub, orderID uint, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		h.mu.Lock()
		defer h.mu.Unlock()
		return len(h.clients[orderID]) == n
	}, 2*time.Second, 5*time.Millisecond)
}

func TestWebSocketPushesTransitions(t *testing.T) {
	hub, clock, orderID, srv := newTrackingFixture(t, entity.StatusPreparing)

	conn := dialOrder(t, srv, orderID)

	// current state arrives before any transition
	first := readUpdate(t, conn)
	assert.Equal(t, entity.StatusPreparing, first.Status)
	assert.InDelta(t, 50.0, first.Progress, 1e-9)

	waitClients(t, hub, orderID, 1)

	clock.fire()
	upd := readUpdate(t, conn)
	assert.Equal(t, entity.StatusOutForDelivery, upd.Status)
	assert.InDelta(t, 75.0, upd.Progress, 1e-9)

	clock.fire()
	upd = readUpdate(t, conn)
	assert.Equal(t, entity.StatusDelivered, upd.Status)
	assert.InDelta(t, 100.0, upd.Progress, 1e-9)

	// terminal: nothing rescheduled
	assert.Zero(t, clock.pending())
}

func TestWebSocketUnknownOrder(t *testing.T) {
	_, clock, _, srv := newTrackingFixture(t, entity.StatusPreparing)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/orders/99999"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.Nil(t, conn)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// no timer was ever started for the unknown id
	assert.Zero(t, clock.pending())
}

func TestWebSocketSecondWatcherSurvivesFirstLeaving(t *testing.T) {
	hub, clock, orderID, srv := newTrackingFixture(t, entity.StatusPreparing)

	connA := dialOrder(t, srv, orderID)
	readUpdate(t, connA)
	connB := dialOrder(t, srv, orderID)
	readUpdate(t, connB)
	waitClients(t, hub, orderID, 2)
	require.Equal(t, 1, clock.pending())

	// one client going away must not stop the other's simulation
	connA.Close()
	waitClients(t, hub, orderID, 1)
	require.True(t, hub.tracker.Watching(orderID))
	require.Equal(t, 1, clock.pending())

	clock.fire()
	upd := readUpdate(t, connB)
	assert.Equal(t, entity.StatusOutForDelivery, upd.Status)

	connB.Close()
	waitClients(t, hub, orderID, 0)
	require.Eventually(t, func() bool {
		return !hub.tracker.Watching(orderID) && clock.pending() == 0
	}, 2*time.Second, 5*time.Millisecond)
}

// A conn torn down by a failed broadcast write is unwatched there; the
// unregister its reader goroutine sends afterwards must not unwatch again,
// or it would steal the remaining watcher's timer.
func TestDeadConnUnwatchesOnlyOnce(t *testing.T) {
	hub, clock, orderID, srv := newTrackingFixture(t, entity.StatusPreparing)

	conn := dialOrder(t, srv, orderID)
	readUpdate(t, conn)
	waitClients(t, hub, orderID, 1)

	// second subscriber, registered the way HandleWebSocket does it
	_, err := hub.tracker.Watch(context.Background(), orderID)
	require.NoError(t, err)
	dead := new(websocket.Conn)
	hub.register <- Subscription{Conn: dead, OrderID: orderID}
	waitClients(t, hub, orderID, 2)

	// what the broadcast branch does when a write to `dead` fails
	hub.mu.Lock()
	delete(hub.clients[orderID], dead)
	hub.mu.Unlock()
	hub.tracker.Unwatch(orderID)

	// its reader goroutine still reports the usual unregister; the second
	// send only flushes the first through the hub loop
	hub.unregister <- Subscription{Conn: dead, OrderID: orderID}
	hub.unregister <- Subscription{Conn: new(websocket.Conn), OrderID: orderID}

	// the healthy watcher keeps its simulation
	require.True(t, hub.tracker.Watching(orderID))
	require.Equal(t, 1, clock.pending())
	clock.fire()
	upd := readUpdate(t, conn)
	assert.Equal(t, entity.StatusOutForDelivery, upd.Status)
}

func TestWebSocketDisconnectStopsTimer(t *testing.T) {
	hub, clock, orderID, srv := newTrackingFixture(t, entity.StatusConfirmed)

	conn := dialOrder(t, srv, orderID)
	first := readUpdate(t, conn)
	assert.Equal(t, entity.StatusConfirmed, first.Status)
	waitClients(t, hub, orderID, 1)
	require.Equal(t, 1, clock.pending())

	conn.Close()
	waitClients(t, hub, orderID, 0)
	require.Eventually(t, func() bool {
		return !hub.tracker.Watching(orderID) && clock.pending() == 0
	}, 2*time.Second, 5*time.Millisecond)

	// a stray fire after the last watcher left moves nothing
	clock.fire()
	assert.Zero(t, clock.pending())
}
