package ws

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"

	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// TrackingHub pushes order-status transitions to every client watching an
// order, replacing the frontend's local timer simulation with server pushes.
type TrackingHub struct {
	clients    map[uint]map[*websocket.Conn]bool // orderID -> set of clients
	broadcast  chan StatusUpdate
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	tracker    *services.Tracker
}

// Subscription = one client watching one order.
type Subscription struct {
	Conn    *websocket.Conn
	OrderID uint
}

// StatusUpdate is the frame sent on every transition.
type StatusUpdate struct {
	OrderID  uint    `json:"orderId"`
	Status   string  `json:"status"`
	Progress float64 `json:"progress"`
}

func NewTrackingHub() *TrackingHub {
	return &TrackingHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan StatusUpdate),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
	}
}

// SetTracker wires the hub to the simulation it subscribes clients to.
func (h *TrackingHub) SetTracker(t *services.Tracker) { h.tracker = t }

// Notify feeds a transition into the hub; the tracker calls this on every
// advance.
func (h *TrackingHub) Notify(orderID uint, status string, progress float64) {
	h.broadcast <- StatusUpdate{OrderID: orderID, Status: status, Progress: progress}
}

// คอยฟัง register/unregister/broadcast ตลอดเวลา
func (h *TrackingHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			_, ok := h.clients[sub.OrderID][sub.Conn]
			if ok {
				delete(h.clients[sub.OrderID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()
			// each subscription unwatches exactly once: if a failed write
			// already removed this conn, it also did the Unwatch
			if ok {
				h.tracker.Unwatch(sub.OrderID)
			}

		case upd := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[upd.OrderID] {
				if err := conn.WriteJSON(upd); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[upd.OrderID], conn)
					h.tracker.Unwatch(upd.OrderID)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:id
func (h *TrackingHub) HandleWebSocket(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid order id"})
		return
	}
	orderID := uint(id)

	// --- unknown id: no state, no timer, just a 404
	o, err := h.tracker.Watch(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		h.tracker.Unwatch(orderID)
		return
	}

	// current state first, so the client renders before the next transition.
	// Written before registering: once the conn is in the hub, Run is the only
	// goroutine allowed to write to it.
	status := o.OrderStatus.StatusName
	if err := conn.WriteJSON(StatusUpdate{OrderID: orderID, Status: status, Progress: services.StatusProgress(status)}); err != nil {
		log.Printf("ws write error: %v", err)
		conn.Close()
		h.tracker.Unwatch(orderID)
		return
	}

	sub := Subscription{Conn: conn, OrderID: orderID}
	h.register <- sub
	go h.listen(sub)
}

// listen drains the connection until the client goes away, then unsubscribes
// so the tracker can stop an unwatched order's timer.
func (h *TrackingHub) listen(sub Subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
