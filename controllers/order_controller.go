package controllers

import (
	"errors"
	"strconv"
	"time"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

type OrderItemDTO struct {
	Name      string  `json:"name"`
	Detail    string  `json:"detail,omitempty"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

type OrderDetailResponse struct {
	ID                uint           `json:"id"`
	RestaurantName    string         `json:"restaurantName"`
	Items             []OrderItemDTO `json:"items"`
	Subtotal          float64        `json:"subtotal"`
	DeliveryFee       float64        `json:"deliveryFee"`
	Taxes             float64        `json:"taxes"`
	Total             float64        `json:"total"`
	Status            string         `json:"status"`
	Progress          float64        `json:"progress"`
	EstimatedDelivery time.Time      `json:"estimatedDelivery"`
}

// GET /orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	o, err := ctl.Svc.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	out := OrderDetailResponse{
		ID:                o.ID,
		RestaurantName:    o.Restaurant.Name,
		Subtotal:          utils.Round2(o.Subtotal),
		DeliveryFee:       utils.Round2(o.DeliveryFee),
		Taxes:             utils.Round2(o.Taxes),
		Total:             utils.Round2(o.Total),
		Status:            o.OrderStatus.StatusName,
		Progress:          services.StatusProgress(o.OrderStatus.StatusName),
		EstimatedDelivery: o.EstimatedDelivery,
	}
	for _, it := range o.OrderItems {
		out.Items = append(out.Items, OrderItemDTO{
			Name:      it.Name,
			Detail:    it.Detail,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
			LineTotal: utils.Round2(it.UnitPrice * float64(it.Qty)),
		})
	}
	resp.OK(c, out)
}
