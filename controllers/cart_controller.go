package controllers

import (
	"errors"

	"backend/entity"
	"backend/pkg/notice"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct {
	Svc    *services.CartService
	Orders *services.OrderService
}

func NewCartController(s *services.CartService, o *services.OrderService) *CartController {
	return &CartController{Svc: s, Orders: o}
}

type CartLineDTO struct {
	ID        uint    `json:"id"`
	MenuID    uint    `json:"menuId"`
	Name      string  `json:"name"`
	Detail    string  `json:"detail,omitempty"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

type CartResponse struct {
	RestaurantID uint            `json:"restaurantId"`
	Items        []CartLineDTO   `json:"items"`
	Totals       services.Totals `json:"totals"`
}

func mapToCartResponse(cart *entity.Cart, totals services.Totals) CartResponse {
	out := CartResponse{
		RestaurantID: cart.RestaurantID,
		Items:        make([]CartLineDTO, 0, len(cart.Items)),
		// totals are display values: round here, never in the ledger
		Totals: services.Totals{
			Subtotal:    utils.Round2(totals.Subtotal),
			DeliveryFee: utils.Round2(totals.DeliveryFee),
			Taxes:       utils.Round2(totals.Taxes),
			Total:       utils.Round2(totals.Total),
		},
	}
	for _, it := range cart.Items {
		out.Items = append(out.Items, CartLineDTO{
			ID:        it.ID,
			MenuID:    it.MenuID,
			Name:      it.Name,
			Detail:    it.Detail,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
			LineTotal: utils.Round2(it.UnitPrice * float64(it.Qty)),
		})
	}
	return out
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	cart, totals, err := h.Svc.Get(c.Request.Context(), sid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, mapToCartResponse(cart, totals))
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	n, err := h.Svc.Add(c.Request.Context(), sid, &req)
	if err != nil {
		if errors.Is(err, services.ErrCartOtherRestaurant) {
			resp.Conflict(c, err.Error())
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OKWithNotice(c, nil, n)
}

// PATCH /cart/items/qty
func (h *CartController) ChangeQty(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var body struct {
		ItemID uint `json:"itemId" binding:"required"`
		Delta  int  `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.ChangeQty(c.Request.Context(), sid, body.ItemID, body.Delta); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "cart item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, nil)
}

// DELETE /cart/items
func (h *CartController) RemoveItem(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var body struct {
		ItemID uint `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	n, err := h.Svc.RemoveItem(c.Request.Context(), sid, body.ItemID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKWithNotice(c, nil, n)
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	if err := h.Svc.Clear(c.Request.Context(), sid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, nil)
}

// POST /cart/checkout
func (h *CartController) Checkout(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Orders.CheckoutFromCart(c.Request.Context(), sid, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			resp.BadRequestWithNotice(c, err.Error(),
				notice.Destructive("Empty Cart", "Please add items to your cart before proceeding."))
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(201, gin.H{
		"ok":     true,
		"data":   out,
		"notice": notice.Info("Redirecting to Checkout", "Please wait..."),
	})
}
