package controllers

import (
	"errors"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CustomizeController struct {
	Svc *services.CustomizeService
}

func NewCustomizeController(s *services.CustomizeService) *CustomizeController {
	return &CustomizeController{Svc: s}
}

type SelectionResponse struct {
	Size     string   `json:"size,omitempty"`
	Toppings []string `json:"toppings"`
}

func (ctl *CustomizeController) selection(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	size, toppings, ok := ctl.Svc.Selection(sid)
	if !ok {
		resp.NotFound(c, "no customization in progress")
		return
	}
	if toppings == nil {
		toppings = []string{}
	}
	resp.OK(c, SelectionResponse{Size: size, Toppings: toppings})
}

// POST /customize/open {menuId}
func (ctl *CustomizeController) Open(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var body struct {
		MenuID uint `json:"menuId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := ctl.Svc.Open(c.Request.Context(), sid, body.MenuID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu not found")
			return
		}
		if errors.Is(err, services.ErrNotCustomizable) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, mapToMenuItem(m))
}

// GET /customize
func (ctl *CustomizeController) Current(c *gin.Context) {
	ctl.selection(c)
}

// POST /customize/size {size}
func (ctl *CustomizeController) ChooseSize(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var body struct {
		Size string `json:"size" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.ChooseSize(sid, body.Size); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctl.selection(c)
}

// POST /customize/topping {topping}
func (ctl *CustomizeController) ToggleTopping(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var body struct {
		Topping string `json:"topping" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.ToggleTopping(sid, body.Topping); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctl.selection(c)
}

// POST /customize/commit {qty}
func (ctl *CustomizeController) Commit(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var body struct {
		Qty int `json:"qty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil && err.Error() != "EOF" {
		resp.BadRequest(c, err.Error())
		return
	}
	n, err := ctl.Svc.Commit(c.Request.Context(), sid, body.Qty)
	if err != nil {
		if errors.Is(err, services.ErrNoOpenSelection) {
			resp.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, services.ErrCartOtherRestaurant) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OKWithNotice(c, nil, n)
}

// POST /customize/cancel
func (ctl *CustomizeController) Cancel(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	ctl.Svc.Cancel(sid)
	resp.OK(c, nil)
}
