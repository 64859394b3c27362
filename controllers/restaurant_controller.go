// controllers/restaurant_controller.go
package controllers

import (
	"errors"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Service  *services.CatalogService
	PageSize int
}

func NewRestaurantController(s *services.CatalogService, pageSize int) *RestaurantController {
	return &RestaurantController{Service: s, PageSize: pageSize}
}

// ====== Response DTOs ======

type RestaurantCard struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Picture      string   `json:"picture"`
	Rating       float64  `json:"rating"`
	DeliveryTime string   `json:"deliveryTime"`
	PriceRange   string   `json:"priceRange,omitempty"`
	CuisineTypes []string `json:"cuisineTypes"`
}

type ListingResponse struct {
	Items      []RestaurantCard `json:"items"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	Total      int              `json:"total"`
}

type MenuItemDTO struct {
	ID            uint              `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description,omitempty"`
	Price         float64           `json:"price"`
	Picture       string            `json:"picture,omitempty"`
	Customization *CustomizationDTO `json:"customization,omitempty"`
}

type CustomizationDTO struct {
	Sizes    []string `json:"sizes,omitempty"`
	Toppings []string `json:"toppings,omitempty"`
}

type MenuCategoryDTO struct {
	Category string        `json:"category"`
	Items    []MenuItemDTO `json:"items"`
}

type RestaurantDetail struct {
	RestaurantCard
	Menu []MenuCategoryDTO `json:"menu"`
}

// ====== Public: listing with filter/sort/pagination ======
// GET /restaurants?search=&cuisine=&sort=&page=&location=
func (ctl *RestaurantController) List(c *gin.Context) {
	search := c.Query("search")
	cuisine := c.DefaultQuery("cuisine", services.CuisineAll)
	sortBy := services.SortKey(c.DefaultQuery("sort", string(services.SortByRating)))
	// location is collected by the home page search bar; filtering on it is
	// the real backend's job, so it is accepted and ignored here
	_ = c.Query("location")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	result, err := ctl.Service.Listing(c.Request.Context(), search, cuisine, sortBy, page, ctl.PageSize)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	// a URL can ask for any page; walk it back into range instead of 404ing
	if result.TotalPages > 0 && page > result.TotalPages {
		result, err = ctl.Service.Listing(c.Request.Context(), search, cuisine, sortBy, result.TotalPages, ctl.PageSize)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
	}

	out := ListingResponse{
		Items:      make([]RestaurantCard, 0, len(result.Items)),
		Page:       result.Page,
		TotalPages: result.TotalPages,
		Total:      result.Total,
	}
	for i := range result.Items {
		out.Items = append(out.Items, mapToCard(&result.Items[i]))
	}
	resp.OK(c, out)
}

// ====== Public: ดูร้านเดี่ยวพร้อมเมนู ======
func (ctl *RestaurantController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	r, err := ctl.Service.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, RestaurantDetail{RestaurantCard: mapToCard(r), Menu: mapToMenu(r)})
}

// ====== Public: เมนูอย่างเดียว (ไม่เอาข้อมูลร้าน) ======
func (ctl *RestaurantController) Menu(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	r, err := ctl.Service.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, mapToMenu(r))
}

// ====== Helpers ======

func mapToCard(r *entity.Restaurant) RestaurantCard {
	card := RestaurantCard{
		ID:           r.ID,
		Name:         r.Name,
		Picture:      r.Picture,
		Rating:       r.Rating,
		DeliveryTime: r.DeliveryTime,
		PriceRange:   r.PriceRange,
		CuisineTypes: make([]string, 0, len(r.Cuisines)),
	}
	for _, cu := range r.Cuisines {
		card.CuisineTypes = append(card.CuisineTypes, cu.Name)
	}
	return card
}

func mapToMenu(r *entity.Restaurant) []MenuCategoryDTO {
	menu := make([]MenuCategoryDTO, 0, len(r.Categories))
	for _, cat := range r.Categories {
		dto := MenuCategoryDTO{Category: cat.CategoryName, Items: make([]MenuItemDTO, 0, len(cat.Menus))}
		for i := range cat.Menus {
			dto.Items = append(dto.Items, mapToMenuItem(&cat.Menus[i]))
		}
		menu = append(menu, dto)
	}
	return menu
}

func mapToMenuItem(m *entity.Menu) MenuItemDTO {
	item := MenuItemDTO{
		ID:          m.ID,
		Name:        m.MenuName,
		Description: m.Detail,
		Price:       m.Price,
		Picture:     m.Picture,
	}
	if m.Customizable() {
		cust := &CustomizationDTO{}
		for _, opt := range m.Options {
			for _, v := range opt.OptionValues {
				switch opt.OptionType {
				case entity.OptionTypeSingle:
					cust.Sizes = append(cust.Sizes, v.ValueName)
				case entity.OptionTypeMulti:
					cust.Toppings = append(cust.Toppings, v.ValueName)
				}
			}
		}
		item.Customization = cust
	}
	return item
}
