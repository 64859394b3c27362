package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	catalogSvc := services.NewCatalogService(restRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo, cfg.DeliveryFee, cfg.TaxRate)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, cartSvc)
	customizeSvc := services.NewCustomizeService(menuRepo, cartSvc)

	// Live tracking: the hub fans transitions out, the tracker produces them
	hub := ws.NewTrackingHub()
	tracker := services.NewTracker(orderSvc, cfg.StatusInterval, services.NewRealClock(), hub.Notify)
	hub.SetTracker(tracker)
	go hub.Run()

	// Controllers
	restCtrl := controllers.NewRestaurantController(catalogSvc, cfg.PageSize)
	cartCtrl := controllers.NewCartController(cartSvc, orderSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	customizeCtrl := controllers.NewCustomizeController(customizeSvc)

	// Catalog (public)
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/menu", restCtrl.Menu)

	// Cart (session-scoped)
	cart := r.Group("/cart", middlewares.SessionMiddleware())
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/qty", cartCtrl.ChangeQty)
		cart.DELETE("/items", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
		cart.POST("/checkout", cartCtrl.Checkout)
	}

	// Customization dialog (session-scoped)
	customize := r.Group("/customize", middlewares.SessionMiddleware())
	{
		customize.POST("/open", customizeCtrl.Open)
		customize.GET("", customizeCtrl.Current)
		customize.POST("/size", customizeCtrl.ChooseSize)
		customize.POST("/topping", customizeCtrl.ToggleTopping)
		customize.POST("/commit", customizeCtrl.Commit)
		customize.POST("/cancel", customizeCtrl.Cancel)
	}

	// Orders
	r.GET("/orders/:id", orderCtrl.Detail)
	r.GET("/ws/orders/:id", hub.HandleWebSocket)
}
