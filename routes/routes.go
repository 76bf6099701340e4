package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vaishnavisherala/RestaurantSystem/configs"
	"github.com/vaishnavisherala/RestaurantSystem/controllers"
	"github.com/vaishnavisherala/RestaurantSystem/middlewares"
	"github.com/vaishnavisherala/RestaurantSystem/repository"
	"github.com/vaishnavisherala/RestaurantSystem/services"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	tableRepo := repository.NewTableRepository(db)
	itemRepo := repository.NewItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	orderSvc := services.NewOrderService(db, orderRepo, tableRepo, itemRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	tableCtrl := controllers.NewTableController(tableRepo)
	itemCtrl := controllers.NewItemController(itemRepo)
	orderCtrl := controllers.NewOrderController(orderSvc)
	userCtrl := controllers.NewUserController(userRepo)

	api := r.Group("/api")

	// Public
	api.POST("/signup/", authCtrl.Signup)
	api.POST("/token/", authCtrl.Token)
	api.POST("/token/refresh/", authCtrl.Refresh)

	// Everything else carries a bearer access token
	authed := api.Group("", middlewares.AuthMiddleware(db, cfg.JWTSecret))
	{
		authed.GET("/tables/", tableCtrl.List)
		authed.GET("/items/", itemCtrl.List)
		authed.GET("/users/", userCtrl.List)

		authed.GET("/orders/", orderCtrl.List)
		authed.POST("/orders/place_order/", orderCtrl.PlaceOrder)
		authed.POST("/orders/:id/checkout/", orderCtrl.Checkout)
	}
}
