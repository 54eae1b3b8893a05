package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mvegadev/comanda/controllers"
	"github.com/mvegadev/comanda/middlewares"
	"github.com/mvegadev/comanda/models"
)

// Controllers carries every handler group the router mounts.
type Controllers struct {
	Users    *controllers.UserController
	Tables   *controllers.TableController
	Menu     *controllers.MenuController
	Orders   *controllers.OrderController
	Payments *controllers.PaymentController
	WS       *controllers.WSController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.POST("/register", ctrl.Users.Register)
	r.POST("/login", ctrl.Users.Login)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/ws", ctrl.WS.Subscribe)
		auth.GET("/profile", ctrl.Users.GetProfile)

		users := auth.Group("/users")
		users.Use(middlewares.RequireRole())
		{
			users.GET("", ctrl.Users.GetAllUsers)
			users.GET("/:user_id", ctrl.Users.GetUser)
			users.PATCH("/:user_id", ctrl.Users.UpdateUser)
		}

		tables := auth.Group("/tables")
		{
			tables.GET("", ctrl.Tables.GetAllTables)
			tables.GET("/:table_id", ctrl.Tables.GetTable)
			tables.POST("", middlewares.RequireRole(), ctrl.Tables.CreateTable)
			tables.PATCH("/:table_id", middlewares.RequireRole(), ctrl.Tables.UpdateTable)
			tables.POST("/:table_id/free", middlewares.RequireRole(models.RoleWaiter), ctrl.Tables.FreeTable)
			tables.POST("/:table_id/available", middlewares.RequireRole(models.RoleWaiter), ctrl.Tables.MarkTableAvailable)
			tables.POST("/:table_id/reserve", middlewares.RequireRole(models.RoleWaiter), ctrl.Tables.ReserveTable)
			tables.DELETE("/:table_id", middlewares.RequireRole(), ctrl.Tables.DeleteTable)
		}

		menu := auth.Group("/menu")
		{
			menu.GET("", ctrl.Menu.GetAllMenuItems)
			menu.GET("/:menu_id", ctrl.Menu.GetMenuItem)
			menu.POST("", middlewares.RequireRole(), ctrl.Menu.CreateMenuItem)
			menu.PATCH("/:menu_id", middlewares.RequireRole(), ctrl.Menu.UpdateMenuItem)
			menu.POST("/:menu_id/toggle", middlewares.RequireRole(models.RoleChef), ctrl.Menu.ToggleAvailability)
			menu.DELETE("/:menu_id", middlewares.RequireRole(), ctrl.Menu.DeleteMenuItem)
		}

		orders := auth.Group("/orders")
		{
			orders.GET("", ctrl.Orders.GetAllOrders)
			orders.GET("/:order_id", ctrl.Orders.GetOrder)
			orders.POST("", middlewares.RequireRole(models.RoleWaiter), ctrl.Orders.CreateOrder)
			orders.PATCH("/:order_id", middlewares.RequireRole(models.RoleWaiter), ctrl.Orders.UpdateOrder)
			orders.POST("/:order_id/items", middlewares.RequireRole(models.RoleWaiter), ctrl.Orders.AddOrderItem)
			orders.DELETE("/:order_id/items/:item_id", middlewares.RequireRole(models.RoleWaiter), ctrl.Orders.RemoveOrderItem)
			orders.PATCH("/:order_id/items/:item_id", middlewares.RequireRole(models.RoleWaiter), ctrl.Orders.UpdateOrderItemQuantity)

			// kitchen pipeline
			orders.POST("/:order_id/confirm", middlewares.RequireRole(models.RoleWaiter), ctrl.Orders.ConfirmOrder)
			orders.POST("/:order_id/prepare", middlewares.RequireRole(models.RoleChef), ctrl.Orders.StartPreparing)
			orders.POST("/:order_id/ready", middlewares.RequireRole(models.RoleChef), ctrl.Orders.MarkOrderReady)
			orders.POST("/:order_id/deliver", middlewares.RequireRole(models.RoleWaiter), ctrl.Orders.DeliverOrder)
			orders.POST("/:order_id/cancel", middlewares.RequireRole(models.RoleWaiter), ctrl.Orders.CancelOrder)
		}

		payments := auth.Group("/payments")
		payments.Use(middlewares.RequireRole(models.RoleWaiter))
		{
			payments.GET("", ctrl.Payments.GetAllPayments)
			payments.GET("/:payment_id", ctrl.Payments.GetPayment)
			payments.POST("", ctrl.Payments.CreatePayment)
			payments.POST("/:payment_id/process", ctrl.Payments.ProcessPayment)
			payments.POST("/:payment_id/refund", ctrl.Payments.RefundPayment)
		}
	}

	return r
}
