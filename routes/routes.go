package routes

import (
	"restaurant-pos-api/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Tables ─────────────────────────────────────────────────────
	r.GET("/tables/", handlers.ListTables)
	r.POST("/tables/:id/occupy/", handlers.OccupyTable)

	// ── Menu ───────────────────────────────────────────────────────
	r.GET("/menu/", handlers.ListMenu)

	// ── Orders ─────────────────────────────────────────────────────
	r.POST("/orders/", handlers.CreateOrder)
	r.GET("/orders/active/", handlers.ListActiveOrders)
	r.GET("/orders/:id/", handlers.GetOrder)
	r.PUT("/orders/:id/add-items/", handlers.AddItemsToOrder)
	r.POST("/orders/:id/complete/", handlers.CompleteOrder)
	r.GET("/orders/table/:table_id/active/", handlers.GetActiveOrderByTable)

	// ── Payments ───────────────────────────────────────────────────
	r.POST("/payments/", handlers.ProcessPayment)

	// ── Lifecycle docs (great for Postman) ─────────────────────────
	r.GET("/state-machine", handlers.GetStateMachineInfo)

	// ── Administration ─────────────────────────────────────────────
	admin := r.Group("/admin")
	{
		admin.POST("/tables/", handlers.CreateTable)
		admin.DELETE("/tables/:id/", handlers.DeleteTable)
		admin.POST("/menu/", handlers.CreateMenuItem)
		admin.PUT("/menu/:itemId/", handlers.UpdateMenuItem)
		admin.DELETE("/menu/:itemId/", handlers.DeleteMenuItem)
	}
}
