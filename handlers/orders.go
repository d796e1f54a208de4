package handlers

import (
	"net/http"

	"restaurant-pos-api/config"
	"restaurant-pos-api/models"
	"restaurant-pos-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItemInput struct {
	MenuID uint `json:"menu_id"`
	Qty    int  `json:"qty"`
}

type CreateOrderRequest struct {
	TableID uint             `json:"table_id" binding:"required"`
	Items   []OrderItemInput `json:"items" binding:"required,min=1"`
}

// CreateOrder opens a new active order on a table, snapshotting each
// item's current menu price. Runs as one transaction: an invalid item
// mid-list leaves no partial order behind.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "table_id and items are required"})
		return
	}

	tx := config.DB.Begin()

	var table models.Table
	if err := tx.First(&table, req.TableID).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}

	// One active order per table, checked inside the transaction
	var active int64
	tx.Model(&models.Order{}).Where("table_id = ? AND status = ?", table.ID, models.OrderActive).Count(&active)
	if active > 0 {
		tx.Rollback()
		c.JSON(http.StatusConflict, gin.H{"error": "Table already has an active order"})
		return
	}

	// Seating a table implicitly occupies it
	if table.Status == models.TableAvailable {
		if err := tx.Model(&table).Update("status", models.TableOccupied).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to occupy table"})
			return
		}
	}

	order := models.Order{
		TableID:  table.ID,
		Status:   models.OrderActive,
		Subtotal: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    decimal.Zero,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	subtotal := decimal.Zero
	for _, in := range req.Items {
		lineTotal, status, msg := appendOrderItem(tx, order.ID, in)
		if msg != "" {
			tx.Rollback()
			c.JSON(status, gin.H{"error": msg})
			return
		}
		subtotal = subtotal.Add(lineTotal)
	}

	if err := tx.Model(&order).Update("subtotal", subtotal).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	config.DB.Preload("Items.MenuItem").Preload("Table").First(&order, order.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Order created", "order": serializeOrder(order)})
}

// appendOrderItem validates one input line and writes its OrderItem.
// Returns the line total, or a non-empty error message with the HTTP
// status the caller should respond with.
func appendOrderItem(tx *gorm.DB, orderID uint, in OrderItemInput) (decimal.Decimal, int, string) {
	if in.MenuID == 0 || in.Qty <= 0 {
		return decimal.Zero, http.StatusBadRequest, "Each item must have menu_id and qty > 0"
	}

	var menuItem models.MenuItem
	if err := tx.First(&menuItem, in.MenuID).Error; err != nil {
		return decimal.Zero, http.StatusNotFound, "Menu item not found"
	}
	if !menuItem.IsAvailable {
		return decimal.Zero, http.StatusBadRequest, "Menu item '" + menuItem.Name + "' is not available"
	}

	lineTotal := menuItem.Price.Mul(decimal.NewFromInt(int64(in.Qty)))
	item := models.OrderItem{
		OrderID:    orderID,
		MenuItemID: menuItem.ID,
		Quantity:   in.Qty,
		UnitPrice:  menuItem.Price,
		LineTotal:  lineTotal,
	}
	if err := tx.Create(&item).Error; err != nil {
		return decimal.Zero, http.StatusInternalServerError, "Failed to add order item"
	}
	return lineTotal, 0, ""
}

type AddItemsRequest struct {
	Items []OrderItemInput `json:"items" binding:"required,min=1"`
}

// AddItemsToOrder appends lines to an active order and advances the
// running subtotal. Tax and total are untouched until completion.
func AddItemsToOrder(c *gin.Context) {
	var req AddItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items list is required"})
		return
	}

	tx := config.DB.Begin()

	var order models.Order
	if err := tx.First(&order, c.Param("id")).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.Status != models.OrderActive {
		tx.Rollback()
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot add items to a completed order"})
		return
	}

	subtotal := order.Subtotal
	for _, in := range req.Items {
		lineTotal, status, msg := appendOrderItem(tx, order.ID, in)
		if msg != "" {
			tx.Rollback()
			c.JSON(status, gin.H{"error": msg})
			return
		}
		subtotal = subtotal.Add(lineTotal)
	}

	if err := tx.Model(&order).Update("subtotal", subtotal).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add items"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add items"})
		return
	}

	config.DB.Preload("Items.MenuItem").Preload("Table").First(&order, order.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Items added", "order": serializeOrder(order)})
}

// CompleteOrder freezes the order and generates its bill. The subtotal
// is recomputed from the items, not trusted from the running field,
// so the stored bill always reconciles with its lines.
func CompleteOrder(c *gin.Context) {
	tx := config.DB.Begin()

	var order models.Order
	if err := tx.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.OrderCompleted); err != nil {
		tx.Rollback()
		c.JSON(http.StatusConflict, gin.H{
			"error":  "Order is already completed",
			"reason": err.Error(),
		})
		return
	}

	subtotal := decimal.Zero
	for _, item := range order.Items {
		subtotal = subtotal.Add(item.LineTotal)
	}
	tax := subtotal.Mul(config.TaxRate).RoundBank(2)
	total := subtotal.Add(tax).RoundBank(2)

	if err := tx.Model(&order).Updates(map[string]interface{}{
		"subtotal": subtotal,
		"tax":      tax,
		"total":    total,
		"status":   models.OrderCompleted,
	}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete order"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete order"})
		return
	}

	config.DB.Preload("Items.MenuItem").Preload("Table").First(&order, order.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Order completed, bill generated", "order": serializeOrder(order)})
}

// GetOrder returns a single order with its lines and table name
func GetOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.
		Preload("Items.MenuItem").
		Preload("Table").
		First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, serializeOrder(order))
}

// ListActiveOrders returns active orders, newest first
func ListActiveOrders(c *gin.Context) {
	var orders []models.Order
	config.DB.Preload("Items.MenuItem").Preload("Table").
		Where("status = ?", models.OrderActive).
		Order("created_at desc").
		Find(&orders)

	resp := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, serializeOrder(o))
	}
	c.JSON(http.StatusOK, gin.H{"count": len(resp), "orders": resp})
}

// GetActiveOrderByTable reports whether a table has an active order
func GetActiveOrderByTable(c *gin.Context) {
	var order models.Order
	err := config.DB.
		Where("table_id = ? AND status = ?", c.Param("table_id"), models.OrderActive).
		First(&order).Error
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"exists": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": true, "order_id": order.ID})
}

// GetStateMachineInfo returns the full lifecycle for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	orderInfo := []gin.H{}
	for _, t := range statemachine.GetAllTransitions() {
		orderInfo = append(orderInfo, gin.H{"from": t.From, "to": t.To, "event": t.Event})
	}
	tableInfo := []gin.H{}
	for _, t := range statemachine.GetTableTransitions() {
		tableInfo = append(tableInfo, gin.H{"from": t.From, "to": t.To, "event": t.Event})
	}
	c.JSON(http.StatusOK, gin.H{
		"order_lifecycle": orderInfo,
		"table_occupancy": tableInfo,
		"terminal_states": []string{string(statemachine.StatePaid)},
		"description":     "Restaurant POS order lifecycle state machine",
	})
}
