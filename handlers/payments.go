package handlers

import (
	"net/http"
	"time"

	"restaurant-pos-api/config"
	"restaurant-pos-api/models"
	"restaurant-pos-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProcessPaymentRequest struct {
	OrderID uint                 `json:"order_id" binding:"required"`
	Amount  decimal.Decimal      `json:"amount" binding:"required"`
	Method  models.PaymentMethod `json:"method" binding:"required"`
}

// ProcessPayment settles a completed order. Exactly one payment per
// order, exact amount only. Releases the order's table on success.
func ProcessPayment(c *gin.Context) {
	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_id, amount and method are required"})
		return
	}
	if !req.Method.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Method must be one of: cash, card"})
		return
	}

	tx := config.DB.Begin()

	var order models.Order
	if err := tx.First(&order, req.OrderID).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := statemachine.CanTransition(order.Status, statemachine.StatePaid); err != nil {
		tx.Rollback()
		c.JSON(http.StatusConflict, gin.H{
			"error":  "Order must be completed before payment",
			"reason": err.Error(),
		})
		return
	}

	var existing models.Payment
	if err := tx.Where("order_id = ?", order.ID).First(&existing).Error; err == nil {
		tx.Rollback()
		c.JSON(http.StatusConflict, gin.H{"error": "Payment already processed for this order"})
		return
	}

	if !req.Amount.Equal(order.Total) {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Amount " + req.Amount.StringFixed(2) + " does not match order total " + order.Total.StringFixed(2),
		})
		return
	}

	payment := models.Payment{
		OrderID: order.ID,
		Amount:  req.Amount,
		Method:  req.Method,
		PaidAt:  time.Now(),
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process payment"})
		return
	}

	// Settling the bill releases the table
	if err := tx.Model(&models.Table{}).Where("id = ?", order.TableID).
		Update("status", models.TableAvailable).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to release table"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process payment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment processed, table released",
		"payment": serializePayment(payment),
	})
}
