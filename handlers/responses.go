package handlers

import (
	"time"

	"restaurant-pos-api/models"

	"github.com/shopspring/decimal"
)

// Response shapes denormalize convenience fields (table_name,
// menu_item_name, order_id) onto the persisted entities.

type OrderItemResponse struct {
	ID           uint            `json:"id"`
	MenuItemID   uint            `json:"menu_item"`
	MenuItemName string          `json:"menu_item_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

type OrderResponse struct {
	ID        uint                `json:"id"`
	TableID   uint                `json:"table"`
	TableName string              `json:"table_name"`
	Status    models.OrderStatus  `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	Subtotal  decimal.Decimal     `json:"subtotal"`
	Tax       decimal.Decimal     `json:"tax"`
	Total     decimal.Decimal     `json:"total"`
	Items     []OrderItemResponse `json:"items"`
}

type PaymentResponse struct {
	ID      uint                 `json:"id"`
	OrderID uint                 `json:"order_id"`
	Amount  decimal.Decimal      `json:"amount"`
	Method  models.PaymentMethod `json:"method"`
	PaidAt  time.Time            `json:"paid_at"`
}

// serializeOrder expects Table and Items.MenuItem to be preloaded
func serializeOrder(o models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ID:           it.ID,
			MenuItemID:   it.MenuItemID,
			MenuItemName: it.MenuItem.Name,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			LineTotal:    it.LineTotal,
		})
	}
	return OrderResponse{
		ID:        o.ID,
		TableID:   o.TableID,
		TableName: o.Table.Name,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
		Subtotal:  o.Subtotal,
		Tax:       o.Tax,
		Total:     o.Total,
		Items:     items,
	}
}

func serializePayment(p models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:      p.ID,
		OrderID: p.OrderID,
		Amount:  p.Amount,
		Method:  p.Method,
		PaidAt:  p.PaidAt,
	}
}
