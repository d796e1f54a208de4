package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the persisted states of an order.
// A paid order keeps status "completed"; payment is recorded
// by the existence of a Payment row.
type OrderStatus string

const (
	OrderActive    OrderStatus = "active"
	OrderCompleted OrderStatus = "completed"
)

type Order struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	TableID   uint            `json:"table_id" gorm:"not null"`
	Table     Table           `json:"table,omitempty" gorm:"foreignKey:TableID"`
	Status    OrderStatus     `json:"status" gorm:"not null;default:'active'"`
	Subtotal  decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2)"`
	Tax       decimal.Decimal `json:"tax" gorm:"type:decimal(10,2)"`
	Total     decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`
	Items     []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	OrderID    uint            `json:"order_id" gorm:"not null"`
	MenuItemID uint            `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem        `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(8,2);not null"` // snapshot price at time of order
	LineTotal  decimal.Decimal `json:"line_total" gorm:"type:decimal(10,2);not null"`
}
