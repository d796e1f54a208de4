package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod defines accepted payment instruments
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// Valid reports whether the method is an accepted instrument
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard:
		return true
	}
	return false
}

// Payment settles exactly one order; the unique index on OrderID
// is what makes the relationship 1:1.
type Payment struct {
	ID      uint            `json:"id" gorm:"primaryKey"`
	OrderID uint            `json:"order_id" gorm:"uniqueIndex;not null"`
	Order   Order           `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	Amount  decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Method  PaymentMethod   `json:"method" gorm:"not null"`
	PaidAt  time.Time       `json:"paid_at"`
}
