package models

import "github.com/shopspring/decimal"

// MenuCategory defines the allowed menu sections
type MenuCategory string

const (
	CategoryFood    MenuCategory = "food"
	CategoryDrink   MenuCategory = "drink"
	CategoryDessert MenuCategory = "dessert"
)

// Valid reports whether the category is one of the known sections
func (c MenuCategory) Valid() bool {
	switch c {
	case CategoryFood, CategoryDrink, CategoryDessert:
		return true
	}
	return false
}

type MenuItem struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(8,2);not null"`
	Category    MenuCategory    `json:"category" gorm:"not null"`
	IsAvailable bool            `json:"is_available" gorm:"default:true"`
}
