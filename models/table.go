package models

// TableStatus defines the occupancy states of a dining table
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
)

type Table struct {
	ID     uint        `json:"id" gorm:"primaryKey"`
	Name   string      `json:"name" gorm:"uniqueIndex;not null"`
	Status TableStatus `json:"status" gorm:"not null;default:'available'"`
}
