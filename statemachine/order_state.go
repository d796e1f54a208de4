package statemachine

import (
	"errors"

	"restaurant-pos-api/models"
)

// StatePaid is virtual: it is never written to the orders table.
// An order reaches it the moment a Payment row references it.
const StatePaid models.OrderStatus = "paid"

// Transition defines a valid state change and the event that triggers it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Event string
}

// validTransitions is the authoritative order lifecycle definition
var validTransitions = []Transition{
	// Completing an order freezes its items and generates the bill
	{From: models.OrderActive, To: models.OrderCompleted, Event: "complete"},
	// Paying settles the bill and releases the table
	{From: models.OrderCompleted, To: StatePaid, Event: "pay"},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks whether an order may move from one state to another
func CanTransition(from, to models.OrderStatus) error {
	if transitionMap[transitionKey{From: from, To: to}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed. Valid transitions from " + string(from) +
			" are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full order lifecycle for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}

// ── Table occupancy ─────────────────────────────────────────────────────────

// TableTransition defines a valid occupancy change for a dining table
type TableTransition struct {
	From  models.TableStatus
	To    models.TableStatus
	Event string
}

var tableTransitions = []TableTransition{
	// Explicit occupy, or implicit via order creation
	{From: models.TableAvailable, To: models.TableOccupied, Event: "occupy"},
	// Released only by payment completion
	{From: models.TableOccupied, To: models.TableAvailable, Event: "release"},
}

// CanTableTransition checks whether a table may change occupancy state
func CanTableTransition(from, to models.TableStatus) error {
	for _, t := range tableTransitions {
		if t.From == from && t.To == to {
			return nil
		}
	}
	return errors.New(
		"invalid table transition: " + string(from) + " -> " + string(to),
	)
}

// GetTableTransitions returns the table occupancy lifecycle for documentation
func GetTableTransitions() []TableTransition {
	return tableTransitions
}
