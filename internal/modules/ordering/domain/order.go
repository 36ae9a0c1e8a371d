package domain

import "fmt"

// OrderSummary is one day's order slot inside the lookahead window. An empty
// OrderID marks a slot no order was placed for yet.
type OrderSummary struct {
	OrderID string
	MenuID  string
	Date    string
	Status  string
	Enabled bool
}

// Label is the line shown when picking a slot.
func (o OrderSummary) Label() string {
	return fmt.Sprintf("%s - [%s]", o.Date, o.Status)
}

// Food is one selectable dish.
type Food struct {
	ID   string
	Name string
}

// FoodType groups dishes of one type within a category, in service order.
type FoodType struct {
	Name  string
	Foods []Food
}

// FoodCategory is one decision the user makes. Column is the stable key the
// submission is keyed by.
type FoodCategory struct {
	Name   string
	Column string
	Types  []FoodType
}

// OrderDetail is the full set of categories for one slot, in service order.
type OrderDetail struct {
	Categories []FoodCategory
}

// Selection maps a category column to the food chosen for it. A submission
// needs exactly one entry per category of the detail it was built from.
type Selection map[string]Food
