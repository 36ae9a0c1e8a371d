package service

import (
	"fmt"

	"chefctl/internal/modules/ordering/domain"
	"chefctl/internal/platform/clock"
)

const (
	dateFormat    = "2006-01-02"
	lookaheadDays = 30
)

// OrderService holds the calendar and selection rules of the workflow. It
// owns no network or storage state.
type OrderService struct {
	clk clock.Clock
}

func NewOrderService(clk clock.Clock) *OrderService {
	return &OrderService{clk: clk}
}

// Window returns the listing range: tomorrow through tomorrow plus thirty
// days, both inclusive, as YYYY-MM-DD.
func (s *OrderService) Window() (string, string) {
	tomorrow := s.clk.Now().AddDate(0, 0, 1)
	return tomorrow.Format(dateFormat), tomorrow.AddDate(0, 0, lookaheadDays).Format(dateFormat)
}

// Selectable drops the slots the service marked ineligible, keeping order.
func (s *OrderService) Selectable(orders []domain.OrderSummary) []domain.OrderSummary {
	var open []domain.OrderSummary
	for _, o := range orders {
		if o.Enabled {
			open = append(open, o)
		}
	}
	return open
}

// Flatten lists every food of a category as one flat choice list: type lists
// concatenated in service order, item order preserved within each.
func (s *OrderService) Flatten(category domain.FoodCategory) []domain.Food {
	var foods []domain.Food
	for _, t := range category.Types {
		foods = append(foods, t.Foods...)
	}
	return foods
}

// ValidateSelection checks the one-choice-per-category invariant before
// anything is sent to the service.
func (s *OrderService) ValidateSelection(detail domain.OrderDetail, selection domain.Selection) error {
	if len(selection) != len(detail.Categories) {
		return fmt.Errorf("selection covers %d of %d categories", len(selection), len(detail.Categories))
	}
	for _, category := range detail.Categories {
		food, ok := selection[category.Column]
		if !ok {
			return fmt.Errorf("no food chosen for %s", category.Name)
		}
		if food.ID == "" {
			return fmt.Errorf("chosen food for %s has no id", category.Name)
		}
	}
	return nil
}
