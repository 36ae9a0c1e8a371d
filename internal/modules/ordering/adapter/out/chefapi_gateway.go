package out

import (
	"context"

	"chefctl/internal/chefapi"
	"chefctl/internal/modules/ordering/domain"
	orderingout "chefctl/internal/modules/ordering/port/out"
)

// ChefAPIGateway adapts the service client to the ordering module's outbound
// port, mapping wire payloads into domain values.
type ChefAPIGateway struct {
	client *chefapi.Client
}

func NewChefAPIGateway(client *chefapi.Client) orderingout.Gateway {
	return &ChefAPIGateway{client: client}
}

func (g *ChefAPIGateway) ListOrders(ctx context.Context, employeeID, dateFrom, dateTo string) ([]domain.OrderSummary, error) {
	summaries, err := g.client.ListOrders(ctx, chefapi.ID(employeeID), dateFrom, dateTo)
	if err != nil {
		return nil, err
	}
	out := make([]domain.OrderSummary, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, domain.OrderSummary{
			OrderID: string(s.OrderID),
			MenuID:  string(s.MenuID),
			Date:    s.Date,
			Status:  s.Status,
			Enabled: bool(s.Enabled),
		})
	}
	return out, nil
}

func (g *ChefAPIGateway) GetOrder(ctx context.Context, employeeID string, summary domain.OrderSummary) (domain.OrderDetail, error) {
	detail, err := g.client.GetOrder(ctx, chefapi.ID(employeeID), chefapi.ID(summary.OrderID), chefapi.ID(summary.MenuID), summary.Date)
	if err != nil {
		return domain.OrderDetail{}, err
	}
	out := domain.OrderDetail{}
	for _, c := range detail.Foods {
		category := domain.FoodCategory{Name: c.CategoryName, Column: c.CategoryColumn}
		for _, t := range c.FoodTypes {
			foodType := domain.FoodType{Name: t.Name}
			for _, f := range t.Foods {
				foodType.Foods = append(foodType.Foods, domain.Food{ID: string(f.FoodID), Name: f.FoodName})
			}
			category.Types = append(category.Types, foodType)
		}
		out.Categories = append(out.Categories, category)
	}
	return out, nil
}

func (g *ChefAPIGateway) SubmitOrder(ctx context.Context, employeeID string, summary domain.OrderSummary, selection domain.Selection) error {
	params := make(map[string]chefapi.ID, len(selection))
	for column, food := range selection {
		params[column] = chefapi.ID(food.ID)
	}
	_, err := g.client.MakeOrder(ctx, chefapi.ID(employeeID), chefapi.ID(summary.OrderID), chefapi.ID(summary.MenuID), summary.Date, params)
	return err
}
