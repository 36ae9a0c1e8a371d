package out

import (
	"context"

	"chefctl/internal/modules/ordering/domain"
)

// Gateway is the remote ordering surface. Every call requires an established
// session; an expired one surfaces as an authentication failure.
type Gateway interface {
	ListOrders(ctx context.Context, employeeID, dateFrom, dateTo string) ([]domain.OrderSummary, error)
	GetOrder(ctx context.Context, employeeID string, summary domain.OrderSummary) (domain.OrderDetail, error)
	// SubmitOrder sends the whole selection and waits for the service's
	// verdict. Submissions may not be idempotent server-side, so callers
	// must never retry one automatically.
	SubmitOrder(ctx context.Context, employeeID string, summary domain.OrderSummary, selection domain.Selection) error
}

// Prompter gathers the user's choices. Implementations report a cancelled
// prompt as an error so the workflow aborts cleanly.
type Prompter interface {
	PickOrder(ctx context.Context, orders []domain.OrderSummary) (domain.OrderSummary, error)
	PickFoods(ctx context.Context, detail domain.OrderDetail) (domain.Selection, error)
	// ConfirmResubmit warns that submitting will rewrite an existing order.
	ConfirmResubmit(ctx context.Context, summary domain.OrderSummary) (bool, error)
}
