// Package prompt implements the interactive side of the workflow with
// Bubble Tea programs run one step at a time: a login form, then one picker
// per decision. It satisfies the prompter ports of the auth and ordering
// modules, so the workflow itself never touches a terminal.
package prompt

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	authdto "chefctl/internal/modules/auth/dto"
	"chefctl/internal/modules/ordering/domain"
	apperrors "chefctl/internal/platform/errors"
)

type Prompter struct{}

func New() *Prompter {
	return &Prompter{}
}

func ensureTTY() error {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return nil
	}
	return fmt.Errorf("interactive prompts need a terminal; run chefctl from one")
}

func (p *Prompter) LoginFields(ctx context.Context) (authdto.LoginFields, error) {
	if err := ensureTTY(); err != nil {
		return authdto.LoginFields{}, err
	}
	final, err := tea.NewProgram(newLoginModel(), tea.WithContext(ctx)).Run()
	if err != nil {
		return authdto.LoginFields{}, fmt.Errorf("login prompt: %w", err)
	}
	m := final.(loginModel)
	if m.cancelled {
		return authdto.LoginFields{}, fmt.Errorf("login: %w", apperrors.ErrPromptCancelled)
	}
	return m.fields(), nil
}

// selectOne runs a picker and returns the chosen index.
func selectOne(ctx context.Context, title string, items []string) (int, error) {
	if err := ensureTTY(); err != nil {
		return 0, err
	}
	final, err := tea.NewProgram(newPickerModel(title, items), tea.WithContext(ctx)).Run()
	if err != nil {
		return 0, fmt.Errorf("prompt %q: %w", title, err)
	}
	m := final.(pickerModel)
	if m.cancelled {
		return 0, fmt.Errorf("%s: %w", title, apperrors.ErrPromptCancelled)
	}
	return m.cursor, nil
}

func (p *Prompter) PickOrder(ctx context.Context, orders []domain.OrderSummary) (domain.OrderSummary, error) {
	labels := make([]string, len(orders))
	for i, o := range orders {
		labels[i] = o.Label()
	}
	idx, err := selectOne(ctx, "Pick an order", labels)
	if err != nil {
		return domain.OrderSummary{}, err
	}
	return orders[idx], nil
}

func (p *Prompter) PickFoods(ctx context.Context, detail domain.OrderDetail) (domain.Selection, error) {
	selection := domain.Selection{}
	for _, category := range detail.Categories {
		var foods []domain.Food
		for _, t := range category.Types {
			foods = append(foods, t.Foods...)
		}
		if len(foods) == 0 {
			return nil, fmt.Errorf("category %s offers no foods", category.Name)
		}
		labels := make([]string, len(foods))
		for i, f := range foods {
			labels[i] = f.Name
		}
		idx, err := selectOne(ctx, category.Name, labels)
		if err != nil {
			return nil, err
		}
		selection[category.Column] = foods[idx]
	}
	return selection, nil
}

func (p *Prompter) ConfirmResubmit(ctx context.Context, summary domain.OrderSummary) (bool, error) {
	title := fmt.Sprintf("An order already exists for %s. Rewrite it?", summary.Date)
	idx, err := selectOne(ctx, title, []string{"Keep the existing order", "Rewrite it"})
	if err != nil {
		return false, err
	}
	return idx == 1, nil
}
