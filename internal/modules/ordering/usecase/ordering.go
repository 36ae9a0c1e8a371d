package usecase

import (
	"context"
	"log/slog"

	authin "chefctl/internal/modules/auth/port/in"
	historydto "chefctl/internal/modules/history/dto"
	historyin "chefctl/internal/modules/history/port/in"
	"chefctl/internal/modules/ordering/dto"
	orderingin "chefctl/internal/modules/ordering/port/in"
	orderingout "chefctl/internal/modules/ordering/port/out"
	"chefctl/internal/modules/ordering/service"
)

type Interactor struct {
	svc      *service.OrderService
	auth     authin.Usecase
	gateway  orderingout.Gateway
	prompter orderingout.Prompter
	journal  historyin.Usecase
	log      *slog.Logger
}

func NewInteractor(svc *service.OrderService, auth authin.Usecase, gateway orderingout.Gateway, prompter orderingout.Prompter, journal historyin.Usecase, log *slog.Logger) orderingin.Usecase {
	if log == nil {
		log = slog.Default()
	}
	return &Interactor{svc: svc, auth: auth, gateway: gateway, prompter: prompter, journal: journal, log: log}
}

// Run performs the strict step sequence. Every step's inputs come from the
// previous step's output, so any failure aborts the rest; credentials saved
// in step one are deliberately kept.
func (i *Interactor) Run(ctx context.Context) (dto.RunOutput, error) {
	profile, err := i.auth.EnsureProfile(ctx)
	if err != nil {
		return dto.RunOutput{}, err
	}
	out := dto.RunOutput{Username: profile.Username}

	from, to := i.svc.Window()
	all, err := i.gateway.ListOrders(ctx, profile.ID, from, to)
	if err != nil {
		return dto.RunOutput{}, err
	}
	open := i.svc.Selectable(all)
	i.log.Debug("listed orders", "window_from", from, "window_to", to, "total", len(all), "selectable", len(open))
	if len(open) == 0 {
		out.NoOrders = true
		return out, nil
	}

	pick, err := i.prompter.PickOrder(ctx, open)
	if err != nil {
		return dto.RunOutput{}, err
	}
	out.Date = pick.Date
	out.Status = pick.Status

	detail, err := i.gateway.GetOrder(ctx, profile.ID, pick)
	if err != nil {
		return dto.RunOutput{}, err
	}
	selection, err := i.prompter.PickFoods(ctx, detail)
	if err != nil {
		return dto.RunOutput{}, err
	}
	if err := i.svc.ValidateSelection(detail, selection); err != nil {
		return dto.RunOutput{}, err
	}

	// Rewriting an existing order may not be idempotent server-side, so it
	// needs an explicit go-ahead.
	if pick.OrderID != "" {
		out.Resubmitted = true
		ok, err := i.prompter.ConfirmResubmit(ctx, pick)
		if err != nil {
			return dto.RunOutput{}, err
		}
		if !ok {
			out.Declined = true
			return out, nil
		}
	}

	if err := i.gateway.SubmitOrder(ctx, profile.ID, pick, selection); err != nil {
		return dto.RunOutput{}, err
	}
	out.Submitted = true

	for _, category := range detail.Categories {
		out.Foods = append(out.Foods, dto.ChosenFood{
			Category: category.Name,
			Food:     selection[category.Column].Name,
		})
	}

	if i.journal != nil {
		record := historydto.RecordInput{Date: pick.Date, MenuID: pick.MenuID, OrderID: pick.OrderID}
		for _, f := range out.Foods {
			record.Foods = append(record.Foods, historydto.Choice{Category: f.Category, Food: f.Food})
		}
		if err := i.journal.Record(ctx, record); err != nil {
			// The order is already placed; a journaling problem must not
			// fail the run.
			i.log.Warn("order placed but not journaled", "date", pick.Date, "error", err)
		}
	}
	return out, nil
}
