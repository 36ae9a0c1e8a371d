package usecase

import (
	"context"

	"chefctl/internal/modules/history/domain"
	"chefctl/internal/modules/history/dto"
	historyin "chefctl/internal/modules/history/port/in"
	"chefctl/internal/modules/history/service"
)

type Interactor struct {
	svc *service.HistoryService
}

func NewInteractor(svc *service.HistoryService) historyin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Record(ctx context.Context, input dto.RecordInput) error {
	foods := make([]domain.Choice, 0, len(input.Foods))
	for _, f := range input.Foods {
		foods = append(foods, domain.Choice{Category: f.Category, Food: f.Food})
	}
	return i.svc.Record(ctx, input.Date, input.MenuID, input.OrderID, foods)
}

func (i *Interactor) List(ctx context.Context, limit int) ([]dto.SubmissionOutput, error) {
	submissions, err := i.svc.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SubmissionOutput, 0, len(submissions))
	for _, s := range submissions {
		item := dto.SubmissionOutput{
			Date:        s.Date,
			SubmittedAt: s.SubmittedAt,
			Rewrite:     s.OrderID != "",
		}
		for _, f := range s.Foods {
			item.Foods = append(item.Foods, dto.Choice{Category: f.Category, Food: f.Food})
		}
		out = append(out, item)
	}
	return out, nil
}
