package service

import (
	"context"
	"fmt"

	"chefctl/internal/modules/history/domain"
	historyout "chefctl/internal/modules/history/port/out"
	"chefctl/internal/platform/clock"
)

type HistoryService struct {
	clk   clock.Clock
	store historyout.SubmissionStore
}

func NewHistoryService(clk clock.Clock, store historyout.SubmissionStore) *HistoryService {
	return &HistoryService{clk: clk, store: store}
}

func (s *HistoryService) Record(ctx context.Context, date, menuID, orderID string, foods []domain.Choice) error {
	if date == "" {
		return fmt.Errorf("submission date is required")
	}
	return s.store.Append(ctx, domain.Submission{
		Date:        date,
		MenuID:      menuID,
		OrderID:     orderID,
		Foods:       foods,
		SubmittedAt: s.clk.Now(),
	})
}

func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.Submission, error) {
	if limit <= 0 {
		limit = 30
	}
	return s.store.List(ctx, limit)
}
