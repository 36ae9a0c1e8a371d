package in

import (
	"context"

	"chefctl/internal/modules/history/dto"
)

type Usecase interface {
	Record(ctx context.Context, input dto.RecordInput) error
	List(ctx context.Context, limit int) ([]dto.SubmissionOutput, error)
}
