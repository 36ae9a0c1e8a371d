package out

import (
	"context"

	"chefctl/internal/modules/history/domain"
)

// SubmissionStore appends and lists journaled submissions.
type SubmissionStore interface {
	Append(ctx context.Context, submission domain.Submission) error
	List(ctx context.Context, limit int) ([]domain.Submission, error)
}
