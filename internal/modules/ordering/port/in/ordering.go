package in

import (
	"context"

	"chefctl/internal/modules/ordering/dto"
)

type Usecase interface {
	// Run walks the whole ordering sequence: resolve identity, list slots,
	// pick one, pick foods, submit.
	Run(ctx context.Context) (dto.RunOutput, error)
}
