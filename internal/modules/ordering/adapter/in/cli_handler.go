package in

import (
	"context"

	orderingdto "chefctl/internal/modules/ordering/dto"
	orderingin "chefctl/internal/modules/ordering/port/in"
)

type CLIHandler struct {
	usecase orderingin.Usecase
}

func NewCLIHandler(usecase orderingin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Run(ctx context.Context) (orderingdto.RunOutput, error) {
	return h.usecase.Run(ctx)
}
