package in

import (
	"context"

	historydto "chefctl/internal/modules/history/dto"
	historyin "chefctl/internal/modules/history/port/in"
)

type CLIHandler struct {
	usecase historyin.Usecase
}

func NewCLIHandler(usecase historyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, limit int) ([]historydto.SubmissionOutput, error) {
	return h.usecase.List(ctx, limit)
}
