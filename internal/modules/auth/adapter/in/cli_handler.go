package in

import (
	"context"

	authdto "chefctl/internal/modules/auth/dto"
	authin "chefctl/internal/modules/auth/port/in"
)

type CLIHandler struct {
	usecase authin.Usecase
}

func NewCLIHandler(usecase authin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context) (authdto.ProfileOutput, error) {
	return h.usecase.Login(ctx)
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) WhoAmI(ctx context.Context) (authdto.ProfileOutput, error) {
	return h.usecase.WhoAmI(ctx)
}
