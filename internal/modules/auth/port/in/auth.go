package in

import (
	"context"

	"chefctl/internal/modules/auth/dto"
)

type Usecase interface {
	// EnsureProfile resolves the identity for a run: stored credentials if
	// usable, interactive login otherwise.
	EnsureProfile(ctx context.Context) (dto.ProfileOutput, error)
	// Login always prompts and overwrites whatever is stored.
	Login(ctx context.Context) (dto.ProfileOutput, error)
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) (dto.ProfileOutput, error)
}
