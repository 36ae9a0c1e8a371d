package out

import (
	"context"

	"chefctl/internal/chefapi"
	"chefctl/internal/modules/auth/domain"
	authout "chefctl/internal/modules/auth/port/out"
)

// ChefAPIAuthenticator adapts the service client to the auth module's
// outbound port, translating between domain and wire session values.
type ChefAPIAuthenticator struct {
	client *chefapi.Client
}

func NewChefAPIAuthenticator(client *chefapi.Client) authout.Authenticator {
	return &ChefAPIAuthenticator{client: client}
}

func (a *ChefAPIAuthenticator) Login(ctx context.Context, username, password, company string) (domain.Profile, domain.Session, error) {
	profile, err := a.client.Login(ctx, username, password, company)
	if err != nil {
		return domain.Profile{}, domain.Session{}, err
	}
	return domain.Profile{ID: string(profile.ID), Username: profile.Username}, toDomainSession(a.client.Session()), nil
}

func (a *ChefAPIAuthenticator) Resume(session domain.Session) {
	wire := chefapi.Session{}
	for _, ck := range session.Cookies {
		wire.Cookies = append(wire.Cookies, chefapi.Cookie{Name: ck.Name, Value: ck.Value})
	}
	a.client.Resume(wire)
}

func toDomainSession(s chefapi.Session) domain.Session {
	out := domain.Session{}
	for _, ck := range s.Cookies {
		out.Cookies = append(out.Cookies, domain.Cookie{Name: ck.Name, Value: ck.Value})
	}
	return out
}
