package shared

import (
	"context"
	"fmt"

	"github.com/govgoose/govgoose/config"
	client "github.com/ory/client-go"
)

func NewOryClient(cfg config.Config) *client.APIClient {
	oryCfg := client.NewConfiguration()
	oryCfg.Servers = client.ServerConfigurations{
		{URL: cfg.OryKratosPublicURL},
	}
	return client.NewAPIClient(oryCfg)
}

type adminClientImplementation struct {
	apiClient *client.APIClient
}

func NewAdminClient(apiClient *client.APIClient) adminClientImplementation {
	return adminClientImplementation{
		apiClient: apiClient,
	}
}

func (a adminClientImplementation) GetIdentityFromCookie(ctx context.Context, cookie string) (client.Identity, error) {
	session, _, err := a.apiClient.FrontendAPI.ToSession(ctx).Cookie(cookie).Execute()
	if err != nil {
		return client.Identity{}, fmt.Errorf("could not get identity from cookie: %w", err)
	}
	if session.Identity == nil {
		return client.Identity{}, fmt.Errorf("identity not found in session")
	}
	return *session.Identity, nil
}

func (a adminClientImplementation) GetIdentityFromToken(ctx context.Context, token string) (client.Identity, error) {
	session, _, err := a.apiClient.FrontendAPI.ToSession(ctx).XSessionToken(token).Execute()
	if err != nil {
		return client.Identity{}, fmt.Errorf("could not get identity from session token: %w", err)
	}
	if session.Identity == nil {
		return client.Identity{}, fmt.Errorf("identity not found in session")
	}
	return *session.Identity, nil
}
