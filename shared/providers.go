package shared

import "go.uber.org/fx"

var Module = fx.Options(
	fx.Provide(NewOryClient),
	fx.Provide(fx.Annotate(NewAdminClient, fx.As(new(AdminClient)))),
)
