package accesscontrol

import (
	"github.com/govgoose/govgoose/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(fx.Annotate(NewCasbinRBACFromRepository, fx.As(new(shared.AccessControl)))),
)
