package repositories

import (
	"github.com/govgoose/govgoose/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewCodeCheckRepository, fx.As(new(shared.CodeCheckRepository)))),
	fx.Provide(fx.Annotate(NewProjectRepository, fx.As(new(shared.ProjectRepository)))),
	fx.Provide(fx.Annotate(NewProjectCodeCheckRepository, fx.As(new(shared.ProjectCodeCheckRepository)))),
	fx.Provide(fx.Annotate(NewProjectUserRepository, fx.As(new(shared.ProjectUserRepository)))),
	fx.Provide(fx.Annotate(NewDocumentRepository, fx.As(new(shared.DocumentRepository)))),
	fx.Provide(fx.Annotate(NewCatalogRepository, fx.As(new(shared.CatalogRepository)))),
)
