package services

import (
	"github.com/govgoose/govgoose/services/export"
	"github.com/govgoose/govgoose/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewCodeCheckService, fx.As(new(shared.CodeCheckService)))),
	fx.Provide(fx.Annotate(NewAnalysisService, fx.As(new(shared.AnalysisService)))),
	fx.Provide(fx.Annotate(export.NewService, fx.As(new(shared.ExportService)))),
	fx.Provide(fx.Annotate(NewProjectService, fx.As(new(shared.ProjectService)))),
	fx.Provide(fx.Annotate(NewProjectUserService, fx.As(new(shared.ProjectUserService)))),
	fx.Provide(fx.Annotate(NewDocumentService, fx.As(new(shared.DocumentService)))),
	fx.Provide(fx.Annotate(NewCatalogService, fx.As(new(shared.CatalogService)))),
	fx.Provide(fx.Annotate(NewBatchImportService, fx.As(new(shared.BatchImportService)))),
)
