package controllers

import (
	"go.uber.org/fx"
)

// ControllerModule provides all HTTP controller constructors
var ControllerModule = fx.Options(
	// Code checks
	fx.Provide(NewCodeCheckController),
	fx.Provide(NewDocumentController),

	// Projects
	fx.Provide(NewProjectController),
	fx.Provide(NewProjectUserController),

	// Reference data & helpers
	fx.Provide(NewCatalogController),
	fx.Provide(NewCitationController),
	fx.Provide(NewAddressController),
	fx.Provide(NewMapsController),
)
