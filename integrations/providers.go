package integrations

import (
	"github.com/govgoose/govgoose/integrations/analysis"
	"github.com/govgoose/govgoose/integrations/geocoding"
	"github.com/govgoose/govgoose/integrations/maps"
	"github.com/govgoose/govgoose/integrations/storage"
	"github.com/govgoose/govgoose/shared"
	"go.uber.org/fx"
)

// Module provides the clients of the external services
var Module = fx.Options(
	fx.Provide(fx.Annotate(geocoding.NewClientFromConfig, fx.As(new(shared.Geocoder)))),
	fx.Provide(fx.Annotate(maps.NewLoaderFromConfig, fx.As(new(shared.MapsLoader)))),
	fx.Provide(fx.Annotate(analysis.NewClientFromConfig, fx.As(new(shared.AnalysisClient)))),
	fx.Provide(fx.Annotate(storage.NewClientFromConfig, fx.As(new(shared.ObjectStorage)))),
)
