package controllers

import (
	"net/http"

	"github.com/govgoose/govgoose/shared"
	"github.com/labstack/echo/v4"
)

type MapsController struct {
	mapsLoader shared.MapsLoader
}

func NewMapsController(mapsLoader shared.MapsLoader) *MapsController {
	return &MapsController{
		mapsLoader: mapsLoader,
	}
}

// @Summary Map configuration for the frontend
// @Success 200 {object} dtos.MapConfig
// @Router /maps/config [get]
func (c *MapsController) Config(ctx shared.Context) error {
	cfg, err := c.mapsLoader.EnsureLoaded(ctx.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "maps are not available").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, cfg)
}
