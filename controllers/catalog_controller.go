package controllers

import (
	"errors"
	"net/http"

	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/shared"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CatalogController struct {
	catalogService shared.CatalogService
}

func NewCatalogController(catalogService shared.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// @Summary List the municipal permitting catalog
// @Security CookieAuth
// @Param search query string false "matches municipality, county and state"
// @Success 200 {array} models.CatalogEntry
// @Router /catalog [get]
func (c *CatalogController) List(ctx shared.Context) error {
	var query dtos.CatalogListQuery
	if err := ctx.Bind(&query); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query").WithInternal(err)
	}

	entries, err := c.catalogService.List(query.Search)
	if err != nil {
		return toHTTPError(err, "list catalog")
	}
	return ctx.JSON(http.StatusOK, entries)
}

// @Summary Read a catalog entry
// @Security CookieAuth
// @Param catalogEntryID path string true "Catalog entry ID"
// @Success 200 {object} models.CatalogEntry
// @Router /catalog/{catalogEntryID} [get]
func (c *CatalogController) Read(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "catalogEntryID")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "item not found").WithInternal(err)
	}

	entry, err := c.catalogService.Read(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "item not found").WithInternal(err)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not read catalog entry").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, entry)
}
