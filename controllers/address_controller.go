package controllers

import (
	"net/http"

	"github.com/govgoose/govgoose/shared"
)

const noAddressFoundMessage = "no address found"

type AddressController struct {
	geocoder shared.Geocoder
}

func NewAddressController(geocoder shared.Geocoder) *AddressController {
	return &AddressController{
		geocoder: geocoder,
	}
}

// @Summary Suggest addresses for the typed fragment
// @Security CookieAuth
// @Param q query string true "Address fragment"
// @Success 200 {object} dtos.AddressSuggestions
// @Router /addresses/suggestions [get]
func (c *AddressController) Suggest(ctx shared.Context) error {
	res := c.geocoder.Suggest(ctx.Request().Context(), ctx.QueryParam("q"))
	if res.NotFound {
		res.Message = noAddressFoundMessage
	}
	return ctx.JSON(http.StatusOK, res)
}
