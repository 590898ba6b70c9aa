package controllers

import (
	"encoding/base64"
	"net/http"
	"unicode/utf8"

	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/shared"
	"github.com/labstack/echo/v4"
)

// CitationController decodes the citation links written into csv exports.
type CitationController struct{}

func NewCitationController() *CitationController {
	return &CitationController{}
}

// @Summary Decode a citation link
// @Param text query string true "base64 encoded citation"
// @Success 200 {object} dtos.CitationResponse
// @Router /citations [get]
func (c *CitationController) Read(ctx shared.Context) error {
	encoded := ctx.QueryParam("text")
	if encoded == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing text")
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || !utf8.Valid(decoded) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid citation").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, dtos.CitationResponse{Text: string(decoded)})
}
