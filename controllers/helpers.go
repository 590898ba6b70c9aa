package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/govgoose/govgoose/common"
	"github.com/govgoose/govgoose/services"
	"github.com/govgoose/govgoose/services/export"
	"github.com/govgoose/govgoose/services/spreadsheet"
	"github.com/govgoose/govgoose/shared"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var badRequestErrors = []error{
	services.ErrDeleteNotConfirmed,
	services.ErrInvalidDateRange,
	services.ErrUnknownCodeCheck,
	services.ErrRoleChangeNotConfirmed,
	services.ErrUnsupportedFileType,
	spreadsheet.ErrUnsupportedFormat,
	spreadsheet.ErrNoSheet,
	export.ErrUnknownFormat,
}

// toHTTPError maps service errors to the matching status code. action describes what failed.
func toHTTPError(err error, action string) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "item not found").WithInternal(err)
	case errors.Is(err, services.ErrNotAuthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error()).WithInternal(err)
	case errors.Is(err, services.ErrAlreadyMember):
		return echo.NewHTTPError(http.StatusConflict, err.Error()).WithInternal(err)
	case errors.Is(err, services.ErrAnalysisFailed):
		return echo.NewHTTPError(http.StatusBadGateway, "analysis backend failed").WithInternal(err)
	case errors.As(err, &validationErrors):
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("could not validate request: %s", validationErrors.Error())).WithInternal(err)
	}

	for _, badRequest := range badRequestErrors {
		if errors.Is(err, badRequest) {
			return echo.NewHTTPError(http.StatusBadRequest, badRequest.Error()).WithInternal(err)
		}
	}
	return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("could not %s", action)).WithInternal(err)
}

// upstreamError maps failures of proxied backend calls.
func upstreamError(err error, msg string) error {
	var statusErr *common.HTTPStatusError
	switch {
	case errors.Is(err, services.ErrNotAuthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error()).WithInternal(err)
	case errors.Is(err, services.ErrDocumentNotAccessible):
		return echo.NewHTTPError(http.StatusNotFound, "item not found").WithInternal(err)
	case errors.Is(err, common.ErrInvalidURL):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	case errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound:
		return echo.NewHTTPError(http.StatusNotFound, "item not found").WithInternal(err)
	}
	return echo.NewHTTPError(http.StatusBadGateway, msg).WithInternal(err)
}

func bindAndValidate(ctx shared.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("could not validate request: %s", err.Error()))
	}
	return nil
}

func uuidParam(ctx shared.Context, param string) (uuid.UUID, error) {
	id, err := shared.GetUUIDParam(ctx, param)
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid %s", param)).WithInternal(err)
	}
	return id, nil
}
