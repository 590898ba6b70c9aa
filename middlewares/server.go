package middlewares

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/govgoose/govgoose/config"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

func registerMiddlewares(e *echo.Echo, cfg config.Config) {
	e.Pre(middleware.AddTrailingSlash())
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     []string{cfg.CORSOrigin},
			AllowHeaders:     append(middleware.DefaultCORSConfig.AllowHeaders, sessionTokenHeader),
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
			ExposeHeaders:    []string{echo.HeaderContentDisposition},
		},
	))

	e.Use(logger())

	e.Use(recovermiddleware())

	e.HTTPErrorHandler = HTTPErrorHandler
}

func Server(cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(99)
	registerMiddlewares(e, cfg)
	return e
}

// HTTPErrorHandler logs every failed request once and renders {"message": ...}
func HTTPErrorHandler(err error, ctx echo.Context) {
	// do the logging straight inside the error handler
	// this keeps controller methods clean
	he := toHTTPError(err)
	if he.Code >= http.StatusInternalServerError {
		slog.Error(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)
	} else {
		slog.Warn(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)
	}

	if ctx.Response().Committed {
		return
	}

	message := he.Message
	switch m := he.Message.(type) {
	case string:
		message = echo.Map{"message": m}
	case error:
		message = echo.Map{"message": m.Error()}
	}

	if ctx.Request().Method == http.MethodHead {
		if err := ctx.NoContent(he.Code); err != nil {
			slog.Error("could not send error response", "error", err)
		}
		return
	}
	if err := ctx.JSON(he.Code, message); err != nil {
		slog.Error("could not send error response", "error", err)
	}
}

func toHTTPError(err error) *echo.HTTPError {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}

	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "item not found").WithInternal(err)
	case errors.As(err, &validationErrors):
		return echo.NewHTTPError(http.StatusBadRequest, validationErrors.Error()).WithInternal(err)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).WithInternal(err)
}
