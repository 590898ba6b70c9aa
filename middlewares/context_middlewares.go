package middlewares

import (
	"net/http"

	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/shared"
	"github.com/labstack/echo/v4"
)

// all middlewares which modify the current request context and fetch some data from the database

// ProjectMiddleware loads the project referenced by the :projectID param into the context.
func ProjectMiddleware(projectService shared.ProjectService) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			// check if project is already set in the context
			if _, ok := ctx.Get("project").(models.Project); ok {
				return next(ctx)
			}

			projectID, err := shared.GetUUIDParam(ctx, "projectID")
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid project id").WithInternal(err)
			}

			project, err := projectService.Read(projectID)
			if err != nil {
				return echo.NewHTTPError(http.StatusNotFound, "could not find project").WithInternal(err)
			}

			shared.SetProject(ctx, project)
			return next(ctx)
		}
	}
}
