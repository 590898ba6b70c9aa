package middlewares

import (
	"log/slog"
	"net/http"

	"github.com/govgoose/govgoose/shared"
	"github.com/labstack/echo/v4"
)

type ProjectAccessMiddleware = func(act shared.Action) shared.MiddlewareFunc

// ProjectAccessControl loads the project and answers 404 when the session user may not perform act on it.
func ProjectAccessControl(projectService shared.ProjectService, rbac shared.AccessControl) ProjectAccessMiddleware {
	loadProject := ProjectMiddleware(projectService)

	return func(act shared.Action) shared.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return loadProject(func(ctx shared.Context) error {
				user := shared.GetSession(ctx).GetUserID()
				project := shared.GetProject(ctx)

				allowed, err := rbac.IsAllowed(project, user, act)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "could not determine if the user has access").WithInternal(err)
				}

				if !allowed {
					slog.Warn("access denied in ProjectAccess", "user", user, "action", act, "projectID", project.ID)
					return echo.NewHTTPError(http.StatusNotFound, "could not find project")
				}

				return next(ctx)
			})
		}
	}
}
