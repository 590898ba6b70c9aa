// Copyright (C) 2026 The GovGoose Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package router

import (
	"github.com/govgoose/govgoose/controllers"
	"github.com/govgoose/govgoose/middlewares"
	"github.com/govgoose/govgoose/shared"
	"github.com/labstack/echo/v4"
)

type ProjectRouter struct {
	*echo.Group
}

func NewProjectRouter(
	sessionRouter SessionRouter,
	projectController *controllers.ProjectController,
	projectUserController *controllers.ProjectUserController,
	projectService shared.ProjectService,
	rbac shared.AccessControl,
) ProjectRouter {
	projectsRouter := sessionRouter.Group.Group("/projects")
	projectsRouter.GET("/", projectController.List)
	projectsRouter.POST("/", projectController.Create)

	/**
	Project scoped router
	All routes below this line are scoped to a specific project.
	*/
	projectScopedRBAC := middlewares.ProjectAccessControl(projectService, rbac)

	projectRouter := projectsRouter.Group("/:projectID", projectScopedRBAC(shared.ActionRead))
	projectRouter.GET("/", projectController.Read)
	projectRouter.GET("/code-checks/", projectController.ListCodeChecks)
	projectRouter.GET("/candidates/", projectController.ListCandidates)
	projectRouter.GET("/users/", projectUserController.List)

	projectUpdateAccessControlRequired := projectRouter.Group("", projectScopedRBAC(shared.ActionUpdate))
	projectUpdateAccessControlRequired.PATCH("/", projectController.Update)
	projectUpdateAccessControlRequired.POST("/code-checks/", projectController.AddCodeChecks)
	projectUpdateAccessControlRequired.DELETE("/code-checks/:codeCheckID/", projectController.RemoveCodeCheck)

	// only the owner may delete the project and manage its members
	projectDeleteAccessControlRequired := projectRouter.Group("", projectScopedRBAC(shared.ActionDelete))
	projectDeleteAccessControlRequired.DELETE("/", projectController.Delete)
	projectDeleteAccessControlRequired.POST("/users/", projectUserController.Add)
	projectDeleteAccessControlRequired.PUT("/users/:userID/", projectUserController.ChangeRole)
	projectDeleteAccessControlRequired.DELETE("/users/:userID/", projectUserController.Remove)

	return ProjectRouter{
		Group: projectRouter,
	}
}
