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
	"github.com/labstack/echo/v4"
)

type CodeCheckRouter struct {
	*echo.Group
}

func NewCodeCheckRouter(
	sessionRouter SessionRouter,
	codeCheckController *controllers.CodeCheckController,
	documentController *controllers.DocumentController,
) CodeCheckRouter {
	codeCheckRouter := sessionRouter.Group.Group("/code-checks")
	codeCheckRouter.GET("/", codeCheckController.List)
	codeCheckRouter.POST("/", codeCheckController.Create)
	codeCheckRouter.POST("/export/", codeCheckController.Export)
	codeCheckRouter.POST("/import/", codeCheckController.Import)

	codeCheckRouter.GET("/:codeCheckID/", codeCheckController.Read)
	codeCheckRouter.PATCH("/:codeCheckID/", codeCheckController.Update)
	codeCheckRouter.DELETE("/:codeCheckID/", codeCheckController.Delete)
	codeCheckRouter.POST("/:codeCheckID/analyze/", codeCheckController.Analyze)
	codeCheckRouter.GET("/:codeCheckID/documents/", documentController.ListForCodeCheck)
	codeCheckRouter.POST("/:codeCheckID/documents/", codeCheckController.LinkDocuments)

	return CodeCheckRouter{
		Group: codeCheckRouter,
	}
}
