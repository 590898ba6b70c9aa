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

type DocumentRouter struct {
	*echo.Group
}

func NewDocumentRouter(
	sessionRouter SessionRouter,
	documentController *controllers.DocumentController,
	catalogController *controllers.CatalogController,
	addressController *controllers.AddressController,
) DocumentRouter {
	documentRouter := sessionRouter.Group.Group("/documents")
	documentRouter.POST("/", documentController.Upload)
	documentRouter.GET("/exists/", documentController.CheckExists)
	documentRouter.GET("/list/", documentController.ListUnderPath)
	documentRouter.POST("/extract-text/", documentController.ExtractText)

	sessionRouter.GET("/catalog/", catalogController.List)
	sessionRouter.GET("/catalog/:catalogEntryID/", catalogController.Read)
	sessionRouter.GET("/addresses/suggestions/", addressController.Suggest)

	return DocumentRouter{
		Group: documentRouter,
	}
}
