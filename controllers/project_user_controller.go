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

package controllers

import (
	"net/http"

	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/shared"
	"github.com/govgoose/govgoose/transformer"
	"github.com/govgoose/govgoose/utils"
	"github.com/labstack/echo/v4"
)

type ProjectUserController struct {
	projectUserService shared.ProjectUserService
}

func NewProjectUserController(projectUserService shared.ProjectUserService) *ProjectUserController {
	return &ProjectUserController{
		projectUserService: projectUserService,
	}
}

// @Summary List project members
// @Security CookieAuth
// @Param projectID path string true "Project ID"
// @Success 200 {array} dtos.ProjectUserDTO
// @Router /projects/{projectID}/users [get]
func (c *ProjectUserController) List(ctx shared.Context) error {
	users, err := c.projectUserService.List(shared.GetProject(ctx).ID)
	if err != nil {
		return toHTTPError(err, "list project users")
	}
	return ctx.JSON(http.StatusOK, utils.Map(users, transformer.ProjectUserModelToDTO))
}

// @Summary Add a member as collaborator or viewer
// @Security CookieAuth
// @Param projectID path string true "Project ID"
// @Param body body dtos.ProjectUserCreateRequest true "Request body"
// @Success 201 {object} dtos.ProjectUserDTO
// @Router /projects/{projectID}/users [post]
func (c *ProjectUserController) Add(ctx shared.Context) error {
	var req dtos.ProjectUserCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	user, err := c.projectUserService.Add(shared.GetProject(ctx).ID, req)
	if err != nil {
		return toHTTPError(err, "add project user")
	}
	return ctx.JSON(http.StatusCreated, transformer.ProjectUserModelToDTO(user))
}

// @Summary Change the role of a member, requires confirm: true
// @Security CookieAuth
// @Param projectID path string true "Project ID"
// @Param userID path string true "User ID"
// @Param body body dtos.ProjectChangeRoleRequest true "Request body"
// @Success 200 {object} dtos.ProjectUserDTO
// @Router /projects/{projectID}/users/{userID} [put]
func (c *ProjectUserController) ChangeRole(ctx shared.Context) error {
	userID := shared.SanitizeParam(ctx.Param("userID"))
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid userID")
	}

	var req dtos.ProjectChangeRoleRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	user, err := c.projectUserService.ChangeRole(shared.GetProject(ctx).ID, userID, req)
	if err != nil {
		return toHTTPError(err, "change role")
	}
	return ctx.JSON(http.StatusOK, transformer.ProjectUserModelToDTO(user))
}

// @Summary Remove a member from the project
// @Security CookieAuth
// @Param projectID path string true "Project ID"
// @Param userID path string true "User ID"
// @Success 204
// @Router /projects/{projectID}/users/{userID} [delete]
func (c *ProjectUserController) Remove(ctx shared.Context) error {
	userID := shared.SanitizeParam(ctx.Param("userID"))
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid userID")
	}

	if err := c.projectUserService.Remove(shared.GetProject(ctx).ID, userID); err != nil {
		return toHTTPError(err, "remove project user")
	}
	return ctx.NoContent(http.StatusNoContent)
}
