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
)

type ProjectController struct {
	projectService shared.ProjectService
}

func NewProjectController(projectService shared.ProjectService) *ProjectController {
	return &ProjectController{
		projectService: projectService,
	}
}

// @Summary Create project
// @Security CookieAuth
// @Param body body dtos.ProjectCreateRequest true "Request body"
// @Success 201 {object} dtos.ProjectDTO
// @Router /projects [post]
func (c *ProjectController) Create(ctx shared.Context) error {
	var req dtos.ProjectCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	project, err := c.projectService.Create(shared.GetSession(ctx).GetUserID(), req)
	if err != nil {
		return toHTTPError(err, "create project")
	}
	return ctx.JSON(http.StatusCreated, transformer.ProjectModelToDTO(project))
}

// @Summary List owned projects and projects the user is a member of
// @Security CookieAuth
// @Success 200 {array} dtos.ProjectDTO
// @Router /projects [get]
func (c *ProjectController) List(ctx shared.Context) error {
	projects, err := c.projectService.ListForUser(shared.GetSession(ctx).GetUserID())
	if err != nil {
		return toHTTPError(err, "list projects")
	}
	return ctx.JSON(http.StatusOK, utils.Map(projects, transformer.ProjectModelToDTO))
}

// @Summary Read project
// @Security CookieAuth
// @Param projectID path string true "Project ID"
// @Success 200 {object} dtos.ProjectDTO
// @Router /projects/{projectID} [get]
func (c *ProjectController) Read(ctx shared.Context) error {
	return ctx.JSON(http.StatusOK, transformer.ProjectModelToDTO(shared.GetProject(ctx)))
}

// @Summary Update project
// @Security CookieAuth
// @Param projectID path string true "Project ID"
// @Param body body dtos.ProjectPatchRequest true "Request body"
// @Success 200 {object} dtos.ProjectDTO
// @Router /projects/{projectID} [patch]
func (c *ProjectController) Update(ctx shared.Context) error {
	var req dtos.ProjectPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	project, err := c.projectService.Update(shared.GetProject(ctx), req)
	if err != nil {
		return toHTTPError(err, "update project")
	}
	return ctx.JSON(http.StatusOK, transformer.ProjectModelToDTO(project))
}

// @Summary Delete project
// @Security CookieAuth
// @Param projectID path string true "Project ID"
// @Success 204
// @Router /projects/{projectID} [delete]
func (c *ProjectController) Delete(ctx shared.Context) error {
	if err := c.projectService.Delete(shared.GetProject(ctx).ID); err != nil {
		return toHTTPError(err, "delete project")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// @Summary List the code checks assigned to the project
// @Security CookieAuth
// @Param projectID path string true "Project ID"
// @Success 200 {array} dtos.CodeCheckDTO
// @Router /projects/{projectID}/code-checks [get]
func (c *ProjectController) ListCodeChecks(ctx shared.Context) error {
	codeChecks, err := c.projectService.ListCodeChecks(shared.GetProject(ctx).ID)
	if err != nil {
		return toHTTPError(err, "list code checks")
	}
	return ctx.JSON(http.StatusOK, utils.Map(codeChecks, transformer.CodeCheckModelToDTO))
}

// @Summary Assign code checks, already assigned ones are reported instead of inserted
// @Security CookieAuth
// @Param projectID path string true "Project ID"
// @Param body body dtos.ProjectAddCodeChecksRequest true "Request body"
// @Success 200 {object} dtos.ProjectAddCodeChecksResponse
// @Router /projects/{projectID}/code-checks [post]
func (c *ProjectController) AddCodeChecks(ctx shared.Context) error {
	var req dtos.ProjectAddCodeChecksRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.projectService.AddCodeChecks(shared.GetProject(ctx).ID, req.CodeCheckIDs)
	if err != nil {
		return toHTTPError(err, "add code checks")
	}
	return ctx.JSON(http.StatusOK, res)
}

// @Summary Remove a code check from the project
// @Security CookieAuth
// @Param projectID path string true "Project ID"
// @Param codeCheckID path string true "Code check ID"
// @Success 204
// @Router /projects/{projectID}/code-checks/{codeCheckID} [delete]
func (c *ProjectController) RemoveCodeCheck(ctx shared.Context) error {
	codeCheckID, err := uuidParam(ctx, "codeCheckID")
	if err != nil {
		return err
	}

	if err := c.projectService.RemoveCodeCheck(shared.GetProject(ctx).ID, codeCheckID); err != nil {
		return toHTTPError(err, "remove code check")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// @Summary List the code checks of the user which could be assigned to the project
// @Security CookieAuth
// @Param projectID path string true "Project ID"
// @Success 200 {array} dtos.ProjectCandidateDTO
// @Router /projects/{projectID}/candidates [get]
func (c *ProjectController) ListCandidates(ctx shared.Context) error {
	candidates, err := c.projectService.ListCandidates(shared.GetProject(ctx).ID, shared.GetSession(ctx).GetUserID())
	if err != nil {
		return toHTTPError(err, "list candidates")
	}
	return ctx.JSON(http.StatusOK, candidates)
}
