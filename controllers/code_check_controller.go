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
	"fmt"
	"net/http"
	"time"

	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/shared"
	"github.com/govgoose/govgoose/transformer"
	"github.com/govgoose/govgoose/utils"
	"github.com/labstack/echo/v4"
)

var exportContentTypes = map[dtos.ExportFormat]string{
	dtos.ExportFormatCSV: "text/csv; charset=utf-8",
	dtos.ExportFormatPDF: "application/pdf",
}

type CodeCheckController struct {
	codeCheckService   shared.CodeCheckService
	analysisService    shared.AnalysisService
	exportService      shared.ExportService
	documentService    shared.DocumentService
	batchImportService shared.BatchImportService
}

func NewCodeCheckController(codeCheckService shared.CodeCheckService, analysisService shared.AnalysisService, exportService shared.ExportService, documentService shared.DocumentService, batchImportService shared.BatchImportService) *CodeCheckController {
	return &CodeCheckController{
		codeCheckService:   codeCheckService,
		analysisService:    analysisService,
		exportService:      exportService,
		documentService:    documentService,
		batchImportService: batchImportService,
	}
}

// @Summary Create code check
// @Security CookieAuth
// @Param body body dtos.CodeCheckCreateRequest true "Request body"
// @Success 201 {object} dtos.CodeCheckDTO
// @Router /code-checks [post]
func (c *CodeCheckController) Create(ctx shared.Context) error {
	var req dtos.CodeCheckCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	codeCheck, err := c.codeCheckService.Create(shared.GetSession(ctx).GetUserID(), req)
	if err != nil {
		return toHTTPError(err, "create code check")
	}
	return ctx.JSON(http.StatusCreated, transformer.CodeCheckModelToDTO(codeCheck))
}

// @Summary List code checks
// @Security CookieAuth
// @Param scope query string false "dashboard lists the code checks of every user"
// @Param status query string false "status tab, all by default"
// @Param search query string false "matches address and zoning codes"
// @Success 200 {array} dtos.CodeCheckDTO
// @Router /code-checks [get]
func (c *CodeCheckController) List(ctx shared.Context) error {
	var query dtos.CodeCheckListQuery
	if err := ctx.Bind(&query); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query").WithInternal(err)
	}

	codeChecks, err := c.codeCheckService.List(shared.GetSession(ctx).GetUserID(), query)
	if err != nil {
		return toHTTPError(err, "list code checks")
	}
	return ctx.JSON(http.StatusOK, utils.Map(codeChecks, transformer.CodeCheckModelToDTO))
}

// @Summary Read code check including signed document urls
// @Security CookieAuth
// @Param codeCheckID path string true "Code check ID"
// @Success 200 {object} dtos.CodeCheckDTO
// @Router /code-checks/{codeCheckID} [get]
func (c *CodeCheckController) Read(ctx shared.Context) error {
	id, err := uuidParam(ctx, "codeCheckID")
	if err != nil {
		return err
	}

	codeCheck, err := c.codeCheckService.Read(id)
	if err != nil {
		return toHTTPError(err, "read code check")
	}

	documents, err := c.documentService.ListForCodeCheck(ctx.Request().Context(), id)
	if err != nil {
		return toHTTPError(err, "list documents")
	}

	res := transformer.CodeCheckModelToDTO(codeCheck)
	res.Documents = documents
	return ctx.JSON(http.StatusOK, res)
}

// @Summary Update code check
// @Security CookieAuth
// @Param codeCheckID path string true "Code check ID"
// @Param body body dtos.CodeCheckPatchRequest true "Request body"
// @Success 200 {object} dtos.CodeCheckDTO
// @Router /code-checks/{codeCheckID} [patch]
func (c *CodeCheckController) Update(ctx shared.Context) error {
	id, err := uuidParam(ctx, "codeCheckID")
	if err != nil {
		return err
	}

	var req dtos.CodeCheckPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	codeCheck, err := c.codeCheckService.Update(id, req)
	if err != nil {
		return toHTTPError(err, "update code check")
	}
	return ctx.JSON(http.StatusOK, transformer.CodeCheckModelToDTO(codeCheck))
}

// @Summary Soft delete code check, requires the typed confirmation "delete"
// @Security CookieAuth
// @Param codeCheckID path string true "Code check ID"
// @Param body body dtos.CodeCheckDeleteRequest true "Request body"
// @Success 204
// @Router /code-checks/{codeCheckID} [delete]
func (c *CodeCheckController) Delete(ctx shared.Context) error {
	id, err := uuidParam(ctx, "codeCheckID")
	if err != nil {
		return err
	}

	var req dtos.CodeCheckDeleteRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}

	if err := c.codeCheckService.SoftDelete(id, req.Confirmation); err != nil {
		return toHTTPError(err, "delete code check")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// @Summary Link existing documents to the code check
// @Security CookieAuth
// @Param codeCheckID path string true "Code check ID"
// @Param body body dtos.CodeCheckLinkDocumentsRequest true "Request body"
// @Success 204
// @Router /code-checks/{codeCheckID}/documents [post]
func (c *CodeCheckController) LinkDocuments(ctx shared.Context) error {
	id, err := uuidParam(ctx, "codeCheckID")
	if err != nil {
		return err
	}

	var req dtos.CodeCheckLinkDocumentsRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if err := c.codeCheckService.LinkDocuments(id, req.DocumentIDs); err != nil {
		return toHTTPError(err, "link documents")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// @Summary Run the sign code analysis for the code check
// @Security CookieAuth
// @Param codeCheckID path string true "Code check ID"
// @Param body body dtos.AnalyzeRequest false "Request body"
// @Success 200 {object} dtos.Analysis
// @Router /code-checks/{codeCheckID}/analyze [post]
func (c *CodeCheckController) Analyze(ctx shared.Context) error {
	id, err := uuidParam(ctx, "codeCheckID")
	if err != nil {
		return err
	}

	var req dtos.AnalyzeRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}

	analysis, err := c.analysisService.Analyze(ctx.Request().Context(), id, req.CustomQuestions)
	if err != nil {
		return toHTTPError(err, "analyze code check")
	}
	return ctx.JSON(http.StatusOK, analysis)
}

// @Summary Export the selected code checks as csv or pdf
// @Security CookieAuth
// @Param body body dtos.ExportRequest true "Request body"
// @Produce text/csv
// @Produce application/pdf
// @Router /code-checks/export [post]
func (c *CodeCheckController) Export(ctx shared.Context) error {
	var req dtos.ExportRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	fileName := fmt.Sprintf("code-checks-%s.%s", time.Now().Format("2006-01-02"), req.Format)
	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, exportContentTypes[req.Format])
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))

	if _, err := c.exportService.Export(ctx.Request().Context(), req.IDs, req.Format, res); err != nil {
		return toHTTPError(err, "export code checks")
	}
	if !res.Committed {
		res.WriteHeader(http.StatusOK)
	}
	return nil
}

// @Summary Create code checks for every address of an uploaded xlsx or csv file
// @Security CookieAuth
// @Accept multipart/form-data
// @Param file formData file true "Spreadsheet, first column holds the address"
// @Success 200 {object} dtos.BatchImportSummary
// @Router /code-checks/import [post]
func (c *CodeCheckController) Import(ctx shared.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file").WithInternal(err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not open file").WithInternal(err)
	}
	defer file.Close()

	summary, err := c.batchImportService.Import(ctx.Request().Context(), shared.GetSession(ctx).GetUserID(), fileHeader.Filename, file)
	if err != nil {
		return toHTTPError(err, "import addresses")
	}
	return ctx.JSON(http.StatusOK, summary)
}
