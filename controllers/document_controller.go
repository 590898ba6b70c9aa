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

	"github.com/google/uuid"
	"github.com/govgoose/govgoose/dtos"
	"github.com/govgoose/govgoose/shared"
	"github.com/govgoose/govgoose/transformer"
	"github.com/labstack/echo/v4"
)

type DocumentController struct {
	documentService shared.DocumentService
}

func NewDocumentController(documentService shared.DocumentService) *DocumentController {
	return &DocumentController{
		documentService: documentService,
	}
}

// @Summary Upload a pdf, optionally linking it to a code check
// @Security CookieAuth
// @Accept multipart/form-data
// @Param file formData file true "PDF document"
// @Param codeCheckId formData string false "Code check ID"
// @Success 201 {object} dtos.DocumentDTO
// @Router /documents [post]
func (c *DocumentController) Upload(ctx shared.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file").WithInternal(err)
	}

	upload := dtos.DocumentUpload{
		UserID:      shared.GetSession(ctx).GetUserID(),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
	}
	if raw := ctx.FormValue("codeCheckId"); raw != "" {
		codeCheckID, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid codeCheckId").WithInternal(err)
		}
		upload.CodeCheckID = &codeCheckID
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not open file").WithInternal(err)
	}
	defer file.Close()

	document, err := c.documentService.Upload(ctx.Request().Context(), upload, file)
	if err != nil {
		return toHTTPError(err, "upload document")
	}
	return ctx.JSON(http.StatusCreated, transformer.DocumentModelToDTO(document))
}

// @Summary List the documents of a code check with signed urls
// @Security CookieAuth
// @Param codeCheckID path string true "Code check ID"
// @Success 200 {array} dtos.DocumentDTO
// @Router /code-checks/{codeCheckID}/documents [get]
func (c *DocumentController) ListForCodeCheck(ctx shared.Context) error {
	codeCheckID, err := uuidParam(ctx, "codeCheckID")
	if err != nil {
		return err
	}

	documents, err := c.documentService.ListForCodeCheck(ctx.Request().Context(), codeCheckID)
	if err != nil {
		return toHTTPError(err, "list documents")
	}
	return ctx.JSON(http.StatusOK, documents)
}

// @Summary Check whether the analysis backend knows documents for an address
// @Security CookieAuth
// @Param address query string true "Address"
// @Success 200 {object} dtos.DocumentExistsResponse
// @Router /documents/exists [get]
func (c *DocumentController) CheckExists(ctx shared.Context) error {
	var req dtos.DocumentExistsRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.documentService.CheckExists(ctx.Request().Context(), req.Address)
	if err != nil {
		return upstreamError(err, "could not check documents")
	}
	return ctx.JSON(http.StatusOK, res)
}

// @Summary List the documents the analysis backend stores under a path
// @Security CookieAuth
// @Param path query string true "Path"
// @Success 200 {array} dtos.RemoteDocument
// @Router /documents/list [get]
func (c *DocumentController) ListUnderPath(ctx shared.Context) error {
	var req dtos.ListDocumentsRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.documentService.ListUnderPath(ctx.Request().Context(), req.Path)
	if err != nil {
		return upstreamError(err, "could not list documents")
	}
	return ctx.JSON(http.StatusOK, res)
}

// @Summary Extract the text of a pdf
// @Security CookieAuth
// @Param body body dtos.ExtractTextRequest true "Request body"
// @Success 200 {object} dtos.ExtractTextResponse
// @Router /documents/extract-text [post]
func (c *DocumentController) ExtractText(ctx shared.Context) error {
	var req dtos.ExtractTextRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.documentService.ExtractText(ctx.Request().Context(), shared.GetSession(ctx).GetUserID(), req.URL)
	if err != nil {
		return upstreamError(err, "could not extract text")
	}
	return ctx.JSON(http.StatusOK, res)
}
