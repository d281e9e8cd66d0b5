// Copyright (C) 2025 the openstig authors
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
	"github.com/labstack/echo/v4"

	"github.com/openstig/stigman/shared"
)

type ChecklistController struct {
	checklistService shared.ChecklistService
}

func NewChecklistController(checklistService shared.ChecklistService) *ChecklistController {
	return &ChecklistController{
		checklistService: checklistService,
	}
}

// Read returns the checklist for one asset and benchmark revision, either as
// the legacy CKL document (default) or as the flat row set when format=json.
func (c *ChecklistController) Read(ctx shared.Context) error {
	assetID, err := pathID(ctx, "assetID")
	if err != nil {
		return err
	}
	benchmarkID := ctx.Param("benchmarkID")
	revisionStr := ctx.Param("revisionStr")

	switch ctx.QueryParam("format") {
	case "json":
		rows, err := c.checklistService.Rows(assetID, benchmarkID, revisionStr)
		if err != nil {
			return serviceError(err, "could not query checklist")
		}
		return ctx.JSON(200, rows)
	case "", "ckl":
		document, err := c.checklistService.ExportCKL(assetID, benchmarkID, revisionStr)
		if err != nil {
			return serviceError(err, "could not export checklist")
		}
		return ctx.Blob(200, "application/xml", document)
	default:
		return echo.NewHTTPError(400, "format must be 'ckl' or 'json'")
	}
}
