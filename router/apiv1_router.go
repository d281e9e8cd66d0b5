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

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/openstig/stigman/controllers"
	"github.com/openstig/stigman/middlewares"
)

// RegisterAPIV1 wires the asset and checklist routes below /api/v1.
func RegisterAPIV1(e *echo.Echo, assetController *controllers.AssetController, checklistController *controllers.ChecklistController) {
	apiV1 := e.Group("/api/v1")

	apiV1.GET("/health/", func(ctx echo.Context) error {
		return ctx.String(200, "ok")
	})

	session := apiV1.Group("", middlewares.SessionMiddleware())

	session.GET("/assets", assetController.List)
	session.POST("/assets", assetController.Create)
	session.GET("/assets/:assetID", assetController.Read)
	session.PUT("/assets/:assetID", assetController.Replace)
	session.PATCH("/assets/:assetID", assetController.Update)
	session.DELETE("/assets/:assetID", assetController.Delete)

	session.GET("/assets/:assetID/checklists/:benchmarkID/:revisionStr", checklistController.Read)

	session.GET("/stigs/:benchmarkID/assets", assetController.ListByBenchmark)
}
