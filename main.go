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

package main

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/openstig/stigman/controllers"
	"github.com/openstig/stigman/database"
	"github.com/openstig/stigman/database/repositories"
	"github.com/openstig/stigman/middlewares"
	"github.com/openstig/stigman/router"
	"github.com/openstig/stigman/services"
	"github.com/openstig/stigman/shared"
)

func main() {
	if err := shared.LoadConfig(); err != nil {
		slog.Warn("could not load .env file", "err", err)
	}
	shared.InitLogger()

	pool := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
	db := database.NewGormDB(pool)

	assetRepository := repositories.NewAssetRepository(db)
	checklistRepository := repositories.NewChecklistRepository(db)

	assetService := services.NewAssetService(assetRepository)
	checklistService := services.NewChecklistService(checklistRepository)

	assetController := controllers.NewAssetController(assetService)
	checklistController := controllers.NewChecklistController(checklistService)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middlewares.Logger())

	router.RegisterAPIV1(e, assetController, checklistController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := e.Start(":" + port); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
