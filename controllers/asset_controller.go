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
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/openstig/stigman/dtos"
	"github.com/openstig/stigman/shared"
)

type AssetController struct {
	assetService shared.AssetService
}

func NewAssetController(assetService shared.AssetService) *AssetController {
	return &AssetController{
		assetService: assetService,
	}
}

func pathID(ctx shared.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(400, "invalid "+name).WithInternal(err)
	}
	return id, nil
}

func projectionsFromQuery(ctx shared.Context) []dtos.Projection {
	return dtos.ParseProjections(ctx.QueryParams()["projection"])
}

func filterFromQuery(ctx shared.Context) (dtos.AssetFilter, error) {
	var filter dtos.AssetFilter
	if v := ctx.QueryParam("packageId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, echo.NewHTTPError(400, "invalid packageId").WithInternal(err)
		}
		filter.PackageID = &id
	}
	if v := ctx.QueryParam("benchmarkId"); v != "" {
		filter.BenchmarkID = shared.Ptr(v)
	}
	if v := ctx.QueryParam("dept"); v != "" {
		filter.Dept = shared.Ptr(v)
	}
	return filter, nil
}

func serviceError(err error, msg string) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}
	return echo.NewHTTPError(500, msg).WithInternal(err)
}

// List returns every asset visible at the caller's resolved scope, filtered
// by the optional packageId, benchmarkId and dept query parameters.
func (a *AssetController) List(ctx shared.Context) error {
	filter, err := filterFromQuery(ctx)
	if err != nil {
		return err
	}

	rows, err := a.assetService.Query(projectionsFromQuery(ctx), filter, shared.GetElevate(ctx), shared.GetUser(ctx))
	if err != nil {
		return serviceError(err, "could not query assets")
	}
	return ctx.JSON(200, rows)
}

func (a *AssetController) Read(ctx shared.Context) error {
	assetID, err := pathID(ctx, "assetID")
	if err != nil {
		return err
	}

	rows, err := a.assetService.Query(projectionsFromQuery(ctx), dtos.AssetFilter{AssetID: &assetID}, shared.GetElevate(ctx), shared.GetUser(ctx))
	if err != nil {
		return serviceError(err, "could not query asset")
	}
	if len(rows) == 0 {
		return echo.NewHTTPError(404, "asset not found")
	}
	return ctx.JSON(200, rows[0])
}

// ListByBenchmark returns the assets mapped to one STIG. The reviewers
// projection is legal here because the benchmark predicate is fixed.
func (a *AssetController) ListByBenchmark(ctx shared.Context) error {
	filter := dtos.AssetFilter{BenchmarkID: shared.Ptr(ctx.Param("benchmarkID"))}

	rows, err := a.assetService.Query(projectionsFromQuery(ctx), filter, shared.GetElevate(ctx), shared.GetUser(ctx))
	if err != nil {
		return serviceError(err, "could not query assets")
	}
	return ctx.JSON(200, rows)
}

func (a *AssetController) Create(ctx shared.Context) error {
	return a.write(ctx, dtos.WriteActionCreate, nil, 201)
}

func (a *AssetController) Replace(ctx shared.Context) error {
	assetID, err := pathID(ctx, "assetID")
	if err != nil {
		return err
	}
	return a.write(ctx, dtos.WriteActionReplace, &assetID, 200)
}

func (a *AssetController) Update(ctx shared.Context) error {
	assetID, err := pathID(ctx, "assetID")
	if err != nil {
		return err
	}
	return a.write(ctx, dtos.WriteActionUpdate, &assetID, 200)
}

func (a *AssetController) write(ctx shared.Context, action dtos.WriteAction, assetID *int64, status int) error {
	var payload dtos.AssetWrite
	if err := ctx.Bind(&payload); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	row, err := a.assetService.WriteAsset(action, assetID, payload, projectionsFromQuery(ctx), shared.GetElevate(ctx), shared.GetUser(ctx))
	if err != nil {
		return serviceError(err, "could not write asset")
	}
	return ctx.JSON(status, row)
}

func (a *AssetController) Delete(ctx shared.Context) error {
	assetID, err := pathID(ctx, "assetID")
	if err != nil {
		return err
	}

	row, err := a.assetService.Delete(assetID, projectionsFromQuery(ctx), shared.GetElevate(ctx), shared.GetUser(ctx))
	if err != nil {
		return serviceError(err, "could not delete asset")
	}
	return ctx.JSON(200, row)
}
