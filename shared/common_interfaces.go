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

package shared

import (
	"github.com/openstig/stigman/database/models"
	"github.com/openstig/stigman/dtos"
)

type AssetRepository interface {
	Query(projections []dtos.Projection, filter dtos.AssetFilter, scope Scope, user User) ([]dtos.AssetRow, error)
	WriteAsset(action dtos.WriteAction, assetID *int64, payload dtos.AssetWrite) (int64, error)
	Delete(assetID int64) error
}

type ChecklistRepository interface {
	Rows(assetID int64, benchmarkID string, revID string) ([]dtos.ChecklistRow, error)
	Asset(assetID int64) (models.Asset, error)
	BenchmarkInfo(benchmarkID string, revID string) (dtos.BenchmarkInfo, error)
	ExportRows(assetID int64, revID string) ([]dtos.ExportRow, error)
}

type AssetService interface {
	Query(projections []dtos.Projection, filter dtos.AssetFilter, elevate bool, user User) ([]dtos.AssetRow, error)
	WriteAsset(action dtos.WriteAction, assetID *int64, payload dtos.AssetWrite, projections []dtos.Projection, elevate bool, user User) (*dtos.AssetRow, error)
	Delete(assetID int64, projections []dtos.Projection, elevate bool, user User) (*dtos.AssetRow, error)
}

type ChecklistService interface {
	Rows(assetID int64, benchmarkID string, revisionStr string) ([]dtos.ChecklistRow, error)
	ExportCKL(assetID int64, benchmarkID string, revisionStr string) ([]byte, error)
}
