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

package services

import (
	"github.com/labstack/echo/v4"

	"github.com/openstig/stigman/dtos"
	"github.com/openstig/stigman/shared"
)

type assetService struct {
	assetRepository shared.AssetRepository
}

func NewAssetService(assetRepository shared.AssetRepository) *assetService {
	return &assetService{
		assetRepository: assetRepository,
	}
}

// Query runs a scoped asset read. An empty filter returns every asset visible
// at the caller's resolved scope.
func (s *assetService) Query(projections []dtos.Projection, filter dtos.AssetFilter, elevate bool, user shared.User) ([]dtos.AssetRow, error) {
	scope := shared.ResolveScope(user, elevate)
	return s.assetRepository.Query(projections, filter, scope, user)
}

// WriteAsset validates the payload, applies the write transactionally and
// re-reads the committed asset through the read path, so the response always
// reflects committed state.
func (s *assetService) WriteAsset(action dtos.WriteAction, assetID *int64, payload dtos.AssetWrite, projections []dtos.Projection, elevate bool, user shared.User) (*dtos.AssetRow, error) {
	if err := shared.V.Struct(payload); err != nil {
		return nil, echo.NewHTTPError(400, "invalid asset payload").WithInternal(err)
	}
	if action != dtos.WriteActionCreate && assetID == nil {
		return nil, echo.NewHTTPError(400, "missing asset id")
	}

	id, err := s.assetRepository.WriteAsset(action, assetID, payload)
	if err != nil {
		return nil, err
	}

	scope := shared.ResolveScope(user, elevate)
	rows, err := s.assetRepository.Query(projections, dtos.AssetFilter{AssetID: &id}, scope, user)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		// committed, but outside the caller's own visibility
		return nil, nil
	}
	return &rows[0], nil
}

// Delete returns the asset's last visible representation, then removes it.
func (s *assetService) Delete(assetID int64, projections []dtos.Projection, elevate bool, user shared.User) (*dtos.AssetRow, error) {
	scope := shared.ResolveScope(user, elevate)
	rows, err := s.assetRepository.Query(projections, dtos.AssetFilter{AssetID: &assetID}, scope, user)
	if err != nil {
		return nil, err
	}
	if err := s.assetRepository.Delete(assetID); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
