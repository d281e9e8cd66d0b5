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

package models

// Asset is a managed computing endpoint tracked for compliance.
type Asset struct {
	AssetID    int64   `json:"assetId" gorm:"column:asset_id;primaryKey;autoIncrement"`
	Name       *string `json:"name" gorm:"column:name;type:text"`
	IP         *string `json:"ip" gorm:"column:ip;type:text"`
	Dept       *string `json:"dept" gorm:"column:dept;type:text"`
	Nonnetwork bool    `json:"nonnetwork" gorm:"column:nonnetwork;default:false;not null"`
	Scanexempt bool    `json:"scanexempt" gorm:"column:scanexempt;default:false;not null"`
}

func (m Asset) TableName() string {
	return "assets"
}

// AssetPackage maps an asset into a package. Pure join row, no attributes.
type AssetPackage struct {
	AssetID   int64 `json:"assetId" gorm:"column:asset_id;primaryKey"`
	PackageID int64 `json:"packageId" gorm:"column:package_id;primaryKey"`
}

func (m AssetPackage) TableName() string {
	return "asset_package_map"
}
