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

// Benchmark is a versioned compliance rule-set (a STIG), identified by a
// stable string key.
type Benchmark struct {
	BenchmarkID string  `json:"benchmarkId" gorm:"column:benchmark_id;primaryKey;type:text"`
	Title       *string `json:"title" gorm:"column:title;type:text"`
}

func (m Benchmark) TableName() string {
	return "benchmarks"
}

// Revision is one released version of a benchmark. The revId key is derived
// as <benchmarkId>-<version>-<release>.
type Revision struct {
	RevID         string  `json:"revId" gorm:"column:rev_id;primaryKey;type:text"`
	BenchmarkID   string  `json:"benchmarkId" gorm:"column:benchmark_id;type:text;not null"`
	Version       string  `json:"version" gorm:"column:version;type:text"`
	Release       string  `json:"release" gorm:"column:release;type:text"`
	BenchmarkDate *string `json:"benchmarkDate" gorm:"column:benchmark_date;type:text"`
	Description   *string `json:"description" gorm:"column:description;type:text"`
}

func (m Revision) TableName() string {
	return "revisions"
}

// CurrentRev mirrors revisions but holds exactly one row per benchmark, the
// currently effective revision.
type CurrentRev struct {
	RevID         string  `json:"revId" gorm:"column:rev_id;primaryKey;type:text"`
	BenchmarkID   string  `json:"benchmarkId" gorm:"column:benchmark_id;type:text;not null"`
	Version       string  `json:"version" gorm:"column:version;type:text"`
	Release       string  `json:"release" gorm:"column:release;type:text"`
	BenchmarkDate *string `json:"benchmarkDate" gorm:"column:benchmark_date;type:text"`
	Description   *string `json:"description" gorm:"column:description;type:text"`
}

func (m CurrentRev) TableName() string {
	return "current_revs"
}

// StigAssignment attaches a benchmark to an asset. The (assetId, benchmarkId)
// pair is unique; duplicate inserts are ignored rather than errored.
type StigAssignment struct {
	SaID        int64  `json:"saId" gorm:"column:sa_id;primaryKey;autoIncrement"`
	AssetID     int64  `json:"assetId" gorm:"column:asset_id;uniqueIndex:idx_stig_asset;not null"`
	BenchmarkID string `json:"benchmarkId" gorm:"column:benchmark_id;uniqueIndex:idx_stig_asset;type:text;not null"`

	UserAssignments []UserStigAssignment `json:"-" gorm:"foreignKey:SaID;references:SaID;constraint:OnDelete:CASCADE;"`
}

func (m StigAssignment) TableName() string {
	return "stig_asset_map"
}

// UserStigAssignment scopes a reviewer to one asset+benchmark pair. Rows are
// removed by the database cascade when the owning StigAssignment is deleted.
type UserStigAssignment struct {
	UsaID  int64 `json:"usaId" gorm:"column:usa_id;primaryKey;autoIncrement"`
	UserID int64 `json:"userId" gorm:"column:user_id;uniqueIndex:idx_user_stig_asset;not null"`
	SaID   int64 `json:"saId" gorm:"column:sa_id;uniqueIndex:idx_user_stig_asset;not null"`
}

func (m UserStigAssignment) TableName() string {
	return "user_stig_asset_map"
}
