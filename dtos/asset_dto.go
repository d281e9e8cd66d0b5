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

package dtos

import (
	databasetypes "github.com/openstig/stigman/database/types"
)

// Projection names an optionally requested nested structure attached to each
// asset row.
type Projection string

const (
	ProjectionPackages      Projection = "packages"
	ProjectionAdminStats    Projection = "adminStats"
	ProjectionStigReviewers Projection = "stigReviewers"
	ProjectionReviewers     Projection = "reviewers"
	ProjectionStigs         Projection = "stigs"
)

// ParseProjections filters the requested names down to the fixed vocabulary,
// preserving request order and dropping duplicates.
func ParseProjections(names []string) []Projection {
	valid := map[Projection]bool{
		ProjectionPackages:      true,
		ProjectionAdminStats:    true,
		ProjectionStigReviewers: true,
		ProjectionReviewers:     true,
		ProjectionStigs:         true,
	}
	seen := map[Projection]bool{}
	projections := make([]Projection, 0, len(names))
	for _, name := range names {
		p := Projection(name)
		if valid[p] && !seen[p] {
			seen[p] = true
			projections = append(projections, p)
		}
	}
	return projections
}

// AssetFilter holds the optional caller-supplied predicates of a read.
type AssetFilter struct {
	AssetID     *int64
	PackageID   *int64
	BenchmarkID *string
	Dept        *string
}

// AssetRow is one result row of the asset read path. Projection columns are
// pointers so an unrequested (or suppressed) projection is absent from the
// serialized row, not merely empty.
type AssetRow struct {
	AssetID    int64   `json:"assetId" gorm:"column:asset_id"`
	Name       string  `json:"name" gorm:"column:name"`
	IP         *string `json:"ip" gorm:"column:ip"`
	Dept       *string `json:"dept" gorm:"column:dept"`
	Nonnetwork bool    `json:"nonnetwork" gorm:"column:nonnetwork"`
	Scanexempt bool    `json:"scanexempt" gorm:"column:scanexempt"`

	Packages      *databasetypes.JSONArray `json:"packages,omitempty" gorm:"column:packages"`
	AdminStats    *databasetypes.JSONB     `json:"adminStats,omitempty" gorm:"column:admin_stats"`
	StigReviewers *databasetypes.JSONArray `json:"stigReviewers,omitempty" gorm:"column:stig_reviewers"`
	Reviewers     *databasetypes.JSONArray `json:"reviewers,omitempty" gorm:"column:reviewers"`
	Stigs         *databasetypes.JSONArray `json:"stigs,omitempty" gorm:"column:stigs"`
}

// WriteAction selects the write semantics of an asset write.
type WriteAction int

const (
	WriteActionCreate WriteAction = iota
	WriteActionUpdate
	WriteActionReplace
)

func (a WriteAction) String() string {
	switch a {
	case WriteActionCreate:
		return "create"
	case WriteActionUpdate:
		return "update"
	case WriteActionReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// StigReviewerAssignment names the desired reviewer set for one benchmark of
// the asset being written. An empty UserIDs list clears the reviewers while
// keeping the benchmark assigned.
type StigReviewerAssignment struct {
	BenchmarkID string  `json:"benchmarkId" validate:"required"`
	UserIDs     []int64 `json:"userIds"`
}

// AssetWrite is the write payload. Every field is optional; the relationship
// fields are pointers to slices because an absent key means "do not touch"
// while an explicit empty list under replace semantics means "clear".
type AssetWrite struct {
	Name       *string `json:"name"`
	IP         *string `json:"ip"`
	Dept       *string `json:"dept"`
	Nonnetwork *bool   `json:"nonnetwork"`
	Scanexempt *bool   `json:"scanexempt"`

	PackageIDs    *[]int64                  `json:"packageIds"`
	BenchmarkIDs  *[]string                 `json:"benchmarkIds"`
	StigReviewers *[]StigReviewerAssignment `json:"stigReviewers" validate:"omitempty,dive"`
}

// HasScalarFields reports whether any scalar asset column was supplied.
func (w AssetWrite) HasScalarFields() bool {
	return w.Name != nil || w.IP != nil || w.Dept != nil || w.Nonnetwork != nil || w.Scanexempt != nil
}

// ScalarUpdates returns the scalar column assignments for the given action.
// Update touches only supplied fields; create and replace reset omitted
// optional fields to their defaults.
func (w AssetWrite) ScalarUpdates(action WriteAction) map[string]any {
	updates := map[string]any{}
	if action == WriteActionUpdate {
		if w.Name != nil {
			updates["name"] = *w.Name
		}
		if w.IP != nil {
			updates["ip"] = *w.IP
		}
		if w.Dept != nil {
			updates["dept"] = *w.Dept
		}
		if w.Nonnetwork != nil {
			updates["nonnetwork"] = *w.Nonnetwork
		}
		if w.Scanexempt != nil {
			updates["scanexempt"] = *w.Scanexempt
		}
		return updates
	}

	updates["name"] = w.Name
	updates["ip"] = w.IP
	updates["dept"] = w.Dept
	updates["nonnetwork"] = w.Nonnetwork != nil && *w.Nonnetwork
	updates["scanexempt"] = w.Scanexempt != nil && *w.Scanexempt
	return updates
}
