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

package repositories

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openstig/stigman/dtos"
	"github.com/openstig/stigman/shared"
)

func TestBuildAssetQueryPredicates(t *testing.T) {
	t.Run("caller data only enters through binds", func(t *testing.T) {
		dept := "10'; DROP TABLE assets; --"
		q := buildAssetQuery(nil, dtos.AssetFilter{Dept: &dept}, shared.ScopeAll, shared.User{})

		assert.NotContains(t, q.SQL(), dept)
		assert.Equal(t, dept, q.Binds()["dept"])
		assert.Contains(t, q.SQL(), "a.dept = @dept")
	})

	t.Run("empty filter at all scope has no where clause", func(t *testing.T) {
		q := buildAssetQuery(nil, dtos.AssetFilter{}, shared.ScopeAll, shared.User{})

		assert.NotContains(t, q.SQL(), "WHERE")
		assert.Empty(t, q.Binds())
	})

	t.Run("each supplied filter contributes exactly one clause", func(t *testing.T) {
		q := buildAssetQuery(nil, dtos.AssetFilter{
			AssetID:     shared.Ptr(int64(12)),
			PackageID:   shared.Ptr(int64(3)),
			BenchmarkID: shared.Ptr("RHEL-8-STIG"),
			Dept:        shared.Ptr("25"),
		}, shared.ScopeAll, shared.User{})

		assert.Len(t, q.where, 4)
		assert.Equal(t, map[string]any{
			"assetId":     int64(12),
			"packageId":   int64(3),
			"benchmarkId": "RHEL-8-STIG",
			"dept":        "25",
		}, q.Binds())
	})

	t.Run("department scope adds a department clause", func(t *testing.T) {
		q := buildAssetQuery(nil, dtos.AssetFilter{}, shared.ScopeDepartment, shared.User{Dept: "40"})

		assert.Contains(t, q.SQL(), "a.dept = @userDept")
		assert.Equal(t, "40", q.Binds()["userDept"])
	})

	t.Run("department scope composes with an explicit department filter", func(t *testing.T) {
		q := buildAssetQuery(nil, dtos.AssetFilter{Dept: shared.Ptr("25")}, shared.ScopeDepartment, shared.User{Dept: "40"})

		assert.Contains(t, q.SQL(), "a.dept = @dept and a.dept = @userDept")
		assert.Equal(t, "25", q.Binds()["dept"])
		assert.Equal(t, "40", q.Binds()["userDept"])
	})

	t.Run("own scope restricts to the caller's reviewer assignments", func(t *testing.T) {
		q := buildAssetQuery(nil, dtos.AssetFilter{}, shared.ScopeOwn, shared.User{ID: 7})

		assert.Contains(t, q.SQL(), "usa.user_id = @userId")
		assert.Equal(t, int64(7), q.Binds()["userId"])
	})
}

func TestBuildAssetQueryProjections(t *testing.T) {
	t.Run("each projection contributes one column", func(t *testing.T) {
		q := buildAssetQuery([]dtos.Projection{dtos.ProjectionPackages, dtos.ProjectionAdminStats}, dtos.AssetFilter{}, shared.ScopeAll, shared.User{})

		sql := q.SQL()
		assert.Contains(t, sql, "as packages")
		assert.Contains(t, sql, "as admin_stats")
		assert.NotContains(t, sql, "as stigs")
	})

	t.Run("duplicate projection requests contribute one column", func(t *testing.T) {
		q := buildAssetQuery([]dtos.Projection{dtos.ProjectionStigs, dtos.ProjectionStigs}, dtos.AssetFilter{}, shared.ScopeAll, shared.User{})

		assert.Equal(t, 1, strings.Count(q.SQL(), "as stigs"))
	})

	t.Run("aggregated elements carry a deterministic order", func(t *testing.T) {
		q := buildAssetQuery([]dtos.Projection{dtos.ProjectionPackages, dtos.ProjectionStigs}, dtos.AssetFilter{}, shared.ScopeAll, shared.User{})

		sql := q.SQL()
		assert.Contains(t, sql, "order by p2.name")
		assert.Contains(t, sql, "order by cr2.benchmark_id")
	})

	t.Run("reviewer projections are suppressed entirely under own scope", func(t *testing.T) {
		q := buildAssetQuery([]dtos.Projection{dtos.ProjectionStigReviewers, dtos.ProjectionReviewers}, dtos.AssetFilter{}, shared.ScopeOwn, shared.User{ID: 7})

		sql := q.SQL()
		assert.NotContains(t, sql, "as stig_reviewers")
		assert.NotContains(t, sql, "as reviewers")
	})

	t.Run("reviewer projections are present for wider scopes", func(t *testing.T) {
		q := buildAssetQuery([]dtos.Projection{dtos.ProjectionStigReviewers, dtos.ProjectionReviewers}, dtos.AssetFilter{BenchmarkID: shared.Ptr("RHEL-8-STIG")}, shared.ScopeDepartment, shared.User{Dept: "40"})

		sql := q.SQL()
		assert.Contains(t, sql, "as stig_reviewers")
		assert.Contains(t, sql, "as reviewers")
	})
}

func TestBuildAssetQueryShape(t *testing.T) {
	q := buildAssetQuery([]dtos.Projection{dtos.ProjectionPackages}, dtos.AssetFilter{}, shared.ScopeAll, shared.User{})
	sql := q.SQL()

	t.Run("groups by all non-aggregated columns", func(t *testing.T) {
		assert.Contains(t, sql, "GROUP BY a.asset_id, a.name, a.ip, a.dept, a.nonnetwork, a.scanexempt")
	})

	t.Run("ordering is deterministic", func(t *testing.T) {
		assert.Contains(t, sql, "ORDER BY a.name, a.asset_id")
	})
}
