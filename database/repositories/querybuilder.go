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

	"github.com/openstig/stigman/dtos"
	"github.com/openstig/stigman/shared"
)

// assetQuery accumulates typed clause terms (columns, joins, predicates with
// named binds) and serializes to SQL once at the end. Caller data only ever
// enters the statement through the bind map.
type assetQuery struct {
	columns []string
	joins   []string
	where   []string
	binds   map[string]any
	groupBy []string
	orderBy string
}

func newAssetQuery() *assetQuery {
	return &assetQuery{
		columns: []string{
			"a.asset_id",
			"a.name",
			"a.ip",
			"a.dept",
			"a.nonnetwork",
			"a.scanexempt",
		},
		joins: []string{
			"assets a",
			"left join asset_package_map ap on a.asset_id = ap.asset_id",
			"left join packages p on ap.package_id = p.package_id",
			"left join stig_asset_map sa on a.asset_id = sa.asset_id",
			"left join user_stig_asset_map usa on sa.sa_id = usa.sa_id",
		},
		binds: map[string]any{},
		groupBy: []string{
			"a.asset_id",
			"a.name",
			"a.ip",
			"a.dept",
			"a.nonnetwork",
			"a.scanexempt",
		},
		orderBy: "a.name, a.asset_id",
	}
}

func (q *assetQuery) addColumn(column string) {
	q.columns = append(q.columns, column)
}

func (q *assetQuery) addPredicate(statement string, name string, value any) {
	q.where = append(q.where, statement)
	q.binds[name] = value
}

func (q *assetQuery) SQL() string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(q.columns, ",\n"))
	sb.WriteString("\nFROM ")
	sb.WriteString(strings.Join(q.joins, "\n"))
	if len(q.where) > 0 {
		sb.WriteString("\nWHERE ")
		sb.WriteString(strings.Join(q.where, " and "))
	}
	sb.WriteString("\nGROUP BY ")
	sb.WriteString(strings.Join(q.groupBy, ", "))
	sb.WriteString("\nORDER BY ")
	sb.WriteString(q.orderBy)
	return sb.String()
}

func (q *assetQuery) Binds() map[string]any {
	return q.binds
}

const packagesColumn = `(select coalesce(jsonb_agg(jsonb_build_object(
	'packageId', p2.package_id,
	'name', p2.name) order by p2.name), '[]'::jsonb)
from asset_package_map ap2
join packages p2 on ap2.package_id = p2.package_id
where ap2.asset_id = a.asset_id) as packages`

const adminStatsColumn = `jsonb_build_object(
	'stigCount', count(distinct sa.sa_id),
	'stigAssignedCount', count(distinct usa.sa_id)) as admin_stats`

const stigReviewersColumn = `(select jsonb_agg(jsonb_build_object(
	'benchmarkId', by_stig.benchmark_id,
	'reviewers', by_stig.reviewers) order by by_stig.benchmark_id)
from (select
		sa2.benchmark_id,
		coalesce(jsonb_agg(jsonb_build_object(
			'userId', u.user_id,
			'username', u.username,
			'dept', u.dept) order by u.username) filter (where u.user_id is not null), '[]'::jsonb) as reviewers
	from stig_asset_map sa2
	left join user_stig_asset_map usa2 on sa2.sa_id = usa2.sa_id
	left join users u on usa2.user_id = u.user_id
	where sa2.asset_id = a.asset_id
	group by sa2.benchmark_id) by_stig) as stig_reviewers`

// reviewersColumn relies on the benchmarkId predicate being bound. Without it
// the sub-query is ambiguous, so callers must only request this projection
// together with a benchmarkId filter.
const reviewersColumn = `(select coalesce(jsonb_agg(jsonb_build_object(
	'userId', u.user_id,
	'username', u.username,
	'dept', u.dept) order by u.username) filter (where u.user_id is not null), '[]'::jsonb)
from stig_asset_map sa2
left join user_stig_asset_map usa2 on sa2.sa_id = usa2.sa_id
left join users u on usa2.user_id = u.user_id
where sa2.asset_id = a.asset_id and sa2.benchmark_id = @benchmarkId) as reviewers`

const stigsColumn = `(select coalesce(jsonb_agg(jsonb_build_object(
	'benchmarkId', cr2.benchmark_id,
	'lastRevisionStr', concat('V', cr2.version, 'R', cr2.release),
	'lastRevisionDate', cr2.benchmark_date,
	'title', st2.title) order by cr2.benchmark_id), '[]'::jsonb)
from stig_asset_map sa2
join current_revs cr2 on sa2.benchmark_id = cr2.benchmark_id
left join benchmarks st2 on cr2.benchmark_id = st2.benchmark_id
where sa2.asset_id = a.asset_id) as stigs`

// buildAssetQuery combines the requested projections, the caller filters and
// the resolved visibility scope into one executable statement.
func buildAssetQuery(projections []dtos.Projection, filter dtos.AssetFilter, scope shared.Scope, user shared.User) *assetQuery {
	q := newAssetQuery()

	seen := map[dtos.Projection]bool{}
	for _, projection := range projections {
		if seen[projection] {
			continue
		}
		seen[projection] = true

		switch projection {
		case dtos.ProjectionPackages:
			q.addColumn(packagesColumn)
		case dtos.ProjectionAdminStats:
			q.addColumn(adminStatsColumn)
		case dtos.ProjectionStigReviewers:
			// a restricted caller must not learn the reviewer roster
			if scope != shared.ScopeOwn {
				q.addColumn(stigReviewersColumn)
			}
		case dtos.ProjectionReviewers:
			if scope != shared.ScopeOwn {
				q.addColumn(reviewersColumn)
			}
		case dtos.ProjectionStigs:
			q.addColumn(stigsColumn)
		}
	}

	if filter.AssetID != nil {
		q.addPredicate("a.asset_id = @assetId", "assetId", *filter.AssetID)
	}
	if filter.PackageID != nil {
		q.addPredicate("ap.package_id = @packageId", "packageId", *filter.PackageID)
	}
	if filter.BenchmarkID != nil {
		q.addPredicate("sa.benchmark_id = @benchmarkId", "benchmarkId", *filter.BenchmarkID)
	}
	if filter.Dept != nil {
		q.addPredicate("a.dept = @dept", "dept", *filter.Dept)
	}

	switch scope {
	case shared.ScopeDepartment:
		// distinct bind name so an explicit dept filter can co-occur
		q.addPredicate("a.dept = @userDept", "userDept", user.Dept)
	case shared.ScopeOwn:
		q.addPredicate("usa.user_id = @userId", "userId", user.ID)
	}

	return q
}
