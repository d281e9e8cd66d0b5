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
	"github.com/openstig/stigman/database/models"
	"github.com/openstig/stigman/dtos"
	"github.com/openstig/stigman/shared"
)

// naturalGroupOrder sorts V-<number> group ids numerically instead of
// lexically by left-padding the numeric suffix.
const naturalGroupOrder = `case when g.group_id like 'V-%'
	then lpad(substring(g.group_id from 3), 6, '0')
	else g.group_id end asc`

type checklistRepository struct {
	db shared.DB
}

func NewChecklistRepository(db shared.DB) *checklistRepository {
	return &checklistRepository{db: db}
}

// Rows returns the flat one-row-per-rule checklist for an asset and
// benchmark revision. revID selects an explicit revision; empty means the
// current one.
func (repository *checklistRepository) Rows(assetID int64, benchmarkID string, revID string) ([]dtos.ChecklistRow, error) {
	revTable := "current_revs rev"
	binds := map[string]any{
		"assetId":     assetID,
		"benchmarkId": benchmarkID,
	}
	where := "rev.benchmark_id = @benchmarkId"
	if revID != "" {
		revTable = "revisions rev"
		where += " and rev.rev_id = @revId"
		binds["revId"] = revID
	}

	sql := `SELECT
	@assetId as asset_id,
	g.group_id as group_id,
	r.rule_id as rule_id,
	g.title as group_title,
	r.title as rule_title,
	sc.cat as cat,
	r.documentable as documentable,
	coalesce(state.abbr, '') as state_abbr,
	coalesce(review.status_id, 0) as status_id,
	coalesce(review.auto_state, false) as auto_state,
	ra.ra_id is not null as has_attach,
	case
		when review.rule_id is null then false
		when review.state_id != 4
			then review.state_comment is not null and review.state_comment != ' '
		else review.action_id is not null
			and review.action_comment is not null and review.action_comment != ' '
	end as done,
	case when scap.rule_id is null then 'Manual' else 'SCAP' end as check_type
FROM ` + revTable + `
left join rev_group_map rg on rev.rev_id = rg.rev_id
left join groups g on rg.group_id = g.group_id
left join rev_group_rule_map rgr on rg.rg_id = rgr.rg_id
left join rules r on rgr.rule_id = r.rule_id
left join severity_cat_map sc on r.severity = sc.severity
left join reviews review on r.rule_id = review.rule_id and review.asset_id = @assetId
left join states state on review.state_id = state.state_id
left join review_artifact_map ra on ra.asset_id = review.asset_id and ra.rule_id = review.rule_id
left join (select distinct rule_id from rule_oval_map) scap on r.rule_id = scap.rule_id
WHERE ` + where + `
ORDER BY ` + naturalGroupOrder

	var rows []dtos.ChecklistRow
	if err := repository.db.Raw(sql, binds).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Asset returns the asset descriptor fields used in the export header.
func (repository *checklistRepository) Asset(assetID int64) (models.Asset, error) {
	var asset models.Asset
	err := repository.db.Where("asset_id = ?", assetID).First(&asset).Error
	return asset, err
}

// BenchmarkInfo returns the revision metadata substituted into the STIG-info
// block. revID selects an explicit revision; empty means the current one.
func (repository *checklistRepository) BenchmarkInfo(benchmarkID string, revID string) (dtos.BenchmarkInfo, error) {
	var info dtos.BenchmarkInfo
	var err error
	if revID == "" {
		err = repository.db.Raw(`SELECT
			cr.benchmark_id as benchmark_id,
			st.title as title,
			cr.rev_id as rev_id,
			cr.description as description,
			cr.version as version,
			cr.release as release,
			cr.benchmark_date as benchmark_date
		FROM current_revs cr
		left join benchmarks st on cr.benchmark_id = st.benchmark_id
		WHERE cr.benchmark_id = ?`, benchmarkID).Scan(&info).Error
	} else {
		err = repository.db.Raw(`SELECT
			r.benchmark_id as benchmark_id,
			st.title as title,
			r.rev_id as rev_id,
			r.description as description,
			r.version as version,
			r.release as release,
			r.benchmark_date as benchmark_date
		FROM revisions r
		left join benchmarks st on r.benchmark_id = st.benchmark_id
		WHERE r.rev_id = ?`, revID).Scan(&info).Error
	}
	return info, err
}

// ExportRows returns the per-rule detail rows of the checklist export,
// including the review result and the comma-joined CCI control references.
func (repository *checklistRepository) ExportRows(assetID int64, revID string) ([]dtos.ExportRow, error) {
	sql := `SELECT
	g.group_id as group_id,
	r.severity as severity,
	g.title as group_title,
	r.rule_id as rule_id,
	r.title as rule_title,
	r.weight as weight,
	r.version as version,
	r.vuln_discussion as vuln_discussion,
	r.ia_controls as ia_controls,
	max(c.content) as check_content,
	max(left(f.text, 4000)) as fix_text,
	r.false_positives as false_positives,
	r.false_negatives as false_negatives,
	r.documentable as documentable,
	r.mitigations as mitigations,
	r.potential_impacts as potential_impacts,
	r.third_party_tools as third_party_tools,
	r.mitigation_control as mitigation_control,
	r.responsibility as responsibility,
	r.security_override_guidance as security_override_guidance,
	coalesce(review.state_id, 0) as state_id,
	review.state_comment as state_comment,
	act.action as action,
	review.action_comment as action_comment,
	to_char(review.ts, 'YYYY-MM-DD HH24:MI:SS') as ts,
	string_agg(distinct rulectl.control_number, ',' order by rulectl.control_number) as ccis
FROM rev_group_map rg
left join groups g on rg.group_id = g.group_id
left join rev_group_rule_map rgr on rg.rg_id = rgr.rg_id
left join rules r on rgr.rule_id = r.rule_id
left join rule_check_map rc on r.rule_id = rc.rule_id
left join checks c on rc.check_id = c.check_id
left join rule_fix_map rf on r.rule_id = rf.rule_id
left join fixes f on rf.fix_id = f.fix_id
left join rule_control_map rulectl on r.rule_id = rulectl.rule_id and rulectl.control_type = 'CCI'
left join reviews review on r.rule_id = review.rule_id and review.asset_id = @assetId
left join actions act on act.action_id = review.action_id
WHERE rg.rev_id = @revId
GROUP BY
	g.group_id, g.title,
	r.severity, r.rule_id, r.title, r.weight, r.version,
	r.vuln_discussion, r.ia_controls,
	r.false_positives, r.false_negatives, r.documentable,
	r.mitigations, r.potential_impacts, r.third_party_tools,
	r.mitigation_control, r.responsibility, r.security_override_guidance,
	review.state_id, review.state_comment, act.action, review.action_comment, review.ts
ORDER BY ` + naturalGroupOrder

	var rows []dtos.ExportRow
	err := repository.db.Raw(sql, map[string]any{
		"assetId": assetID,
		"revId":   revID,
	}).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
