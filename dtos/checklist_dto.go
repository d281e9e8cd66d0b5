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

// ChecklistRow is one flattened (asset, rule) compliance finding as returned
// by the structured checklist read.
type ChecklistRow struct {
	AssetID    int64  `json:"assetId" gorm:"column:asset_id"`
	GroupID    string `json:"groupId" gorm:"column:group_id"`
	RuleID     string `json:"ruleId" gorm:"column:rule_id"`
	GroupTitle string `json:"groupTitle" gorm:"column:group_title"`
	RuleTitle  string `json:"ruleTitle" gorm:"column:rule_title"`
	Cat        string `json:"cat" gorm:"column:cat"`

	Documentable bool   `json:"documentable" gorm:"column:documentable"`
	StateAbbr    string `json:"stateAbbr" gorm:"column:state_abbr"`
	StatusID     int    `json:"statusId" gorm:"column:status_id"`
	AutoState    bool   `json:"autoState" gorm:"column:auto_state"`
	HasAttach    bool   `json:"hasAttach" gorm:"column:has_attach"`
	Done         bool   `json:"done" gorm:"column:done"`
	CheckType    string `json:"checkType" gorm:"column:check_type"`
}

// BenchmarkInfo is the revision metadata substituted into the checklist
// export header.
type BenchmarkInfo struct {
	BenchmarkID   string  `gorm:"column:benchmark_id"`
	Title         *string `gorm:"column:title"`
	RevID         string  `gorm:"column:rev_id"`
	Description   *string `gorm:"column:description"`
	Version       *string `gorm:"column:version"`
	Release       *string `gorm:"column:release"`
	BenchmarkDate *string `gorm:"column:benchmark_date"`
}

// ExportRow is one (asset, rule) row of the checklist export query, carrying
// the full rule text fields plus the review result.
type ExportRow struct {
	GroupID                  string  `gorm:"column:group_id"`
	Severity                 *string `gorm:"column:severity"`
	GroupTitle               *string `gorm:"column:group_title"`
	RuleID                   string  `gorm:"column:rule_id"`
	RuleTitle                *string `gorm:"column:rule_title"`
	Weight                   *string `gorm:"column:weight"`
	Version                  *string `gorm:"column:version"`
	VulnDiscussion           *string `gorm:"column:vuln_discussion"`
	IAControls               *string `gorm:"column:ia_controls"`
	CheckContent             *string `gorm:"column:check_content"`
	FixText                  *string `gorm:"column:fix_text"`
	FalsePositives           *string `gorm:"column:false_positives"`
	FalseNegatives           *string `gorm:"column:false_negatives"`
	Documentable             *string `gorm:"column:documentable"`
	Mitigations              *string `gorm:"column:mitigations"`
	PotentialImpacts         *string `gorm:"column:potential_impacts"`
	ThirdPartyTools          *string `gorm:"column:third_party_tools"`
	MitigationControl        *string `gorm:"column:mitigation_control"`
	Responsibility           *string `gorm:"column:responsibility"`
	SecurityOverrideGuidance *string `gorm:"column:security_override_guidance"`

	StateID       int     `gorm:"column:state_id"`
	StateComment  *string `gorm:"column:state_comment"`
	Action        *string `gorm:"column:action"`
	ActionComment *string `gorm:"column:action_comment"`
	TS            *string `gorm:"column:ts"`
	CCIs          *string `gorm:"column:ccis"`
}
