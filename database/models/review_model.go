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

import "time"

// Review is a per (asset, rule) compliance finding. This service never
// creates reviews; they are read and denormalized into checklist exports.
type Review struct {
	AssetID       int64   `json:"assetId" gorm:"column:asset_id;primaryKey"`
	RuleID        string  `json:"ruleId" gorm:"column:rule_id;primaryKey;type:text"`
	StateID       int     `json:"stateId" gorm:"column:state_id;not null"`
	StateComment  *string `json:"stateComment" gorm:"column:state_comment;type:text"`
	ActionID      *int    `json:"actionId" gorm:"column:action_id"`
	ActionComment *string `json:"actionComment" gorm:"column:action_comment;type:text"`
	StatusID      int     `json:"statusId" gorm:"column:status_id;default:0;not null"`
	AutoState     bool    `json:"autoState" gorm:"column:auto_state;default:false;not null"`

	TS time.Time `json:"ts" gorm:"column:ts"`
}

func (m Review) TableName() string {
	return "reviews"
}
