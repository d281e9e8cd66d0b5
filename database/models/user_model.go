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

type User struct {
	UserID   int64   `json:"userId" gorm:"column:user_id;primaryKey;autoIncrement"`
	Username string  `json:"username" gorm:"column:username;type:text;not null"`
	Dept     *string `json:"dept" gorm:"column:dept;type:text"`
}

func (m User) TableName() string {
	return "users"
}
