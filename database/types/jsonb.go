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

package databasetypes

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSONB scans a jsonb object column into a generic map.
type JSONB map[string]any

// Value Marshal
func (jsonField JSONB) Value() (driver.Value, error) {
	return json.Marshal(jsonField)
}

// Scan Unmarshal
func (jsonField *JSONB) Scan(value any) error {
	if value == nil {
		*jsonField = nil
		return nil
	}
	data, err := jsonbBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, jsonField)
}

// JSONArray scans a jsonb array column, as produced by jsonb_agg.
type JSONArray []any

func (jsonField JSONArray) Value() (driver.Value, error) {
	return json.Marshal(jsonField)
}

func (jsonField *JSONArray) Scan(value any) error {
	if value == nil {
		*jsonField = nil
		return nil
	}
	data, err := jsonbBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, jsonField)
}

func jsonbBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("type assertion to []byte failed")
	}
}
