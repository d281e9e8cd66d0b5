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
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestParseProjections(t *testing.T) {
	t.Run("keeps request order and drops duplicates", func(t *testing.T) {
		projections := ParseProjections([]string{"stigs", "packages", "stigs"})
		assert.Equal(t, []Projection{ProjectionStigs, ProjectionPackages}, projections)
	})

	t.Run("unknown names are dropped", func(t *testing.T) {
		projections := ParseProjections([]string{"packages", "secrets", "Packages"})
		assert.Equal(t, []Projection{ProjectionPackages}, projections)
	})

	t.Run("nil input yields an empty set", func(t *testing.T) {
		assert.Empty(t, ParseProjections(nil))
	})
}

func TestScalarUpdates(t *testing.T) {
	t.Run("update touches only supplied fields", func(t *testing.T) {
		w := AssetWrite{Name: ptr("web01"), Nonnetwork: ptr(true)}

		updates := w.ScalarUpdates(WriteActionUpdate)

		assert.Equal(t, map[string]any{
			"name":       "web01",
			"nonnetwork": true,
		}, updates)
	})

	t.Run("update with no scalar fields is empty", func(t *testing.T) {
		w := AssetWrite{PackageIDs: &[]int64{3}}

		assert.Empty(t, w.ScalarUpdates(WriteActionUpdate))
		assert.False(t, w.HasScalarFields())
	})

	t.Run("replace resets omitted fields to their defaults", func(t *testing.T) {
		w := AssetWrite{Name: ptr("web01")}

		updates := w.ScalarUpdates(WriteActionReplace)

		assert.Len(t, updates, 5)
		assert.Equal(t, ptr("web01"), updates["name"])
		assert.Equal(t, (*string)(nil), updates["ip"])
		assert.Equal(t, (*string)(nil), updates["dept"])
		assert.Equal(t, false, updates["nonnetwork"])
		assert.Equal(t, false, updates["scanexempt"])
	})
}
