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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openstig/stigman/dtos"
)

func TestBenchmarkSets(t *testing.T) {
	t.Run("re-affirmed benchmarks survive the delete pass", func(t *testing.T) {
		// deleting a re-affirmed assignment would cascade away reviewer
		// mappings the caller never asked to touch
		insertSet, preserveSet := benchmarkSets([]string{"STIG-A", "STIG-B"}, nil)

		assert.ElementsMatch(t, []string{"STIG-A", "STIG-B"}, insertSet)
		assert.ElementsMatch(t, []string{"STIG-A", "STIG-B"}, preserveSet)
	})

	t.Run("benchmarks named in stigReviewers are not preserved", func(t *testing.T) {
		insertSet, preserveSet := benchmarkSets(
			[]string{"STIG-A", "STIG-B"},
			[]dtos.StigReviewerAssignment{{BenchmarkID: "STIG-B", UserIDs: []int64{4}}},
		)

		assert.ElementsMatch(t, []string{"STIG-A", "STIG-B"}, insertSet)
		assert.Equal(t, []string{"STIG-A"}, preserveSet)
	})

	t.Run("reviewer-only benchmarks are inserted", func(t *testing.T) {
		insertSet, preserveSet := benchmarkSets(
			nil,
			[]dtos.StigReviewerAssignment{
				{BenchmarkID: "STIG-C", UserIDs: []int64{4, 5}},
				{BenchmarkID: "STIG-D"},
			},
		)

		assert.ElementsMatch(t, []string{"STIG-C", "STIG-D"}, insertSet)
		assert.Empty(t, preserveSet)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		insertSet, preserveSet := benchmarkSets(
			[]string{"STIG-A", "STIG-A"},
			[]dtos.StigReviewerAssignment{{BenchmarkID: "STIG-A"}},
		)

		assert.Equal(t, []string{"STIG-A"}, insertSet)
		assert.Empty(t, preserveSet)
	})

	t.Run("empty payload yields empty sets", func(t *testing.T) {
		insertSet, preserveSet := benchmarkSets(nil, nil)

		assert.Empty(t, insertSet)
		assert.Empty(t, preserveSet)
	})
}
