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

package services

import (
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstig/stigman/database/models"
	"github.com/openstig/stigman/dtos"
	"github.com/openstig/stigman/shared"
	"github.com/openstig/stigman/utils"
)

type fakeChecklistRepository struct {
	asset models.Asset
	info  dtos.BenchmarkInfo
	flat  []dtos.ChecklistRow
	rows  []dtos.ExportRow

	exportRevID string
	flatRevID   string
}

func (f *fakeChecklistRepository) Rows(assetID int64, benchmarkID string, revID string) ([]dtos.ChecklistRow, error) {
	f.flatRevID = revID
	return f.flat, nil
}

func (f *fakeChecklistRepository) Asset(assetID int64) (models.Asset, error) {
	return f.asset, nil
}

func (f *fakeChecklistRepository) BenchmarkInfo(benchmarkID string, revID string) (dtos.BenchmarkInfo, error) {
	return f.info, nil
}

func (f *fakeChecklistRepository) ExportRows(assetID int64, revID string) ([]dtos.ExportRow, error) {
	f.exportRevID = revID
	return f.rows, nil
}

func TestResolveRevID(t *testing.T) {
	t.Run("latest selects the current revision", func(t *testing.T) {
		revID, err := resolveRevID("RHEL-8-STIG", "latest")
		assert.NoError(t, err)
		assert.Empty(t, revID)
	})

	t.Run("explicit revision derives the revision key", func(t *testing.T) {
		revID, err := resolveRevID("RHEL-8-STIG", "V2R1")
		assert.NoError(t, err)
		assert.Equal(t, "RHEL-8-STIG-2-1", revID)

		revID, err = resolveRevID("RHEL-8-STIG", "V4R1.3")
		assert.NoError(t, err)
		assert.Equal(t, "RHEL-8-STIG-4-1.3", revID)
	})

	t.Run("malformed selectors are client-input errors", func(t *testing.T) {
		for _, revisionStr := range []string{"", "latest2", "V2", "R1", "v2r1", "V2R"} {
			_, err := resolveRevID("RHEL-8-STIG", revisionStr)
			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr, revisionStr)
			assert.Equal(t, 400, httpErr.Code)
		}
	})
}

func TestStatusLabel(t *testing.T) {
	t.Run("state 0 and 1 both mean not reviewed", func(t *testing.T) {
		for _, stateID := range []int{0, 1} {
			status, err := statusLabel(stateID)
			assert.NoError(t, err)
			assert.Equal(t, "Not_Reviewed", status)
		}
	})

	t.Run("remaining states map to their labels", func(t *testing.T) {
		for stateID, expected := range map[int]string{
			2: "Not_Applicable",
			3: "NotAFinding",
			4: "Open",
		} {
			status, err := statusLabel(stateID)
			assert.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("out of range states are defects", func(t *testing.T) {
		for _, stateID := range []int{-1, 5, 42} {
			_, err := statusLabel(stateID)
			assert.Error(t, err)
		}
	})
}

func TestSortExportRows(t *testing.T) {
	rows := []dtos.ExportRow{
		{GroupID: "V-6"},
		{GroupID: "V-10"},
		{GroupID: "V-2"},
	}

	sortExportRows(rows)

	assert.Equal(t, []string{"V-2", "V-6", "V-10"},
		utils.Map(rows, func(r dtos.ExportRow) string { return r.GroupID }))
}

func TestBuildSIData(t *testing.T) {
	info := dtos.BenchmarkInfo{
		BenchmarkID:   "RHEL-8-STIG",
		Title:         shared.Ptr("Red Hat Enterprise Linux 8 STIG"),
		Version:       shared.Ptr("2"),
		Release:       shared.Ptr("1"),
		BenchmarkDate: shared.Ptr("2025-01-23"),
	}

	siData := buildSIData(info)

	names := utils.Map(siData, func(d dtos.CKLSIDatum) string { return d.Name })
	assert.Equal(t, []string{
		"version", "classification", "customname", "stigid", "description",
		"filename", "releaseinfo", "title", "uuid", "notice", "source",
	}, names)

	byName := map[string]*string{}
	for _, d := range siData {
		byName[d.Name] = d.Data
	}
	assert.Equal(t, "RHEL-8-STIG", *byName["stigid"])
	assert.Equal(t, "Release: 1 Benchmark Date: 2025-01-23", *byName["releaseinfo"])
	assert.Equal(t, "stig-manager-oss", *byName["filename"])
	// absent metadata keeps no data rather than a placeholder
	assert.Nil(t, byName["description"])
	assert.Nil(t, byName["classification"])
}

func TestBuildVuln(t *testing.T) {
	t.Run("fixed attribute order with control references appended", func(t *testing.T) {
		vuln, err := buildVuln(dtos.ExportRow{
			GroupID: "V-230222",
			RuleID:  "SV-230222r858734_rule",
			CCIs:    shared.Ptr("CCI-000366,CCI-001453"),
			StateID: 4,
		})
		require.NoError(t, err)

		assert.Equal(t, "Open", vuln.Status)
		assert.Equal(t, "Vuln_Num", vuln.StigData[0].Attribute)
		assert.Equal(t, "V-230222", vuln.StigData[0].Data)

		last := vuln.StigData[len(vuln.StigData)-2:]
		assert.Equal(t, "CCI_REF", last[0].Attribute)
		assert.Equal(t, "CCI-000366", last[0].Data)
		assert.Equal(t, "CCI_REF", last[1].Attribute)
		assert.Equal(t, "CCI-001453", last[1].Data)
	})

	t.Run("null rule fields still carry their value element", func(t *testing.T) {
		vuln, err := buildVuln(dtos.ExportRow{GroupID: "V-1", RuleID: "SV-1"})
		require.NoError(t, err)

		require.Len(t, vuln.StigData, 19)
		assert.Equal(t, "Severity", vuln.StigData[1].Attribute)
		assert.Empty(t, vuln.StigData[1].Data)
	})

	t.Run("comments join action and action comment", func(t *testing.T) {
		vuln, err := buildVuln(dtos.ExportRow{
			GroupID:       "V-1",
			RuleID:        "SV-1",
			StateID:       4,
			Action:        shared.Ptr("Remediate"),
			ActionComment: shared.Ptr("patch scheduled"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Remediate: patch scheduled", vuln.Comments)
	})

	t.Run("no action leaves comments empty", func(t *testing.T) {
		vuln, err := buildVuln(dtos.ExportRow{GroupID: "V-1", RuleID: "SV-1"})
		require.NoError(t, err)
		assert.Empty(t, vuln.Comments)
	})

	t.Run("invalid state id fails the build", func(t *testing.T) {
		_, err := buildVuln(dtos.ExportRow{GroupID: "V-1", RuleID: "SV-1", StateID: 9})
		assert.Error(t, err)
	})
}

func TestExportCKL(t *testing.T) {
	repository := &fakeChecklistRepository{
		asset: models.Asset{
			AssetID: 12,
			Name:    shared.Ptr("web01"),
			IP:      shared.Ptr("10.0.0.12"),
		},
		info: dtos.BenchmarkInfo{
			BenchmarkID: "RHEL-8-STIG",
			RevID:       "RHEL-8-STIG-2-1",
			Title:       shared.Ptr("Red Hat Enterprise Linux 8 STIG"),
		},
		rows: []dtos.ExportRow{
			{GroupID: "V-10", RuleID: "SV-10", StateID: 0},
			{GroupID: "V-2", RuleID: "SV-2", StateID: 4, StateComment: shared.Ptr(`found <script> & "quotes"`)},
		},
	}
	service := NewChecklistService(repository)

	document, err := service.ExportCKL(12, "RHEL-8-STIG", "latest")
	require.NoError(t, err)
	out := string(document)

	t.Run("latest resolves to the current revision key", func(t *testing.T) {
		assert.Equal(t, "RHEL-8-STIG-2-1", repository.exportRevID)
	})

	t.Run("asset descriptor block is filled", func(t *testing.T) {
		assert.Contains(t, out, "<HOST_NAME>web01</HOST_NAME>")
		assert.Contains(t, out, "<HOST_IP>10.0.0.12</HOST_IP>")
		assert.Contains(t, out, "<ASSET_TYPE>Computing</ASSET_TYPE>")
	})

	t.Run("elements of the fixed shape are emitted even without a value", func(t *testing.T) {
		assert.Contains(t, out, "<HOST_MAC></HOST_MAC>")
		assert.Contains(t, out, "<HOST_FQDN></HOST_FQDN>")
		assert.Contains(t, out, "<WEB_DB_SITE></WEB_DB_SITE>")
		assert.Contains(t, out, "<SEVERITY_OVERRIDE></SEVERITY_OVERRIDE>")
		assert.Contains(t, out, "<SEVERITY_JUSTIFICATION></SEVERITY_JUSTIFICATION>")
		// every attribute name must be paired with a value element
		assert.Equal(t, strings.Count(out, "<VULN_ATTRIBUTE>"), strings.Count(out, "<ATTRIBUTE_DATA>"))
	})

	t.Run("freeform text is escaped", func(t *testing.T) {
		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "found &lt;script&gt; &amp; &#34;quotes&#34;")
	})

	t.Run("rules are ordered numerically by group id", func(t *testing.T) {
		assert.Less(t, strings.Index(out, "<ATTRIBUTE_DATA>V-2</ATTRIBUTE_DATA>"),
			strings.Index(out, "<ATTRIBUTE_DATA>V-10</ATTRIBUTE_DATA>"))
	})

	t.Run("malformed revision fails before any fetch", func(t *testing.T) {
		_, err := service.ExportCKL(12, "RHEL-8-STIG", "2R1")
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Code)
	})
}
