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
	"encoding/xml"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/openstig/stigman/database/models"
	"github.com/openstig/stigman/dtos"
	"github.com/openstig/stigman/shared"
)

// revisionPattern matches explicit revision selectors like V2R1 or V4R1.3.
var revisionPattern = regexp.MustCompile(`^V(\d+)R(\d+(\.\d+)?)$`)

// statusLabels maps review state ids to CKL status strings. Index 0 and 1
// both mean the rule has not been reviewed.
var statusLabels = []string{"Not_Reviewed", "Not_Reviewed", "Not_Applicable", "NotAFinding", "Open"}

type checklistService struct {
	checklistRepository shared.ChecklistRepository
}

func NewChecklistService(checklistRepository shared.ChecklistRepository) *checklistService {
	return &checklistService{
		checklistRepository: checklistRepository,
	}
}

// resolveRevID turns a revision selector into the revision key, or empty for
// "latest". A malformed selector is a client-input error.
func resolveRevID(benchmarkID string, revisionStr string) (string, error) {
	if revisionStr == "latest" {
		return "", nil
	}
	m := revisionPattern.FindStringSubmatch(revisionStr)
	if m == nil {
		return "", echo.NewHTTPError(400, "revision must be 'latest' or match V<version>R<release>")
	}
	return fmt.Sprintf("%s-%s-%s", benchmarkID, m[1], m[2]), nil
}

// Rows returns the structured (non-document) checklist result.
func (s *checklistService) Rows(assetID int64, benchmarkID string, revisionStr string) ([]dtos.ChecklistRow, error) {
	revID, err := resolveRevID(benchmarkID, revisionStr)
	if err != nil {
		return nil, err
	}
	return s.checklistRepository.Rows(assetID, benchmarkID, revID)
}

// ExportCKL builds the legacy checklist document for one asset and benchmark
// revision and serializes it as XML.
func (s *checklistService) ExportCKL(assetID int64, benchmarkID string, revisionStr string) ([]byte, error) {
	revID, err := resolveRevID(benchmarkID, revisionStr)
	if err != nil {
		return nil, err
	}

	info, err := s.checklistRepository.BenchmarkInfo(benchmarkID, revID)
	if err != nil {
		return nil, err
	}
	if revID == "" {
		revID = info.RevID
	}

	asset, err := s.checklistRepository.Asset(assetID)
	if err != nil {
		return nil, err
	}

	rows, err := s.checklistRepository.ExportRows(assetID, revID)
	if err != nil {
		return nil, err
	}

	doc, err := buildCKLDocument(asset, info, rows)
	if err != nil {
		return nil, err
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

func buildCKLDocument(asset models.Asset, info dtos.BenchmarkInfo, rows []dtos.ExportRow) (*dtos.CKLDocument, error) {
	doc := &dtos.CKLDocument{
		Asset: dtos.CKLAsset{
			Role:          "None",
			AssetType:     "Computing",
			HostName:      derefOr(asset.Name, ""),
			HostIP:        derefOr(asset.IP, ""),
			TargetKey:     "2777",
			WebOrDatabase: "false",
		},
	}
	doc.Stigs.IStig.StigInfo.SIData = buildSIData(info)

	sortExportRows(rows)
	vulns := make([]dtos.CKLVuln, 0, len(rows))
	for _, row := range rows {
		vuln, err := buildVuln(row)
		if err != nil {
			return nil, err
		}
		vulns = append(vulns, vuln)
	}
	doc.Stigs.IStig.Vulns = vulns
	return doc, nil
}

// buildSIData fills the fixed STIG-info template. Keys without a value keep
// no SID_DATA element.
func buildSIData(info dtos.BenchmarkInfo) []dtos.CKLSIDatum {
	var releaseInfo *string
	if info.Release != nil {
		releaseInfo = shared.Ptr(fmt.Sprintf("Release: %s Benchmark Date: %s",
			*info.Release, derefOr(info.BenchmarkDate, "")))
	}

	return []dtos.CKLSIDatum{
		{Name: "version", Data: info.Version},
		{Name: "classification"},
		{Name: "customname"},
		{Name: "stigid", Data: shared.Ptr(info.BenchmarkID)},
		{Name: "description", Data: info.Description},
		{Name: "filename", Data: shared.Ptr("stig-manager-oss")},
		{Name: "releaseinfo", Data: releaseInfo},
		{Name: "title", Data: info.Title},
		{Name: "uuid", Data: shared.Ptr(uuid.NewString())},
		{Name: "notice", Data: shared.Ptr("terms-of-use")},
		{Name: "source"},
	}
}

func buildVuln(row dtos.ExportRow) (dtos.CKLVuln, error) {
	status, err := statusLabel(row.StateID)
	if err != nil {
		return dtos.CKLVuln{}, err
	}

	// the attribute order is part of the external contract
	stigData := []dtos.CKLStigDatum{
		{Attribute: "Vuln_Num", Data: row.GroupID},
		{Attribute: "Severity", Data: derefOr(row.Severity, "")},
		{Attribute: "Group_Title", Data: derefOr(row.GroupTitle, "")},
		{Attribute: "Rule_ID", Data: row.RuleID},
		{Attribute: "Rule_Ver", Data: derefOr(row.Version, "")},
		{Attribute: "Rule_Title", Data: derefOr(row.RuleTitle, "")},
		{Attribute: "Vuln_Discuss", Data: derefOr(row.VulnDiscussion, "")},
		{Attribute: "IA_Controls", Data: derefOr(row.IAControls, "")},
		{Attribute: "Check_Content", Data: derefOr(row.CheckContent, "")},
		{Attribute: "Fix_Text", Data: derefOr(row.FixText, "")},
		{Attribute: "False_Positives", Data: derefOr(row.FalsePositives, "")},
		{Attribute: "False_Negatives", Data: derefOr(row.FalseNegatives, "")},
		{Attribute: "Documentable", Data: derefOr(row.Documentable, "")},
		{Attribute: "Mitigations", Data: derefOr(row.Mitigations, "")},
		{Attribute: "Potential_Impact", Data: derefOr(row.PotentialImpacts, "")},
		{Attribute: "Third_Party_Tools", Data: derefOr(row.ThirdPartyTools, "")},
		{Attribute: "Mitigation_Control", Data: derefOr(row.MitigationControl, "")},
		{Attribute: "Responsibility", Data: derefOr(row.Responsibility, "")},
		{Attribute: "Security_Override_Guidance", Data: derefOr(row.SecurityOverrideGuidance, "")},
	}

	if row.CCIs != nil && *row.CCIs != "" {
		for _, cci := range strings.Split(*row.CCIs, ",") {
			stigData = append(stigData, dtos.CKLStigDatum{
				Attribute: "CCI_REF",
				Data:      cci,
			})
		}
	}

	var comments string
	if row.Action != nil {
		comments = fmt.Sprintf("%s: %s", *row.Action, derefOr(row.ActionComment, ""))
	}

	return dtos.CKLVuln{
		StigData:       stigData,
		Status:         status,
		FindingDetails: derefOr(row.StateComment, ""),
		Comments:       comments,
	}, nil
}

// statusLabel maps the 5-way review state code. A state id outside 0-4 is a
// defect in the stored data, not a valid input.
func statusLabel(stateID int) (string, error) {
	if stateID < 0 || stateID >= len(statusLabels) {
		return "", fmt.Errorf("invalid review state id %d", stateID)
	}
	return statusLabels[stateID], nil
}

// sortExportRows orders rules by group id with the numeric suffix of
// V-<number> ids compared numerically, so V-2 sorts before V-10.
func sortExportRows(rows []dtos.ExportRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return naturalGroupLess(rows[i].GroupID, rows[j].GroupID)
	})
}

func naturalGroupLess(a, b string) bool {
	prefixA, numA, okA := splitGroupID(a)
	prefixB, numB, okB := splitGroupID(b)
	if okA && okB && prefixA == prefixB {
		return numA < numB
	}
	return a < b
}

func splitGroupID(groupID string) (prefix string, num int, ok bool) {
	idx := strings.LastIndexByte(groupID, '-')
	if idx < 0 {
		return "", 0, false
	}
	n, err := strconv.Atoi(groupID[idx+1:])
	if err != nil {
		return "", 0, false
	}
	return groupID[:idx], n, true
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
