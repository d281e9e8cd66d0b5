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

import "encoding/xml"

// The CKL document is the legacy checklist format consumed by external
// scanning tools. Tag names and their order are part of the external contract
// and must not change. Every element of the fixed shape is always emitted,
// empty when it has no value; only the SI_DATA block omits absent values.

type CKLDocument struct {
	XMLName xml.Name `xml:"CHECKLIST"`
	Asset   CKLAsset `xml:"ASSET"`
	Stigs   CKLStigs `xml:"STIGS"`
}

type CKLAsset struct {
	Role          string `xml:"ROLE"`
	AssetType     string `xml:"ASSET_TYPE"`
	HostName      string `xml:"HOST_NAME"`
	HostIP        string `xml:"HOST_IP"`
	HostMAC       string `xml:"HOST_MAC"`
	HostGUID      string `xml:"HOST_GUID"`
	HostFQDN      string `xml:"HOST_FQDN"`
	TechArea      string `xml:"TECH_AREA"`
	TargetKey     string `xml:"TARGET_KEY"`
	WebOrDatabase string `xml:"WEB_OR_DATABASE"`
	WebDBSite     string `xml:"WEB_DB_SITE"`
	WebDBInstance string `xml:"WEB_DB_INSTANCE"`
}

type CKLStigs struct {
	IStig CKLIStig `xml:"iSTIG"`
}

type CKLIStig struct {
	StigInfo CKLStigInfo `xml:"STIG_INFO"`
	Vulns    []CKLVuln   `xml:"VULN"`
}

type CKLStigInfo struct {
	SIData []CKLSIDatum `xml:"SI_DATA"`
}

// CKLSIDatum is one ordered key/value metadata pair of the STIG-info block.
// An absent value keeps no SID_DATA element rather than an empty placeholder.
type CKLSIDatum struct {
	Name string  `xml:"SID_NAME"`
	Data *string `xml:"SID_DATA,omitempty"`
}

type CKLVuln struct {
	StigData              []CKLStigDatum `xml:"STIG_DATA"`
	Status                string         `xml:"STATUS"`
	FindingDetails        string         `xml:"FINDING_DETAILS"`
	Comments              string         `xml:"COMMENTS"`
	SeverityOverride      string         `xml:"SEVERITY_OVERRIDE"`
	SeverityJustification string         `xml:"SEVERITY_JUSTIFICATION"`
}

// CKLStigDatum is one attribute/value pair of a VULN entry. The attribute
// names are fixed template literals, never caller data. A pair with no value
// still carries its ATTRIBUTE_DATA element.
type CKLStigDatum struct {
	Attribute string `xml:"VULN_ATTRIBUTE"`
	Data      string `xml:"ATTRIBUTE_DATA"`
}
