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

package shared

// Scope is the row-visibility boundary a caller's role resolves to.
type Scope int

const (
	// ScopeOwn restricts results to assets the caller reviews. It is the
	// fail-closed default for unrecognized roles.
	ScopeOwn Scope = iota
	// ScopeDepartment restricts results to the caller's department.
	ScopeDepartment
	// ScopeAll applies no row restriction.
	ScopeAll
)

const (
	RoleStaff = "Staff"
	RoleIAO   = "IAO"
)

// User is the opaque caller context handed in by the auth layer.
type User struct {
	ID       int64
	Username string
	Role     string
	Dept     string
	CanAdmin bool
}

// ResolveScope maps a caller's role and elevation request to a visibility
// scope. Elevation only takes effect for callers allowed to elevate.
func ResolveScope(user User, elevate bool) Scope {
	switch {
	case user.Role == RoleStaff, elevate && user.CanAdmin:
		return ScopeAll
	case user.Role == RoleIAO:
		return ScopeDepartment
	default:
		return ScopeOwn
	}
}
