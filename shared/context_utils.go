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

func GetUser(ctx Context) User {
	return ctx.Get("user").(User)
}

func SetUser(ctx Context, user User) {
	ctx.Set("user", user)
}

// GetElevate reports whether the caller asked for elevated visibility.
func GetElevate(ctx Context) bool {
	return ctx.QueryParam("elevate") == "true"
}
