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

package middlewares

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/openstig/stigman/shared"
)

// SessionMiddleware derives the opaque caller context from the identity
// headers set by the upstream auth proxy. Authentication itself happens
// outside this service; an unidentified request is rejected here.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			userID, err := strconv.ParseInt(ctx.Request().Header.Get("X-User-Id"), 10, 64)
			if err != nil {
				return echo.NewHTTPError(401, "missing or invalid user identity")
			}

			shared.SetUser(ctx, shared.User{
				ID:       userID,
				Username: ctx.Request().Header.Get("X-User-Name"),
				Role:     ctx.Request().Header.Get("X-User-Role"),
				Dept:     ctx.Request().Header.Get("X-User-Dept"),
				CanAdmin: ctx.Request().Header.Get("X-User-Can-Admin") == "true",
			})
			return next(ctx)
		}
	}
}
