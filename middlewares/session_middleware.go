// Copyright (C) 2026 The GovGoose Authors
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
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/govgoose/govgoose/shared"
	"github.com/labstack/echo/v4"
)

const (
	sessionCookieName  = "ory_kratos_session"
	sessionTokenHeader = "X-Session-Token"
)

func getCookie(name string, cookies []*http.Cookie) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func cookieAuth(ctx context.Context, oryAPIClient shared.AdminClient, oryKratosSessionCookie string) (string, error) {
	unescaped, err := url.QueryUnescape(oryKratosSessionCookie)
	if err != nil {
		return "", err
	}

	identity, err := oryAPIClient.GetIdentityFromCookie(ctx, unescaped)
	if err != nil {
		return "", err
	}

	return identity.Id, nil
}

// SessionMiddleware resolves the ory session from the kratos cookie or the session token header.
// Requests without a valid identity continue with shared.NoSession.
func SessionMiddleware(oryAPIClient shared.AdminClient) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if oryKratosSessionCookie := getCookie(sessionCookieName, ctx.Cookies()); oryKratosSessionCookie != nil {
				userID, err := cookieAuth(ctx.Request().Context(), oryAPIClient, oryKratosSessionCookie.String())
				if err != nil {
					slog.Warn("could not get user ID from cookie", "err", err)
					shared.SetSession(ctx, shared.NoSession)
					return next(ctx)
				}
				shared.SetSession(ctx, shared.NewSession(userID))
				return next(ctx)
			}

			if token := ctx.Request().Header.Get(sessionTokenHeader); token != "" {
				identity, err := oryAPIClient.GetIdentityFromToken(ctx.Request().Context(), token)
				if err != nil {
					slog.Warn("could not get user ID from session token", "err", err)
					shared.SetSession(ctx, shared.NoSession)
					return next(ctx)
				}
				shared.SetSession(ctx, shared.NewSession(identity.Id))
				return next(ctx)
			}

			shared.SetSession(ctx, shared.NoSession)
			return next(ctx)
		}
	}
}

// RequireSession rejects requests that carry no authenticated identity.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !shared.IsAuthenticated(ctx) {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}
			return next(ctx)
		}
	}
}
