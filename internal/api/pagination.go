package api

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// ParsePagination normalizes the page and limit query parameters. Missing or
// unparseable values take the defaults; out-of-range values clamp rather
// than error, so after normalization page >= 1 and 1 <= limit <= 100 always
// hold.
func ParsePagination(c echo.Context) (page, limit int) {
	page = intQuery(c, "page", defaultPage)
	if page < 1 {
		page = 1
	}

	limit = intQuery(c, "limit", defaultLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func intQuery(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
