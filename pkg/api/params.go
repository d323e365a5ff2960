package api

import (
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// intQueryParam parses an integer query parameter, returning def when the
// parameter is absent or malformed.
func intQueryParam(c *echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
