// Package pagination extracts optional limit/offset query parameters.
// Listings are unpaginated by default; a zero limit means no cap.
package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const MaxLimit = 1000

// Params holds pagination parameters extracted from a request. The zero
// value returns everything.
type Params struct {
	Limit  int
	Offset int
}

// FromContext reads limit and offset from the request query string.
// Missing or malformed values fall back to the unpaginated zero value;
// limits above MaxLimit are clamped.
func FromContext(c echo.Context) Params {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 0 {
		limit = 0
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if offset < 0 {
		offset = 0
	}

	return Params{Limit: limit, Offset: offset}
}
