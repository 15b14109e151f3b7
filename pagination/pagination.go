package pagination

import (
	"strconv"

	restful "github.com/emicklei/go-restful/v3"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Params carries the normalized listing inputs shared by the paginated routes.
type Params struct {
	Page  int
	Limit int
	Query string
}

// FromRequest reads page/limit/query from the request, falling back to the
// defaults when a value is missing, unparseable, or not positive.
func FromRequest(req *restful.Request) Params {
	page, err := strconv.Atoi(req.QueryParameter("page"))
	if err != nil || page < 1 {
		page = DefaultPage
	}
	limit, err := strconv.Atoi(req.QueryParameter("limit"))
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	return Params{Page: page, Limit: limit, Query: req.QueryParameter("query")}
}

// Normalize coerces non-positive values to the defaults.
func Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return page, limit
}

// Offset is the number of rows to skip for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageCount returns ceil(count/limit).
func PageCount(count int64, limit int) int {
	if limit < 1 {
		return 0
	}
	return int((count + int64(limit) - 1) / int64(limit))
}
