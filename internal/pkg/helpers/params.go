package helpers

import (
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jmcabral/registra/internal/app/query"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// reserved are the query parameters consumed by ordering and pagination;
// everything else on a list request is treated as an exact-match filter.
var reserved = map[string]bool{
	"limit":     true,
	"offset":    true,
	"order_by":  true,
	"direction": true,
	"q":         true,
}

// ParseListParams extracts ordering/pagination parameters from a list
// request. Remaining query parameters become exact-match filters; the
// query core drops any that are not allow-listed.
func ParseListParams(c *gin.Context) (query.Params, query.Filters) {
	values := c.Request.URL.Query()
	p := parseParams(values)

	filters := query.Filters{}
	for key, vals := range values {
		if reserved[key] || len(vals) == 0 {
			continue
		}
		filters[key] = vals[0]
	}
	return p, filters
}

// ParseSearchParams extracts the free-text query and the ordering and
// pagination parameters from a search request.
func ParseSearchParams(c *gin.Context) (string, query.Params) {
	values := c.Request.URL.Query()
	return values.Get("q"), parseParams(values)
}

func parseParams(values url.Values) query.Params {
	p := query.Params{
		OrderBy:   values.Get("order_by"),
		Direction: values.Get("direction"),
		Limit:     DefaultLimit,
		Offset:    0,
	}

	if raw := values.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit >= 0 && limit <= MaxLimit {
			p.Limit = limit
		}
	}
	if raw := values.Get("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil && offset >= 0 {
			p.Offset = offset
		}
	}
	return p
}
