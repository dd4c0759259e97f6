package utils

import (
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

// ParsePagination reads ?page= and ?limit= and returns skip/limit values
// suitable for a Find. Limit is clamped to max.
func ParsePagination(r *http.Request, def, max int64) (skip, limit int64) {
	q := r.URL.Query()

	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	if page < 1 {
		page = 1
	}

	limit, _ = strconv.ParseInt(q.Get("limit"), 10, 64)
	if limit < 1 {
		limit = def
	}
	if limit > max {
		limit = max
	}

	return (page - 1) * limit, limit
}

// ParseSort maps a ?sort= value ("field" or "-field") onto a sort document,
// restricted to the allowed field set. Falls back to def.
func ParseSort(raw string, def bson.D, allowed map[string]bool) bson.D {
	if raw == "" {
		return def
	}
	dir := 1
	field := raw
	if raw[0] == '-' {
		dir = -1
		field = raw[1:]
	}
	if allowed != nil && !allowed[field] {
		return def
	}
	return bson.D{{Key: field, Value: dir}}
}
