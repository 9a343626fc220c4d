package utils

import (
	"net/http"
	"strconv"
)

// QueryOptions captures the meal listing query string. Absent numeric
// bounds default to the [0, 500] price window; pagination defaults to
// page 1, ten per page.
type QueryOptions struct {
	Page     int
	Limit    int
	Search   string
	Category string
	MinPrice float64
	MaxPrice float64
	Upcoming *bool
}

func ParseQueryOptions(r *http.Request) QueryOptions {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = 10
	}

	minPrice := 0.0
	if s := q.Get("minPrice"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			minPrice = v
		}
	}

	maxPrice := 500.0
	if s := q.Get("maxPrice"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			maxPrice = v
		}
	}

	var upcoming *bool
	if s := q.Get("upcoming"); s != "" {
		val := s == "true"
		upcoming = &val
	}

	return QueryOptions{
		Page:     page,
		Limit:    limit,
		Search:   q.Get("search"),
		Category: q.Get("category"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Upcoming: upcoming,
	}
}

// Skip returns the offset for the current page.
func (o QueryOptions) Skip() int64 {
	return int64((o.Page - 1) * o.Limit)
}
