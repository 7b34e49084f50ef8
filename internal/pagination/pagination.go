// Package pagination provides the page/limit query contract and the
// paginated response envelope shared by every list endpoint.
package pagination

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultPage is used when the query carries no page parameter.
	DefaultPage = 1
	// DefaultLimit is used when the query carries no limit parameter.
	DefaultLimit = 10
	// MaxLimit caps the page size a client can request.
	MaxLimit = 100
)

// Query is the parsed page/limit pair.
type Query struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// FromContext parses page and limit from the request query, clamping
// out-of-range values to the defaults rather than rejecting them.
func FromContext(c *gin.Context) Query {
	var q Query
	_ = c.ShouldBindQuery(&q)
	return q.normalize()
}

func (q Query) normalize() Query {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

// Offset returns the row offset for the query.
func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Meta describes the position of a page within the full result set.
type Meta struct {
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
}

// Links carries navigation URLs for the surrounding pages.
type Links struct {
	First    string `json:"first"`
	Last     string `json:"last"`
	Current  string `json:"current"`
	Next     string `json:"next"`
	Previous string `json:"previous"`
}

// Page is the envelope every list endpoint returns.
type Page[T any] struct {
	Data  []T   `json:"data"`
	Meta  Meta  `json:"meta"`
	Links Links `json:"links"`
}

// NewPage assembles the envelope from a page of items and the total row
// count. baseURL is the request path used to build navigation links.
func NewPage[T any](items []T, total int64, q Query, baseURL string) Page[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	if totalPages < 1 {
		totalPages = 1
	}

	next := q.Page
	if q.Page < totalPages {
		next = q.Page + 1
	}
	prev := q.Page
	if q.Page > 1 {
		prev = q.Page - 1
	}

	return Page[T]{
		Data: items,
		Meta: Meta{
			TotalItems:   total,
			ItemsPerPage: q.Limit,
			CurrentPage:  q.Page,
			TotalPages:   totalPages,
		},
		Links: Links{
			First:    pageLink(baseURL, 1, q.Limit),
			Last:     pageLink(baseURL, totalPages, q.Limit),
			Current:  pageLink(baseURL, q.Page, q.Limit),
			Next:     pageLink(baseURL, next, q.Limit),
			Previous: pageLink(baseURL, prev, q.Limit),
		},
	}
}

func pageLink(baseURL string, page, limit int) string {
	return fmt.Sprintf("%s?page=%d&limit=%d", baseURL, page, limit)
}
