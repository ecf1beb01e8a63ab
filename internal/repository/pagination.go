package repository

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Paging limits for GET / (the volunteer directory).
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var ErrInvalidPage = errors.New("invalid paging parameters")

type PageRequest struct {
	Page     int
	PageSize int
}

// Offset is the number of rows skipped for a normalized request.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type PageResult[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	Total      int64
	TotalPages int
}

// ParsePageQuery reads page and page_size from a query string. Absent values
// take the defaults; malformed or out of range values are rejected rather
// than clamped so clients notice.
func ParsePageQuery(q url.Values) (PageRequest, error) {
	req := PageRequest{Page: DefaultPage, PageSize: DefaultPageSize}
	if raw := strings.TrimSpace(q.Get("page")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return PageRequest{}, fmt.Errorf("%w: page must be a positive integer", ErrInvalidPage)
		}
		req.Page = v
	}
	if raw := strings.TrimSpace(q.Get("page_size")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return PageRequest{}, fmt.Errorf("%w: page_size must be a positive integer", ErrInvalidPage)
		}
		if v > MaxPageSize {
			return PageRequest{}, fmt.Errorf("%w: page_size must be <= %d", ErrInvalidPage, MaxPageSize)
		}
		req.PageSize = v
	}
	return req, nil
}

// normalizePageRequest clamps requests built in code, where a query string
// was never parsed.
func normalizePageRequest(in PageRequest) PageRequest {
	out := in
	if out.Page < 1 {
		out.Page = DefaultPage
	}
	switch {
	case out.PageSize < 1:
		out.PageSize = DefaultPageSize
	case out.PageSize > MaxPageSize:
		out.PageSize = MaxPageSize
	}
	return out
}

func newPageResult[T any](req PageRequest, items []T, total int64) PageResult[T] {
	if items == nil {
		items = []T{}
	}
	res := PageResult[T]{Items: items, Page: req.Page, PageSize: req.PageSize, Total: total}
	if total > 0 && req.PageSize > 0 {
		res.TotalPages = int((total + int64(req.PageSize) - 1) / int64(req.PageSize))
	}
	return res
}
