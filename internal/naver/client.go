// Package naver provides a Naver Shopping search API client abstracted behind
// interfaces for testability, plus the paginator that aggregates its pages.
package naver

import (
	"context"
	"encoding/json"
	"fmt"
)

// Item is a single shopping result. Its schema belongs to Naver; it is passed
// through to callers byte for byte.
type Item = json.RawMessage

// SearchRequest defines the parameters for one shop.json call.
type SearchRequest struct {
	Query   string
	Display int    // page size, 1-100
	Start   int    // 1-based offset, 1-1000
	Sort    string // "sim", "date", "asc", "dsc"
}

// SearchResponse holds one page of shopping results.
type SearchResponse struct {
	Items   []Item
	Total   int
	Start   int
	Display int
}

// ShopClient defines the interface for querying the shopping search API.
type ShopClient interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
}

// APIError is returned when the API answers with a non-200 status, including
// credential rejections (401) and quota errors (429).
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("naver API error (status %d): %s", e.StatusCode, e.Body)
}
