package naver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/donaldgifford/flower-finder/internal/metrics"
)

const (
	defaultShopURL = "https://openapi.naver.com/v1/search/shop.json"

	headerClientID     = "X-Naver-Client-Id"
	headerClientSecret = "X-Naver-Client-Secret" //nolint:gosec // header name, not a credential
)

// Credentials identify the application to the Naver Open API.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// SearchClient implements ShopClient using the Naver Shopping search API.
type SearchClient struct {
	creds       Credentials
	shopURL     string
	client      *http.Client
	rateLimiter *RateLimiter
}

// SearchOption configures the SearchClient.
type SearchOption func(*SearchClient)

// WithShopURL overrides the default shop.json endpoint.
func WithShopURL(u string) SearchOption {
	return func(c *SearchClient) {
		c.shopURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) SearchOption {
	return func(c *SearchClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and daily
// API call limits. When set, every Search() call goes through Wait() first.
func WithRateLimiter(r *RateLimiter) SearchOption {
	return func(c *SearchClient) {
		c.rateLimiter = r
	}
}

// NewSearchClient creates a new Naver Shopping search client.
func NewSearchClient(creds Credentials, opts ...SearchOption) *SearchClient {
	c := &SearchClient{
		creds:   creds,
		shopURL: defaultShopURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type shopAPIResponse struct {
	Total   int    `json:"total"`
	Start   int    `json:"start"`
	Display int    `json:"display"`
	Items   []Item `json:"items"`
}

// Search implements ShopClient.Search by querying shop.json.
func (c *SearchClient) Search(
	ctx context.Context,
	req SearchRequest,
) (*SearchResponse, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.NaverDailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.NaverDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	resp, err := c.do(ctx, req)
	if err != nil {
		metrics.NaverAPIErrorsTotal.Inc()
		return nil, err
	}
	return resp, nil
}

func (c *SearchClient) do(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.buildSearchURL(req),
		http.NoBody,
	)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	httpReq.Header.Set(headerClientID, c.creds.ClientID)
	httpReq.Header.Set(headerClientSecret, c.creds.ClientSecret)
	httpReq.Header.Set("Accept", "application/json")

	metrics.NaverAPICallsTotal.Inc()

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var apiResp shopAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	return &SearchResponse{
		Items:   apiResp.Items,
		Total:   apiResp.Total,
		Start:   apiResp.Start,
		Display: apiResp.Display,
	}, nil
}

func (c *SearchClient) buildSearchURL(req SearchRequest) string {
	params := url.Values{}
	params.Set("query", req.Query)

	display := req.Display
	if display <= 0 {
		display = 10
	}
	params.Set("display", strconv.Itoa(display))

	start := req.Start
	if start <= 0 {
		start = 1
	}
	params.Set("start", strconv.Itoa(start))

	if req.Sort != "" {
		params.Set("sort", req.Sort)
	}

	return c.shopURL + "?" + params.Encode()
}
