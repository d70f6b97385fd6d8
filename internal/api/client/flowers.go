package client

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	domain "github.com/donaldgifford/flower-finder/pkg/types"
)

// FindFlower looks up the first flower matching name.
func (c *Client) FindFlower(ctx context.Context, name string) (*domain.Flower, error) {
	var f domain.Flower
	if err := c.get(ctx, "/flowers", url.Values{"flowername": {name}}, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Shop returns every aggregated shopping item for name, undecoded.
func (c *Client) Shop(ctx context.Context, name string) ([]json.RawMessage, error) {
	var resp struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := c.get(ctx, "/naver-shopping", url.Values{"flowername": {name}}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Quota is the upstream quota status reported by the server.
type Quota struct {
	DailyLimit int64     `json:"daily_limit"`
	DailyUsed  int64     `json:"daily_used"`
	Remaining  int64     `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
}

// GetQuota returns the server's Naver API quota status.
func (c *Client) GetQuota(ctx context.Context) (*Quota, error) {
	var q Quota
	if err := c.get(ctx, "/api/v1/quota", nil, &q); err != nil {
		return nil, err
	}
	return &q, nil
}
