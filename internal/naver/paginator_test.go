package naver_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/flower-finder/internal/naver"
	"github.com/donaldgifford/flower-finder/internal/naver/mocks"
)

// pageOf builds n items tagged with the start offset so ordering can be checked.
func pageOf(start, n int) []naver.Item {
	items := make([]naver.Item, n)
	for i := range n {
		items[i] = naver.Item(fmt.Sprintf(`{"productId":"%d"}`, start+i))
	}
	return items
}

func productID(t *testing.T, item naver.Item) string {
	t.Helper()
	var v struct {
		ProductID string `json:"productId"`
	}
	require.NoError(t, json.Unmarshal(item, &v))
	return v.ProductID
}

// upstream serves fullPages pages of 100 items, then empty pages.
func upstream(fullPages int) func(context.Context, naver.SearchRequest) (*naver.SearchResponse, error) {
	return func(_ context.Context, r naver.SearchRequest) (*naver.SearchResponse, error) {
		page := (r.Start-1)/r.Display + 1
		if page > fullPages {
			return &naver.SearchResponse{Items: []naver.Item{}}, nil
		}
		return &naver.SearchResponse{Items: pageOf(r.Start, r.Display), Total: fullPages * r.Display}, nil
	}
}

func TestPaginator_Collect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		setupMock   func(*mocks.MockShopClient)
		wantItems   int
		wantPages   int
		wantStopped string
		wantErr     string
	}{
		{
			name: "three full pages then empty",
			setupMock: func(m *mocks.MockShopClient) {
				m.EXPECT().Search(mock.Anything, mock.Anything).
					RunAndReturn(upstream(3)).
					Times(4)
			},
			wantItems:   300,
			wantPages:   4,
			wantStopped: naver.StopNoMoreResults,
		},
		{
			name: "stops at result ceiling",
			setupMock: func(m *mocks.MockShopClient) {
				m.EXPECT().Search(mock.Anything, mock.Anything).
					RunAndReturn(upstream(50)).
					Times(10)
			},
			wantItems:   1000,
			wantPages:   10,
			wantStopped: naver.StopCeiling,
		},
		{
			name: "first page empty",
			setupMock: func(m *mocks.MockShopClient) {
				m.EXPECT().Search(mock.Anything, mock.Anything).
					Return(&naver.SearchResponse{}, nil).
					Once()
			},
			wantItems:   0,
			wantPages:   1,
			wantStopped: naver.StopNoMoreResults,
		},
		{
			name: "short page is kept and the next page ends the loop",
			setupMock: func(m *mocks.MockShopClient) {
				m.EXPECT().Search(mock.Anything, mock.MatchedBy(func(r naver.SearchRequest) bool {
					return r.Start == 1
				})).Return(&naver.SearchResponse{Items: pageOf(1, 42)}, nil).Once()
				m.EXPECT().Search(mock.Anything, mock.MatchedBy(func(r naver.SearchRequest) bool {
					return r.Start == 101
				})).Return(&naver.SearchResponse{Items: nil}, nil).Once()
			},
			wantItems:   42,
			wantPages:   2,
			wantStopped: naver.StopNoMoreResults,
		},
		{
			name: "error on second page discards first page",
			setupMock: func(m *mocks.MockShopClient) {
				m.EXPECT().Search(mock.Anything, mock.MatchedBy(func(r naver.SearchRequest) bool {
					return r.Start == 1
				})).Return(&naver.SearchResponse{Items: pageOf(1, 100)}, nil).Once()
				m.EXPECT().Search(mock.Anything, mock.MatchedBy(func(r naver.SearchRequest) bool {
					return r.Start == 101
				})).Return(nil, &naver.APIError{StatusCode: 500, Body: "boom"}).Once()
			},
			wantErr: "searching page 2 (start 101)",
		},
		{
			name: "error on first page",
			setupMock: func(m *mocks.MockShopClient) {
				m.EXPECT().Search(mock.Anything, mock.Anything).
					Return(nil, errors.New("connection refused")).
					Once()
			},
			wantErr: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewMockShopClient(t)
			tt.setupMock(client)

			p := naver.NewPaginator(client)
			result, err := p.Collect(context.Background(), "rose")

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result.Items)
			assert.Len(t, result.Items, tt.wantItems)
			assert.Equal(t, tt.wantPages, result.PagesUsed)
			assert.Equal(t, tt.wantStopped, result.StoppedAt)
		})
	}
}

func TestPaginator_Collect_PreservesArrivalOrder(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockShopClient(t)
	client.EXPECT().Search(mock.Anything, mock.Anything).RunAndReturn(upstream(3))

	result, err := naver.NewPaginator(client).Collect(context.Background(), "rose")
	require.NoError(t, err)
	require.Len(t, result.Items, 300)

	for i, item := range result.Items {
		assert.Equal(t, fmt.Sprint(i+1), productID(t, item))
	}
}

func TestPaginator_Collect_RequestParameters(t *testing.T) {
	t.Parallel()

	var (
		mu     sync.Mutex
		starts []int
	)

	client := mocks.NewMockShopClient(t)
	client.EXPECT().Search(mock.Anything, mock.MatchedBy(func(r naver.SearchRequest) bool {
		return r.Query == "장미" && r.Display == 100 && r.Sort == "sim"
	})).RunAndReturn(func(ctx context.Context, r naver.SearchRequest) (*naver.SearchResponse, error) {
		mu.Lock()
		starts = append(starts, r.Start)
		mu.Unlock()
		return upstream(100)(ctx, r)
	})

	_, err := naver.NewPaginator(client).Collect(context.Background(), "장미")
	require.NoError(t, err)

	assert.Equal(t, []int{1, 101, 201, 301, 401, 501, 601, 701, 801, 901}, starts)
}

func TestPaginator_Options(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockShopClient(t)
	client.EXPECT().Search(mock.Anything, mock.MatchedBy(func(r naver.SearchRequest) bool {
		return r.Display == 20 && r.Sort == "date"
	})).RunAndReturn(upstream(100)).Times(3)

	p := naver.NewPaginator(client,
		naver.WithPageSize(20),
		naver.WithResultCeiling(50),
		naver.WithSort("date"),
	)

	result, err := p.Collect(context.Background(), "tulip")
	require.NoError(t, err)
	assert.Len(t, result.Items, 60)
	assert.Equal(t, 3, result.PagesUsed)
	assert.Equal(t, naver.StopCeiling, result.StoppedAt)
}

func TestPaginator_Pages_BreakStopsRequests(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockShopClient(t)
	client.EXPECT().Search(mock.Anything, mock.Anything).RunAndReturn(upstream(10)).Once()

	p := naver.NewPaginator(client)

	var seen []naver.Page
	for page, err := range p.Pages(context.Background(), "lily") {
		require.NoError(t, err)
		seen = append(seen, page)
		break
	}

	require.Len(t, seen, 1)
	assert.Equal(t, 1, seen[0].Number)
	assert.Equal(t, 1, seen[0].Start)
	assert.Len(t, seen[0].Items, 100)
}

func TestPaginator_Pages_StopsAfterError(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockShopClient(t)
	client.EXPECT().Search(mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout")).
		Once()

	var errs int
	for _, err := range naver.NewPaginator(client).Pages(context.Background(), "lily") {
		require.Error(t, err)
		errs++
	}
	assert.Equal(t, 1, errs)
}

func TestPaginator_MaxPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pageSize int
		ceiling  int
		want     int
	}{
		{name: "defaults", pageSize: 100, ceiling: 1000, want: 10},
		{name: "uneven ceiling", pageSize: 100, ceiling: 950, want: 10},
		{name: "ceiling equals page size", pageSize: 100, ceiling: 100, want: 1},
		{name: "small pages", pageSize: 20, ceiling: 50, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := naver.NewPaginator(nil,
				naver.WithPageSize(tt.pageSize),
				naver.WithResultCeiling(tt.ceiling),
			)
			assert.Equal(t, tt.want, p.MaxPages())
		})
	}
}

func TestPaginator_NonPositiveOptionsKeepDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []naver.PaginatorOption
	}{
		{name: "zero page size", opts: []naver.PaginatorOption{naver.WithPageSize(0)}},
		{name: "negative page size", opts: []naver.PaginatorOption{naver.WithPageSize(-5)}},
		{name: "zero ceiling", opts: []naver.PaginatorOption{naver.WithResultCeiling(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewMockShopClient(t)
			client.EXPECT().Search(mock.Anything, mock.MatchedBy(func(r naver.SearchRequest) bool {
				return r.Display == naver.DefaultPageSize
			})).RunAndReturn(upstream(2)).Times(3)

			p := naver.NewPaginator(client, tt.opts...)
			assert.Equal(t, 10, p.MaxPages())

			result, err := p.Collect(context.Background(), "rose")
			require.NoError(t, err)
			assert.Len(t, result.Items, 200)
			assert.Equal(t, 3, result.PagesUsed)
		})
	}
}
