package naver

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/flower-finder/internal/metrics"
)

const (
	// DefaultPageSize is the largest display value shop.json accepts.
	DefaultPageSize = 100
	// DefaultResultCeiling is the largest start offset the loop will request.
	DefaultResultCeiling = 1000
	// DefaultSort orders results by similarity.
	DefaultSort = "sim"
)

// Reasons a successful pagination stopped.
const (
	StopNoMoreResults = "no_more_results"
	StopCeiling       = "ceiling"
)

const tracerName = "github.com/donaldgifford/flower-finder/internal/naver"

// Paginator walks shop.json result pages for one query.
type Paginator struct {
	client   ShopClient
	logger   *slog.Logger
	tracer   trace.Tracer
	pageSize int
	ceiling  int
	sort     string
}

// PaginatorOption configures the Paginator.
type PaginatorOption func(*Paginator)

// WithPageSize overrides the default page size. Non-positive values are
// ignored.
func WithPageSize(size int) PaginatorOption {
	return func(p *Paginator) {
		if size > 0 {
			p.pageSize = size
		}
	}
}

// WithResultCeiling overrides the default result ceiling. Non-positive
// values are ignored.
func WithResultCeiling(n int) PaginatorOption {
	return func(p *Paginator) {
		if n > 0 {
			p.ceiling = n
		}
	}
}

// WithSort overrides the default sort order.
func WithSort(sort string) PaginatorOption {
	return func(p *Paginator) {
		p.sort = sort
	}
}

// WithPaginatorLogger sets the logger.
func WithPaginatorLogger(l *slog.Logger) PaginatorOption {
	return func(p *Paginator) {
		p.logger = l
	}
}

// NewPaginator creates a new Paginator.
func NewPaginator(client ShopClient, opts ...PaginatorOption) *Paginator {
	p := &Paginator{
		client:   client,
		tracer:   otel.Tracer(tracerName),
		pageSize: DefaultPageSize,
		ceiling:  DefaultResultCeiling,
		sort:     DefaultSort,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Page is one non-empty page of results.
type Page struct {
	Number int // 1-based
	Start  int
	Items  []Item
}

// MaxPages returns the most upstream requests a single query can cost.
func (p *Paginator) MaxPages() int {
	if p.pageSize <= 0 || p.ceiling <= 0 {
		return 0
	}
	return (p.ceiling-1)/p.pageSize + 1
}

// Pages returns a lazy sequence of result pages. Each step issues one
// request. The sequence ends after an empty page, once the next start offset
// would exceed the ceiling, or right after yielding an error. Breaking out
// of the range loop stops further requests.
func (p *Paginator) Pages(ctx context.Context, query string) iter.Seq2[Page, error] {
	return func(yield func(Page, error) bool) {
		if p.pageSize <= 0 {
			return
		}

		number := 0
		for start := 1; start <= p.ceiling; start += p.pageSize {
			number++

			resp, err := p.client.Search(ctx, SearchRequest{
				Query:   query,
				Display: p.pageSize,
				Start:   start,
				Sort:    p.sort,
			})
			if err != nil {
				yield(
					Page{Number: number, Start: start},
					fmt.Errorf("searching page %d (start %d): %w", number, start, err),
				)
				return
			}

			if len(resp.Items) == 0 {
				return
			}

			if !yield(Page{Number: number, Start: start, Items: resp.Items}, nil) {
				return
			}
		}
	}
}

// PaginateResult holds the result of a complete pagination.
type PaginateResult struct {
	Items     []Item
	PagesUsed int    // upstream requests issued, including a final empty page
	StoppedAt string // StopNoMoreResults or StopCeiling
}

// Collect drains Pages into a single ordered slice. It is all or nothing:
// on any error the items gathered so far are dropped and only the error is
// returned.
func (p *Paginator) Collect(ctx context.Context, query string) (*PaginateResult, error) {
	ctx, span := p.tracer.Start(ctx, "naver.Collect", trace.WithAttributes(
		attribute.Int("naver.page_size", p.pageSize),
		attribute.Int("naver.result_ceiling", p.ceiling),
	))
	defer span.End()

	items := make([]Item, 0)
	pages := 0

	for page, err := range p.Pages(ctx, query) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "pagination failed")
			return nil, err
		}

		pages++
		items = append(items, page.Items...)

		if p.logger != nil {
			p.logger.DebugContext(ctx, "fetched page",
				"page", page.Number,
				"start", page.Start,
				"items", len(page.Items),
			)
		}
	}

	result := &PaginateResult{Items: items, PagesUsed: pages, StoppedAt: StopCeiling}
	if pages < p.MaxPages() {
		// The loop ended on an empty page, which cost one more request.
		result.PagesUsed++
		result.StoppedAt = StopNoMoreResults
	}

	metrics.AggregationPages.Observe(float64(result.PagesUsed))
	metrics.AggregationItems.Observe(float64(len(items)))

	span.SetAttributes(
		attribute.Int("naver.pages_used", result.PagesUsed),
		attribute.Int("naver.items", len(items)),
		attribute.String("naver.stopped_at", result.StoppedAt),
	)

	return result, nil
}
