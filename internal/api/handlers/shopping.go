package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/flower-finder/internal/api/middleware"
	"github.com/donaldgifford/flower-finder/internal/naver"
)

// ProductCollector gathers every shopping result for a query.
type ProductCollector interface {
	Collect(ctx context.Context, query string) (*naver.PaginateResult, error)
}

// ShoppingHandler aggregates Naver Shopping results for a flower name.
type ShoppingHandler struct {
	collector ProductCollector
	log       *slog.Logger
}

// NewShoppingHandler creates a new ShoppingHandler.
func NewShoppingHandler(c ProductCollector, log *slog.Logger) *ShoppingHandler {
	return &ShoppingHandler{collector: c, log: log}
}

// ShoppingInput holds the search keyword. Presence is checked by the
// handler so a missing name is a 400 with the API's error body.
type ShoppingInput struct {
	FlowerName string `query:"flowername" example:"장미" doc:"Search keyword"`
}

// ShoppingBody is the aggregated product listing. Items are forwarded
// exactly as the upstream API returned them.
type ShoppingBody struct {
	Items []naver.Item `json:"items"`
}

// Schema describes items as opaque objects instead of the byte strings
// huma would infer from json.RawMessage.
func (ShoppingBody) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type:     huma.TypeObject,
		Required: []string{"items"},
		Properties: map[string]*huma.Schema{
			"items": {
				Type:        huma.TypeArray,
				Description: "Naver Shopping items in upstream order, unmodified",
				Items: &huma.Schema{
					Type:                 huma.TypeObject,
					AdditionalProperties: true,
				},
			},
		},
	}
}

// ShoppingOutput is the response of the shopping aggregation.
type ShoppingOutput struct {
	Body ShoppingBody
}

// Search returns all product listings for the keyword, paging through the
// upstream API until it runs dry or the result ceiling is reached. Partial
// results are never returned.
func (h *ShoppingHandler) Search(ctx context.Context, in *ShoppingInput) (*ShoppingOutput, error) {
	if in.FlowerName == "" {
		return nil, huma.Error400BadRequest(msgNameRequired)
	}

	result, err := h.collector.Collect(ctx, in.FlowerName)
	if err != nil {
		h.log.ErrorContext(ctx, "naver shopping aggregation failed",
			"flowername", in.FlowerName,
			"request_id", middleware.RequestIDFromContext(ctx),
			"error", err,
		)
		return nil, huma.Error500InternalServerError(msgShoppingFailed)
	}

	h.log.InfoContext(ctx, "naver shopping aggregation complete",
		"flowername", in.FlowerName,
		"items", len(result.Items),
		"pages", result.PagesUsed,
		"stopped_at", result.StoppedAt,
		"request_id", middleware.RequestIDFromContext(ctx),
	)

	items := result.Items
	if items == nil {
		items = []naver.Item{}
	}
	return &ShoppingOutput{Body: ShoppingBody{Items: items}}, nil
}

// RegisterShoppingRoutes registers the shopping aggregation with the Huma API.
func RegisterShoppingRoutes(api huma.API, h *ShoppingHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-naver-shopping",
		Method:      http.MethodGet,
		Path:        "/naver-shopping",
		Summary:     "Aggregate Naver Shopping listings",
		Description: "Pages through the Naver Shopping search API, 100 items per request up to 1000 items, and returns every item in order.",
		Tags:        []string{"naver"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.Search)
}
