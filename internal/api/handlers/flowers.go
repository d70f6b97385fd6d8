package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/flower-finder/internal/api/middleware"
	"github.com/donaldgifford/flower-finder/internal/metrics"
	"github.com/donaldgifford/flower-finder/internal/store"
	domain "github.com/donaldgifford/flower-finder/pkg/types"
)

// FlowerHandler serves flower reference lookups.
type FlowerHandler struct {
	store store.Store
	log   *slog.Logger
}

// NewFlowerHandler creates a new FlowerHandler.
func NewFlowerHandler(s store.Store, log *slog.Logger) *FlowerHandler {
	return &FlowerHandler{store: s, log: log}
}

// FlowerInput holds the lookup query. An empty name matches every flower.
type FlowerInput struct {
	FlowerName string `query:"flowername" example:"rose" doc:"Flower name or fragment, matched case-insensitively against flowername and flowername_kr"`
}

// FlowerOutput is the response of the flower lookup.
type FlowerOutput struct {
	Body *domain.Flower
}

// GetFlower returns the first flower whose name or localized name contains
// the requested name, ignoring case.
func (h *FlowerHandler) GetFlower(ctx context.Context, in *FlowerInput) (*FlowerOutput, error) {
	f, err := h.store.FindFlower(ctx, in.FlowerName)
	switch {
	case errors.Is(err, store.ErrNotFound):
		metrics.FlowerLookupsTotal.WithLabelValues("not_found").Inc()
		return nil, huma.Error404NotFound(msgFlowerNotFound)
	case err != nil:
		metrics.FlowerLookupsTotal.WithLabelValues("error").Inc()
		h.log.ErrorContext(ctx, "flower lookup failed",
			"flowername", in.FlowerName,
			"request_id", middleware.RequestIDFromContext(ctx),
			"error", err,
		)
		return nil, huma.Error500InternalServerError(msgLookupFailed)
	}

	metrics.FlowerLookupsTotal.WithLabelValues("found").Inc()
	return &FlowerOutput{Body: f}, nil
}

// RegisterFlowerRoutes registers the flower lookup with the Huma API.
func RegisterFlowerRoutes(api huma.API, h *FlowerHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-flower",
		Method:      http.MethodGet,
		Path:        "/flowers",
		Summary:     "Look up a flower",
		Description: "Returns the first flower whose flowername or flowername_kr contains the query, ignoring case.",
		Tags:        []string{"flowers"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetFlower)
}
