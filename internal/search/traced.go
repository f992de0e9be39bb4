package search

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"fete/internal/party"
)

// tracerName identifies this instrumentation scope.
const tracerName = "fete/internal/search"

// TracedProvider decorates a provider with an OpenTelemetry span per
// search. With no tracer provider installed the spans are no-ops.
type TracedProvider struct {
	category party.Category
	inner    party.Provider
	tracer   trace.Tracer
}

// NewTracedProvider wraps inner with span instrumentation.
func NewTracedProvider(category party.Category, inner party.Provider) *TracedProvider {
	return &TracedProvider{
		category: category,
		inner:    inner,
		tracer:   otel.Tracer(tracerName),
	}
}

// Search records one span around the inner search.
func (p *TracedProvider) Search(ctx context.Context, query string, maxResults int) ([]*party.Item, error) {
	ctx, span := p.tracer.Start(ctx, "search."+p.category.String(),
		trace.WithAttributes(
			attribute.String("search.category", p.category.String()),
			attribute.String("search.query", query),
			attribute.Int("search.max_results", maxResults),
		),
	)
	defer span.End()

	items, err := p.inner.Search(ctx, query, maxResults)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("search.results", len(items)))
	return items, nil
}
