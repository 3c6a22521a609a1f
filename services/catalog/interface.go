package catalog

import (
	"context"

	"serveease/models"
)

// Repository serves the read-only catalog datasets. Both collections are
// fetched once and cached for the process lifetime; there is no
// invalidation path, a fresh process re-loads.
type Repository interface {
	Services(ctx context.Context) ([]models.ServiceListing, error)
	Faqs(ctx context.Context) ([]models.FaqEntry, error)
	GetByID(ctx context.Context, id string) (models.ServiceListing, error)
	Related(ctx context.Context, id string) ([]models.ServiceListing, error)
	Query(ctx context.Context, spec models.QuerySpec) (models.QueryResult, error)
}
