package ports

import (
	"context"

	"workorder/internal/core/domain/model/pricelist"
)

// PriceCatalog defines the lookup contract against the article price list.
// Lookups take the article key as the user typed it; implementations
// normalize it before matching.
type PriceCatalog interface {
	// Lookup retrieves the catalog entry for an article key.
	// Returns errs.ObjectNotFoundError when the key matches no article.
	Lookup(ctx context.Context, key string) (pricelist.Entry, error)

	// Search retrieves entries whose key starts with the given prefix,
	// capped by the catalog's result limit.
	Search(ctx context.Context, prefix string) ([]pricelist.Entry, error)
}
