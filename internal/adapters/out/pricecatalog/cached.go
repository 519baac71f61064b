package pricecatalog

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"workorder/internal/core/domain/model/pricelist"
	"workorder/internal/core/ports"
	"workorder/internal/pkg/errs"
)

// source is the part of the catalog the cache needs: per-key lookups plus a
// full dump for warming.
type source interface {
	ports.PriceCatalog
	All(ctx context.Context) ([]pricelist.Entry, error)
}

// CachedCatalog serves lookups from an in-memory copy of the price list,
// keyed by normalized article number. Keys the cache does not hold fall
// through to the catalog service, so the cache being stale or cold never
// turns a known article into a miss. Reload swaps in a fresh copy.
type CachedCatalog struct {
	source source
	logger *slog.Logger

	mu      sync.RWMutex
	entries map[string]pricelist.Entry
}

// NewCachedCatalog wraps a catalog client with the in-memory cache. The
// cache starts cold; call Reload to warm it.
func NewCachedCatalog(client *Client, logger *slog.Logger) (*CachedCatalog, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CachedCatalog{
		source:  client,
		logger:  logger.With("component", "price_catalog_cache"),
		entries: make(map[string]pricelist.Entry),
	}, nil
}

// Lookup returns the entry for an article key, from the cache when
// possible. A cache miss goes to the catalog service and, on success, is
// remembered.
func (c *CachedCatalog) Lookup(ctx context.Context, key string) (pricelist.Entry, error) {
	normalized := pricelist.NormalizeKey(key)
	if normalized == "" {
		return pricelist.Entry{}, errs.NewValueIsRequiredError("key")
	}

	c.mu.RLock()
	entry, ok := c.entries[normalized]
	c.mu.RUnlock()
	if ok {
		return entry, nil
	}

	entry, err := c.source.Lookup(ctx, normalized)
	if err != nil {
		return pricelist.Entry{}, err
	}

	c.mu.Lock()
	c.entries[entry.Key()] = entry
	c.mu.Unlock()

	return entry, nil
}

// Search returns cached entries whose key starts with the prefix, sorted by
// key and capped at SearchLimit. A blank prefix matches nothing. When the
// cache is cold the search falls through to the catalog service.
func (c *CachedCatalog) Search(ctx context.Context, prefix string) ([]pricelist.Entry, error) {
	normalized := pricelist.NormalizeKey(prefix)
	if normalized == "" {
		return nil, nil
	}

	c.mu.RLock()
	if len(c.entries) == 0 {
		c.mu.RUnlock()
		return c.source.Search(ctx, normalized)
	}

	matches := make([]pricelist.Entry, 0, SearchLimit)
	for key, entry := range c.entries {
		if strings.HasPrefix(key, normalized) {
			matches = append(matches, entry)
		}
	}
	c.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Key() < matches[j].Key()
	})
	if len(matches) > SearchLimit {
		matches = matches[:SearchLimit]
	}

	return matches, nil
}

// Reload fetches the full price list and swaps it in. On failure the
// previous copy stays in service.
func (c *CachedCatalog) Reload(ctx context.Context) error {
	entries, err := c.source.All(ctx)
	if err != nil {
		return err
	}

	fresh := make(map[string]pricelist.Entry, len(entries))
	for _, entry := range entries {
		fresh[entry.Key()] = entry
	}

	c.mu.Lock()
	c.entries = fresh
	c.mu.Unlock()

	c.logger.Info("price list reloaded", "entries", len(fresh))
	return nil
}

// Size returns the number of cached entries.
func (c *CachedCatalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// IsNotFound reports whether an error from the catalog means the key does
// not exist, as opposed to the catalog being unreachable.
func IsNotFound(err error) bool {
	var notFound *errs.ObjectNotFoundError
	return errors.As(err, &notFound)
}
