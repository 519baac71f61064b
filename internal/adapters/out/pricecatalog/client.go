// Package pricecatalog provides the adapters against the article price list:
// an HTTP client for the catalog service and a caching layer that keeps
// lookups off the wire while the user types.
package pricecatalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"workorder/internal/core/domain/model/pricelist"
	"workorder/internal/pkg/errs"
)

// SearchLimit caps the number of entries a prefix search returns.
const SearchLimit = 20

// Client talks to the price catalog service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a catalog client for the given base URL. The timeout
// bounds every request; zero falls back to 5 seconds.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// entryDTO is the JSON shape the catalog service speaks. The article number
// travels as emNr for compatibility with the upstream price list.
type entryDTO struct {
	EmNr  string  `json:"emNr"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Unit  string  `json:"unit"`
}

func (dto entryDTO) toDomain() (pricelist.Entry, error) {
	return pricelist.NewEntry(dto.EmNr, dto.Name, dto.Price, dto.Unit)
}

// Lookup retrieves the entry for an article key. The key is normalized
// before it goes on the wire. Returns errs.ObjectNotFoundError when the
// catalog does not know the key.
func (c *Client) Lookup(ctx context.Context, key string) (pricelist.Entry, error) {
	normalized := pricelist.NormalizeKey(key)
	if normalized == "" {
		return pricelist.Entry{}, errs.NewValueIsRequiredError("key")
	}

	endpoint := fmt.Sprintf("%s/api/pricelist/%s", c.baseURL, url.PathEscape(normalized))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return pricelist.Entry{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return pricelist.Entry{}, fmt.Errorf("price catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return pricelist.Entry{}, errs.NewObjectNotFoundError("key", normalized)
	}
	if resp.StatusCode != http.StatusOK {
		return pricelist.Entry{}, fmt.Errorf("price catalog returned status %d", resp.StatusCode)
	}

	var dto entryDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return pricelist.Entry{}, fmt.Errorf("price catalog response: %w", err)
	}

	return dto.toDomain()
}

// Search retrieves entries whose key starts with the given prefix, capped
// at SearchLimit.
func (c *Client) Search(ctx context.Context, prefix string) ([]pricelist.Entry, error) {
	endpoint := fmt.Sprintf("%s/api/pricelist/search?prefix=%s&limit=%d",
		c.baseURL, url.QueryEscape(pricelist.NormalizeKey(prefix)), SearchLimit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("price catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("price catalog returned status %d", resp.StatusCode)
	}

	var dtos []entryDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("price catalog response: %w", err)
	}

	entries := make([]pricelist.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if len(entries) > SearchLimit {
		entries = entries[:SearchLimit]
	}

	return entries, nil
}

// All retrieves the complete price list, used to warm the cache.
func (c *Client) All(ctx context.Context) ([]pricelist.Entry, error) {
	endpoint := fmt.Sprintf("%s/api/pricelist", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("price catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("price catalog returned status %d", resp.StatusCode)
	}

	var dtos []entryDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("price catalog response: %w", err)
	}

	entries := make([]pricelist.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
