package compliance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rangeops/backoffice-go/internal/config"
	"github.com/rangeops/backoffice-go/internal/domain/inventory"
)

// Client talks to the third-party compliance API that holds the bound
// book and inventory records. All inventory reads go through it; the
// back office never stores inventory locally.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new compliance API client
func NewClient(cfg config.ComplianceConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// APIError represents a compliance API error
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("compliance API error [%d]: %s", e.StatusCode, e.Message)
}

type searchResponse struct {
	Items      []inventory.Item `json:"items"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
	TotalItems int64            `json:"total_items"`
}

// SearchItems queries the compliance API inventory by free-text term.
func (c *Client) SearchItems(ctx context.Context, query string, page int) (inventory.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))

	var resp searchResponse
	if err := c.get(ctx, "/v1/inventory/search?"+params.Encode(), &resp); err != nil {
		return inventory.SearchResult{}, err
	}

	return inventory.SearchResult{
		Items:      resp.Items,
		Page:       resp.Page,
		TotalPages: resp.TotalPages,
		TotalItems: resp.TotalItems,
	}, nil
}

// GetItem fetches a single inventory item by UPC.
func (c *Client) GetItem(ctx context.Context, upc string) (inventory.Item, error) {
	var item inventory.Item
	if err := c.get(ctx, "/v1/inventory/items/"+url.PathEscape(upc), &item); err != nil {
		return inventory.Item{}, err
	}
	return item, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("compliance API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode compliance API response: %w", err)
	}

	return nil
}
