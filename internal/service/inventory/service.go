package inventory

import (
	"context"
	"errors"
	"net/http"

	"github.com/rangeops/backoffice-go/internal/domain/inventory"
	"github.com/rangeops/backoffice-go/internal/pkg/compliance"
	"github.com/rangeops/backoffice-go/internal/pkg/validator"
)

// ComplianceClient is the slice of the compliance API the inventory
// screens need.
type ComplianceClient interface {
	SearchItems(ctx context.Context, query string, page int) (inventory.SearchResult, error)
	GetItem(ctx context.Context, upc string) (inventory.Item, error)
}

type inventoryServiceImpl struct {
	client ComplianceClient
}

func NewInventoryService(client ComplianceClient) inventory.InventoryService {
	return &inventoryServiceImpl{client: client}
}

// Search implements inventory.InventoryService.
func (s *inventoryServiceImpl) Search(ctx context.Context, query string, page int) (inventory.SearchResult, error) {
	if page < 1 {
		page = 1
	}

	result, err := s.client.SearchItems(ctx, query, page)
	if err != nil {
		return inventory.SearchResult{}, mapComplianceError(err)
	}

	return result, nil
}

// GetByUPC implements inventory.InventoryService.
func (s *inventoryServiceImpl) GetByUPC(ctx context.Context, upc string) (inventory.Item, error) {
	if !validator.IsValidUPC(upc) {
		return inventory.Item{}, inventory.ErrInvalidUPC
	}

	item, err := s.client.GetItem(ctx, upc)
	if err != nil {
		return inventory.Item{}, mapComplianceError(err)
	}

	return item, nil
}

// mapComplianceError translates transport-level failures into domain
// errors the handler layer knows how to present.
func mapComplianceError(err error) error {
	var apiErr *compliance.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusNotFound {
			return inventory.ErrItemNotFound
		}
		return inventory.ErrLookupUnavailable
	}
	return inventory.ErrLookupUnavailable
}
