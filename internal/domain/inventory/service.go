package inventory

import (
	"context"
)

type InventoryService interface {
	Search(ctx context.Context, query string, page int) (SearchResult, error)
	GetByUPC(ctx context.Context, upc string) (Item, error)
}
