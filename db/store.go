package db

import (
	"context"

	"github.com/charliez07/mini-market/domain"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=db

// ItemStore owns the persisted item collection. Implementations replace the
// whole collection on every save; callers are expected to hold their own
// mutual exclusion around a load-modify-save cycle.
type ItemStore interface {
	LoadAll(ctx context.Context) ([]domain.Item, error)
	SaveAll(ctx context.Context, items []domain.Item) error
}

// NextItemID returns the id for a new item: 1 for an empty collection,
// otherwise max(id)+1. Ids are never reused.
func NextItemID(items []domain.Item) int {
	maxID := 0
	for _, item := range items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	return maxID + 1
}
