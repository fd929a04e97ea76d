package usecase

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/charliez07/mini-market/db"
	"github.com/charliez07/mini-market/domain"
)

// ItemUsecase implements the item lifecycle over an injected store.
// Every operation is a full load-validate-mutate-save cycle; mu makes the
// cycle atomic per call so overlapping transitions cannot lose updates.
type ItemUsecase struct {
	store db.ItemStore
	mu    sync.Mutex
}

func NewItemUsecase(store db.ItemStore) *ItemUsecase {
	return &ItemUsecase{store: store}
}

type CreateItemInput struct {
	Title       string
	Description string
	Price       *float64
	Image       string
	Seller      string
}

func (u *ItemUsecase) Create(ctx context.Context, in CreateItemInput) (domain.Item, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	seller := strings.TrimSpace(in.Seller)
	if title == "" || description == "" || in.Price == nil || seller == "" {
		return domain.Item{}, domain.Errorf(domain.ErrValidation,
			"missing required fields: title, description, price, and seller are required")
	}
	if *in.Price < 0 {
		return domain.Item{}, domain.Errorf(domain.ErrValidation, "price must be a valid positive number")
	}

	image := strings.TrimSpace(in.Image)
	if image == "" {
		image = domain.PlaceholderImageURL
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	items, err := u.store.LoadAll(ctx)
	if err != nil {
		return domain.Item{}, domain.Errorf(domain.ErrStoreUnavailable, "failed to load items: %s", err)
	}

	item := domain.Item{
		ID:          db.NextItemID(items),
		Title:       title,
		Description: description,
		Price:       *in.Price,
		Image:       image,
		Seller:      seller,
		Status:      domain.ItemStatusAvailable,
	}

	items = append(items, item)
	if err := u.store.SaveAll(ctx, items); err != nil {
		return domain.Item{}, domain.Errorf(domain.ErrStoreUnavailable, "failed to save item: %s", err)
	}

	return item, nil
}

func (u *ItemUsecase) Book(ctx context.Context, itemID int, buyer string) (domain.Item, error) {
	if buyer == "" {
		return domain.Item{}, domain.Errorf(domain.ErrValidation, "buyer is required to book an item")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	items, err := u.store.LoadAll(ctx)
	if err != nil {
		return domain.Item{}, domain.Errorf(domain.ErrStoreUnavailable, "failed to load items: %s", err)
	}

	idx := findItem(items, itemID)
	if idx < 0 {
		return domain.Item{}, domain.Errorf(domain.ErrNotFound, "item not found")
	}
	item := items[idx]
	if item.Seller == buyer {
		return domain.Item{}, domain.Errorf(domain.ErrConflict, "you cannot book your own item")
	}
	if item.Status != domain.ItemStatusAvailable {
		return domain.Item{}, domain.Errorf(domain.ErrConflict, "item is not available for booking")
	}

	item.Status = domain.ItemStatusBooked
	item.Buyer = buyer
	items[idx] = item

	if err := u.store.SaveAll(ctx, items); err != nil {
		return domain.Item{}, domain.Errorf(domain.ErrStoreUnavailable, "failed to save booking: %s", err)
	}

	return item, nil
}

func (u *ItemUsecase) MarkSold(ctx context.Context, itemID int, seller string) (domain.Item, error) {
	if seller == "" {
		return domain.Item{}, domain.Errorf(domain.ErrValidation, "seller is required to mark item as sold")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	items, err := u.store.LoadAll(ctx)
	if err != nil {
		return domain.Item{}, domain.Errorf(domain.ErrStoreUnavailable, "failed to load items: %s", err)
	}

	idx := findItem(items, itemID)
	if idx < 0 {
		return domain.Item{}, domain.Errorf(domain.ErrNotFound, "item not found")
	}
	item := items[idx]
	if item.Seller != seller {
		return domain.Item{}, domain.Errorf(domain.ErrForbidden, "only the seller can mark this item as sold")
	}
	if item.Status != domain.ItemStatusBooked {
		return domain.Item{}, domain.Errorf(domain.ErrConflict, "only booked items can be marked as sold")
	}

	item.Status = domain.ItemStatusSold
	items[idx] = item

	if err := u.store.SaveAll(ctx, items); err != nil {
		return domain.Item{}, domain.Errorf(domain.ErrStoreUnavailable, "failed to save item as sold: %s", err)
	}

	return item, nil
}

func (u *ItemUsecase) CancelBooking(ctx context.Context, itemID int, seller string) (domain.Item, error) {
	if seller == "" {
		return domain.Item{}, domain.Errorf(domain.ErrValidation, "seller is required to cancel booking")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	items, err := u.store.LoadAll(ctx)
	if err != nil {
		return domain.Item{}, domain.Errorf(domain.ErrStoreUnavailable, "failed to load items: %s", err)
	}

	idx := findItem(items, itemID)
	if idx < 0 {
		return domain.Item{}, domain.Errorf(domain.ErrNotFound, "item not found")
	}
	item := items[idx]
	if item.Seller != seller {
		return domain.Item{}, domain.Errorf(domain.ErrForbidden, "only the seller can cancel this booking")
	}
	if item.Status != domain.ItemStatusBooked {
		return domain.Item{}, domain.Errorf(domain.ErrConflict, "only booked items can have their booking cancelled")
	}

	item.Status = domain.ItemStatusAvailable
	item.Buyer = ""
	items[idx] = item

	if err := u.store.SaveAll(ctx, items); err != nil {
		return domain.Item{}, domain.Errorf(domain.ErrStoreUnavailable, "failed to save cancelled booking: %s", err)
	}

	return item, nil
}

// ListPublic returns every available item in insertion order.
func (u *ItemUsecase) ListPublic(ctx context.Context) []domain.Item {
	return u.filterItems(ctx, func(item domain.Item) bool {
		return item.Status == domain.ItemStatusAvailable
	})
}

// ListBySeller returns every item listed by seller, in any status.
func (u *ItemUsecase) ListBySeller(ctx context.Context, seller string) []domain.Item {
	return u.filterItems(ctx, func(item domain.Item) bool {
		return item.Seller == seller
	})
}

// ListByBuyer returns every item currently booked by or sold to buyer.
func (u *ItemUsecase) ListByBuyer(ctx context.Context, buyer string) []domain.Item {
	return u.filterItems(ctx, func(item domain.Item) bool {
		return item.Buyer != "" && item.Buyer == buyer
	})
}

// filterItems degrades a failed load to an empty collection: read paths keep
// serving while the backing file is unreadable, write paths still fail loudly.
func (u *ItemUsecase) filterItems(ctx context.Context, keep func(domain.Item) bool) []domain.Item {
	u.mu.Lock()
	defer u.mu.Unlock()

	items, err := u.store.LoadAll(ctx)
	if err != nil {
		log.Printf("failed to load items, serving empty list: %s", err.Error())
		return []domain.Item{}
	}

	res := []domain.Item{}
	for _, item := range items {
		if keep(item) {
			res = append(res, item)
		}
	}
	return res
}

func findItem(items []domain.Item, itemID int) int {
	for i, item := range items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}
