package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"foodcourt_api/internal/domain/entities"
	"foodcourt_api/internal/usecase/interfaces"
)

var (
	ErrInvalidRestaurantID = errors.New("invalid restaurant_id")
	ErrInvalidMenuItem     = errors.New("invalid menu_item")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInvalidUnitPrice    = errors.New("invalid unit price")

	// ErrStoreUnavailable wraps any store-layer failure (connection,
	// timeout, exhausted write contention). Shared by every usecase in
	// this package.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// maxUpsertAttempts bounds the read-merge-write retry loop. Contention
// on a single (restaurant, item) key resolves in one or two rounds in
// practice; hitting the bound is reported as a store failure.
const maxUpsertAttempts = 5

// IOrderUseCase exposes the order ledger operations.
//
//   - AddOrder is the upsert: first event for a key creates the
//     aggregate, every later event merges into it.
//   - ListOrders backs the dashboard listing.

type IOrderUseCase interface {
	AddOrder(ctx context.Context, ev entities.OrderEvent) (entities.OrderAggregate, bool, error)
	ListOrders(ctx context.Context) ([]entities.OrderAggregate, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderLedgerRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderLedgerRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// AddOrder applies one order event to the ledger and returns the
// committed aggregate plus whether the key was created.
//
// Merge rule: new quantity = stored quantity + event quantity, and the
// incoming event's unit price is authoritative, so
// total = event price * new quantity. On first insert the
// caller-supplied total is stored as given.
//
// Concurrency: the read-merge-write round uses conditional writes
// (insert-if-absent, update-if-quantity-unchanged) and re-reads on
// conflict, so two concurrent events for the same key can never both
// apply against the same prior quantity.
//
// Applying the same event twice adds twice: there are no idempotency
// keys, duplicates are the caller's responsibility.
func (u *OrderUseCase) AddOrder(ctx context.Context, ev entities.OrderEvent) (entities.OrderAggregate, bool, error) {
	ev.MenuItem = strings.TrimSpace(ev.MenuItem)
	if ev.RestaurantID <= 0 {
		return entities.OrderAggregate{}, false, ErrInvalidRestaurantID
	}
	if ev.MenuItem == "" {
		return entities.OrderAggregate{}, false, ErrInvalidMenuItem
	}
	if ev.Quantity <= 0 {
		return entities.OrderAggregate{}, false, ErrInvalidQuantity
	}
	if ev.UnitPrice <= 0 {
		return entities.OrderAggregate{}, false, ErrInvalidUnitPrice
	}

	for attempt := 1; attempt <= maxUpsertAttempts; attempt++ {
		existing, err := u.repo.Find(ctx, ev.RestaurantID, ev.MenuItem)
		if err != nil {
			log.Printf("[order][usecase] find failed restaurant=%d item=%q err=%v", ev.RestaurantID, ev.MenuItem, err)
			return entities.OrderAggregate{}, false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}

		if existing.MenuItem == "" {
			agg := entities.OrderAggregate{
				RestaurantID: ev.RestaurantID,
				MenuItem:     ev.MenuItem,
				Quantity:     ev.Quantity,
				UnitPrice:    ev.UnitPrice,
				TotalPrice:   ev.TotalPrice,
			}
			err := u.repo.Insert(ctx, agg)
			if errors.Is(err, interfaces.ErrConflict) {
				// Lost the insert race; merge against the winner.
				log.Printf("[order][usecase] insert conflict restaurant=%d item=%q attempt=%d", ev.RestaurantID, ev.MenuItem, attempt)
				continue
			}
			if err != nil {
				log.Printf("[order][usecase] insert failed restaurant=%d item=%q err=%v", ev.RestaurantID, ev.MenuItem, err)
				return entities.OrderAggregate{}, false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
			}
			return agg, true, nil
		}

		newQuantity := existing.Quantity + ev.Quantity
		agg := entities.OrderAggregate{
			RestaurantID: ev.RestaurantID,
			MenuItem:     ev.MenuItem,
			Quantity:     newQuantity,
			UnitPrice:    ev.UnitPrice,
			TotalPrice:   ev.UnitPrice * float64(newQuantity),
		}
		err = u.repo.UpdateIfQuantity(ctx, agg, existing.Quantity)
		if errors.Is(err, interfaces.ErrConflict) {
			log.Printf("[order][usecase] update conflict restaurant=%d item=%q attempt=%d", ev.RestaurantID, ev.MenuItem, attempt)
			continue
		}
		if err != nil {
			log.Printf("[order][usecase] update failed restaurant=%d item=%q err=%v", ev.RestaurantID, ev.MenuItem, err)
			return entities.OrderAggregate{}, false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return agg, false, nil
	}

	log.Printf("[order][usecase] upsert contention exhausted restaurant=%d item=%q", ev.RestaurantID, ev.MenuItem)
	return entities.OrderAggregate{}, false, fmt.Errorf("%w: upsert contention for restaurant=%d item=%q", ErrStoreUnavailable, ev.RestaurantID, ev.MenuItem)
}

func (u *OrderUseCase) ListOrders(ctx context.Context) ([]entities.OrderAggregate, error) {
	orders, err := u.repo.ListAll(ctx)
	if err != nil {
		log.Printf("[order][usecase] list failed err=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return orders, nil
}
