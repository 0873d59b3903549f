package interfaces

import (
	"context"
	"errors"

	"foodcourt_api/internal/domain/entities"
)

// ErrConflict is returned by repositories when a conditional write
// fails because another writer touched the same key first. Callers
// re-read and retry; the error never escapes the usecase layer.
var ErrConflict = errors.New("conditional write conflict")

// IOrderLedgerRepository abstracts DynamoDB persistence for the order
// ledger. The ledger exclusively owns OrderAggregate rows.
//
// Insert and UpdateIfQuantity are conditional writes: Insert succeeds
// only if the (restaurant_id, menu_item) key is absent, UpdateIfQuantity
// only if the stored quantity still equals expectedQuantity. Both
// return ErrConflict when the condition fails, which is what prevents
// lost updates under concurrent calls for the same key.

type IOrderLedgerRepository interface {
	Find(ctx context.Context, restaurantID int64, menuItem string) (entities.OrderAggregate, error)
	Insert(ctx context.Context, agg entities.OrderAggregate) error
	UpdateIfQuantity(ctx context.Context, agg entities.OrderAggregate, expectedQuantity int64) error
	ListAll(ctx context.Context) ([]entities.OrderAggregate, error)
}
