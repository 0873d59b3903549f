package interfaces

import (
	"context"

	"foodcourt_api/internal/domain/entities"
)

// IAccountRepository abstracts DynamoDB persistence for Account.
//
// Create returns ErrConflict when the username already exists (the
// failed attempt leaves the stored account untouched). GetByUsername
// returns a zero Account for a miss.

type IAccountRepository interface {
	Create(ctx context.Context, a entities.Account) (entities.Account, error)
	GetByUsername(ctx context.Context, username string) (entities.Account, error)
}
