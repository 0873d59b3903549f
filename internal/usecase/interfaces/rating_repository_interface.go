package interfaces

import (
	"context"

	"foodcourt_api/internal/domain/entities"
)

// IRatingRepository abstracts DynamoDB persistence for Rating.
//
// Append assigns the sequence id from an atomic counter and stores the
// row; the returned Rating carries the assigned id. The table is
// append-only by contract: no update or delete is exposed.

type IRatingRepository interface {
	Append(ctx context.Context, r entities.Rating) (entities.Rating, error)
}
