package interfaces

import (
	"context"

	"prevencar_vistorias/internal/domain/entities"
)

// IClosureRepository abstracts DynamoDB persistence for monthly closures.
//
// Closures are keyed by month. Create is conditional on the month not having
// a record yet; a second closure attempt returns an empty MonthlyClosure so
// the use case can reject it without touching any ticket data.

type IClosureRepository interface {
	Create(ctx context.Context, c entities.MonthlyClosure) (entities.MonthlyClosure, error)
	GetByMonth(ctx context.Context, month string) (entities.MonthlyClosure, error)
	List(ctx context.Context) ([]entities.MonthlyClosure, error)
}
