package interfaces

import (
	"context"
	"errors"

	"prevencar_vistorias/internal/domain/entities"
)

// ErrPeriodClosed is returned by repository writes when the storage-side
// closure guard fires: the transaction's ConditionCheck against the closures
// table found the ticket's reference month closed. Surfacing it from the
// repository (instead of only pre-checking in the use case) removes the
// check-then-act window between reading the closure and writing the ticket.
var ErrPeriodClosed = errors.New("reference month is closed")

// IInspectionRepository abstracts DynamoDB persistence for inspection sheets.
//
// Every write runs as a TransactWriteItems call that bundles the mutation
// with one ConditionCheck per affected reference month, asserting no closure
// record marks that month closed. SaveBatch is all-or-nothing: if any sheet
// in the batch belongs to a closed month, no sheet is written.

type IInspectionRepository interface {
	Save(ctx context.Context, i entities.Inspection) (entities.Inspection, error)
	SaveBatch(ctx context.Context, sheets []entities.Inspection) error
	GetByID(ctx context.Context, id string) (entities.Inspection, error)
	List(ctx context.Context) ([]entities.Inspection, error)
	Delete(ctx context.Context, id string, referenceMonth string) error
}
