package interfaces

import (
	"context"

	"prevencar_vistorias/internal/domain/entities"
)

// IAuditLogRepository is the audit trail sink and reader.
//
// Appending must never abort the business operation that triggered it: use
// cases log append failures and move on. The guards in the inspection use
// case are required to append "seguranca" entries on violation.

type IAuditLogRepository interface {
	Append(ctx context.Context, entry entities.AuditLog) error
	List(ctx context.Context) ([]entities.AuditLog, error)
}
