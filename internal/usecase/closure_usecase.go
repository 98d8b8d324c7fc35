package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"prevencar_vistorias/internal/domain/billing"
	"prevencar_vistorias/internal/domain/entities"
	"prevencar_vistorias/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidMonth       = errors.New("invalid reference month")
	ErrMonthAlreadyClosed = errors.New("month already closed")
	ErrNotAuthorized      = errors.New("actor not authorized")
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// IClosureUseCase exposes the monthly closure operations. Closing is a
// one-way ratchet: there is no reopen.

type IClosureUseCase interface {
	CloseMonth(ctx context.Context, actor entities.User, month string) (entities.MonthlyClosure, error)
	IsMonthClosed(ctx context.Context, month string) (bool, error)
	List(ctx context.Context) ([]entities.MonthlyClosure, error)
}

type ClosureUseCase struct {
	repo        interfaces.IClosureRepository
	inspections interfaces.IInspectionRepository
	audit       interfaces.IAuditLogRepository
}

var _ IClosureUseCase = (*ClosureUseCase)(nil)

func NewClosureUseCase(repo interfaces.IClosureRepository, inspections interfaces.IInspectionRepository, audit interfaces.IAuditLogRepository) *ClosureUseCase {
	return &ClosureUseCase{repo: repo, inspections: inspections, audit: audit}
}

// CloseMonth freezes a reference month. Only admin and financeiro may close;
// the stored total is a snapshot of the month's billed value at this moment,
// never recomputed afterwards. The conditional put makes a repeated closure
// attempt fail without touching any ticket.
func (u *ClosureUseCase) CloseMonth(ctx context.Context, actor entities.User, month string) (entities.MonthlyClosure, error) {
	if !actor.Role.CanCloseMonth() {
		return entities.MonthlyClosure{}, ErrNotAuthorized
	}

	month = strings.TrimSpace(month)
	if !monthPattern.MatchString(month) {
		return entities.MonthlyClosure{}, ErrInvalidMonth
	}

	all, err := u.inspections.List(ctx)
	if err != nil {
		return entities.MonthlyClosure{}, err
	}
	total := 0.0
	for _, sheet := range all {
		if sheet.ReferenceMonth == month {
			total += sheet.TotalValue
		}
	}

	now := time.Now().UTC()
	closure := entities.MonthlyClosure{
		Month:               month,
		Closed:              true,
		ClosedAt:            now.Format(billing.DateLayout),
		ClosedBy:            actor.Name,
		TotalValueAtClosure: total,
	}

	created, err := u.repo.Create(ctx, closure)
	if err != nil {
		return entities.MonthlyClosure{}, err
	}
	if created.Month == "" {
		return entities.MonthlyClosure{}, ErrMonthAlreadyClosed
	}

	u.appendAudit(ctx, actor,
		fmt.Sprintf("Fechamento do mês %s processado.", month),
		fmt.Sprintf("Total consolidado: %.2f", total))
	return created, nil
}

func (u *ClosureUseCase) IsMonthClosed(ctx context.Context, month string) (bool, error) {
	closure, err := u.repo.GetByMonth(ctx, strings.TrimSpace(month))
	if err != nil {
		return false, err
	}
	return closure.Month != "" && closure.Closed, nil
}

func (u *ClosureUseCase) List(ctx context.Context) ([]entities.MonthlyClosure, error) {
	return u.repo.List(ctx)
}

func (u *ClosureUseCase) appendAudit(ctx context.Context, actor entities.User, description, details string) {
	entry := entities.AuditLog{
		ID:          uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		Category:    entities.AuditGerencial,
		Description: description,
		Details:     details,
	}
	if err := u.audit.Append(ctx, entry); err != nil {
		log.Printf("[closure][usecase] audit append failed err=%v", err)
	}
}
