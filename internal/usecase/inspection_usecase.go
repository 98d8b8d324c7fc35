package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"prevencar_vistorias/internal/domain/billing"
	"prevencar_vistorias/internal/domain/entities"
	"prevencar_vistorias/internal/domain/pricing"
	"prevencar_vistorias/internal/domain/reporting"
	"prevencar_vistorias/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInspectionNotFound  = errors.New("inspection not found")
	ErrInvalidInspectionID = errors.New("invalid inspection id")
	ErrIndicationNotFound  = errors.New("indication not found")
	ErrEmptyBulkSelection  = errors.New("empty bulk selection")
)

// IInspectionUseCase exposes the inspection sheet operations.
//
// The three screens of the original flow map onto:
//   - technical intake ("Enviar p/ Caixa")  => SaveIntake()
//   - cashier/billing ("Finalizar Ficha")   => SaveBilling()
//   - multi-select payment update           => BulkUpdate()

type IInspectionUseCase interface {
	SaveIntake(ctx context.Context, actor entities.User, sheet entities.Inspection) (entities.Inspection, error)
	SaveBilling(ctx context.Context, actor entities.User, cmd BillingCommand) (entities.Inspection, error)
	BulkUpdate(ctx context.Context, actor entities.User, ids []string, updates billing.BulkUpdates) ([]entities.Inspection, error)
	Delete(ctx context.Context, actor entities.User, id string) error
	GetByID(ctx context.Context, id string) (entities.Inspection, error)
	Search(ctx context.Context, q SearchQuery) ([]entities.Inspection, error)
}

// BillingCommand carries the cashier-step input for one sheet.
type BillingCommand struct {
	ID            string
	PaymentMethod entities.PaymentMethod
	NFe           string
	Observations  string
}

// SearchQuery narrows the inspection listing server-side. The financial
// filter reuses the report filter so the list, the report and the exports
// always agree on what a subset means.
type SearchQuery struct {
	reporting.Filter
	LicensePlate  string
	ClientName    string
	Status        entities.InspectionStatus
	PaymentStatus entities.PaymentStatus
}

type InspectionUseCase struct {
	repo        interfaces.IInspectionRepository
	services    interfaces.IServiceRepository
	indications interfaces.IIndicationRepository
	closures    interfaces.IClosureRepository
	audit       interfaces.IAuditLogRepository
}

var _ IInspectionUseCase = (*InspectionUseCase)(nil)

func NewInspectionUseCase(
	repo interfaces.IInspectionRepository,
	services interfaces.IServiceRepository,
	indications interfaces.IIndicationRepository,
	closures interfaces.IClosureRepository,
	audit interfaces.IAuditLogRepository,
) *InspectionUseCase {
	return &InspectionUseCase{repo: repo, services: services, indications: indications, closures: closures, audit: audit}
}

// SaveIntake persists the technical step of a sheet. Line prices left at zero
// are seeded from the catalog (partner custom price first), line names are
// re-snapshotted from the catalog, and the derived fields are sealed by the
// state machine before the guarded write.
func (u *InspectionUseCase) SaveIntake(ctx context.Context, actor entities.User, sheet entities.Inspection) (entities.Inspection, error) {
	now := time.Now().UTC()

	if strings.TrimSpace(sheet.Date) == "" {
		sheet.Date = now.Format(billing.DateLayout)
	}
	sheet.ReferenceMonth = entities.ReferenceMonthOf(sheet.Date)

	partner, err := u.resolvePartner(ctx, &sheet)
	if err != nil {
		return entities.Inspection{}, err
	}
	if err := u.priceLines(ctx, &sheet, partner); err != nil {
		return entities.Inspection{}, err
	}

	if strings.TrimSpace(sheet.ID) == "" {
		fresh := billing.NewSheet(sheet.Date)
		sheet.Status = fresh.Status
		sheet.SheetStatus = fresh.SheetStatus
		sheet.PaymentStatus = fresh.PaymentStatus
		sheet.ID = uuid.NewString()
		sheet.CreatedAt = now
		if sheet.Inspector == "" {
			sheet.Inspector = actor.Name
		}
	} else {
		existing, err := u.repo.GetByID(ctx, sheet.ID)
		if err != nil {
			return entities.Inspection{}, err
		}
		if existing.ID == "" {
			return entities.Inspection{}, ErrInspectionNotFound
		}
		sheet.CreatedAt = existing.CreatedAt
		// Editing a sheet out of a closed month is still a write to that month.
		if err := u.guardMonth(ctx, actor, existing.ReferenceMonth, existing.ID); err != nil {
			return entities.Inspection{}, err
		}
	}

	if err := u.guardMonth(ctx, actor, sheet.ReferenceMonth, sheet.ID); err != nil {
		return entities.Inspection{}, err
	}

	sheet, err = billing.ApplyIntakeSave(sheet, now)
	if err != nil {
		return entities.Inspection{}, err
	}
	return u.persist(ctx, actor, sheet)
}

// SaveBilling closes the cashier step for one sheet.
func (u *InspectionUseCase) SaveBilling(ctx context.Context, actor entities.User, cmd BillingCommand) (entities.Inspection, error) {
	id := strings.TrimSpace(cmd.ID)
	if id == "" {
		return entities.Inspection{}, ErrInvalidInspectionID
	}

	sheet, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Inspection{}, err
	}
	if sheet.ID == "" {
		return entities.Inspection{}, ErrInspectionNotFound
	}

	if err := u.guardMonth(ctx, actor, sheet.ReferenceMonth, sheet.ID); err != nil {
		return entities.Inspection{}, err
	}

	if cmd.NFe != "" {
		sheet.NFe = cmd.NFe
	}
	if cmd.Observations != "" {
		sheet.Observations = cmd.Observations
	}

	sheet, err = billing.ApplyBillingSave(sheet, cmd.PaymentMethod, time.Now().UTC())
	if err != nil {
		return entities.Inspection{}, err
	}
	return u.persist(ctx, actor, sheet)
}

// BulkUpdate applies a status/payment update to a multi-selection. The batch
// is all-or-nothing: one sheet in a closed month, or one sheet that would end
// paid-but-incomplete, rejects the whole selection before anything is written.
func (u *InspectionUseCase) BulkUpdate(ctx context.Context, actor entities.User, ids []string, updates billing.BulkUpdates) ([]entities.Inspection, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyBulkSelection
	}

	now := time.Now().UTC()
	sheets := make([]entities.Inspection, 0, len(ids))
	for _, id := range ids {
		sheet, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
		if err != nil {
			return nil, err
		}
		if sheet.ID == "" {
			return nil, ErrInspectionNotFound
		}
		sheets = append(sheets, sheet)
	}

	for _, sheet := range sheets {
		if err := u.guardMonth(ctx, actor, sheet.ReferenceMonth, sheet.ID); err != nil {
			return nil, err
		}
	}

	updated := make([]entities.Inspection, len(sheets))
	for idx, sheet := range sheets {
		next := billing.ApplyBulkUpdate(sheet, updates, now)
		if err := billing.CheckPersistable(next); err != nil {
			u.securityAudit(ctx, actor,
				"Tentativa de registrar pagamento em ficha incompleta (lote)",
				fmt.Sprintf("Placa: %s", next.LicensePlate))
			return nil, err
		}
		updated[idx] = next
	}

	if err := u.repo.SaveBatch(ctx, updated); err != nil {
		if errors.Is(err, interfaces.ErrPeriodClosed) {
			u.securityAudit(ctx, actor,
				"Tentativa de atualização em lote sobre mês fechado",
				fmt.Sprintf("Fichas: %s", strings.Join(ids, ", ")))
		}
		return nil, err
	}

	u.appendAudit(ctx, actor, entities.AuditFinanceiro,
		fmt.Sprintf("Atualização em lote realizada para %d fichas.", len(ids)),
		fmt.Sprintf("Fichas: %s", strings.Join(ids, ", ")))
	return updated, nil
}

// Delete removes a sheet, guarded by the period closure.
func (u *InspectionUseCase) Delete(ctx context.Context, actor entities.User, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInspectionID
	}

	sheet, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sheet.ID == "" {
		return ErrInspectionNotFound
	}

	if err := u.guardMonth(ctx, actor, sheet.ReferenceMonth, sheet.ID); err != nil {
		return err
	}

	if err := u.repo.Delete(ctx, sheet.ID, sheet.ReferenceMonth); err != nil {
		if errors.Is(err, interfaces.ErrPeriodClosed) {
			u.securityAudit(ctx, actor,
				fmt.Sprintf("Tentativa de excluir ficha em mês fechado (%s)", sheet.ReferenceMonth),
				fmt.Sprintf("ID Ficha: %s", sheet.ID))
		}
		return err
	}
	return nil
}

func (u *InspectionUseCase) GetByID(ctx context.Context, id string) (entities.Inspection, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Inspection{}, ErrInvalidInspectionID
	}

	sheet, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Inspection{}, err
	}
	if sheet.ID == "" {
		return entities.Inspection{}, ErrInspectionNotFound
	}
	return sheet, nil
}

func (u *InspectionUseCase) Search(ctx context.Context, q SearchQuery) ([]entities.Inspection, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Inspection, 0, len(all))
	for _, sheet := range all {
		if !q.Filter.Matches(sheet) {
			continue
		}
		if q.LicensePlate != "" && !strings.Contains(strings.ToUpper(sheet.LicensePlate), strings.ToUpper(q.LicensePlate)) {
			continue
		}
		if q.ClientName != "" && !strings.Contains(strings.ToLower(sheet.Client.Name), strings.ToLower(q.ClientName)) {
			continue
		}
		if q.Status != "" && sheet.Status != q.Status {
			continue
		}
		if q.PaymentStatus != "" && sheet.PaymentStatus != q.PaymentStatus {
			continue
		}
		out = append(out, sheet)
	}
	return out, nil
}

// persist runs the hard save-time guard and the guarded write, emitting the
// required security audit entries on violation.
func (u *InspectionUseCase) persist(ctx context.Context, actor entities.User, sheet entities.Inspection) (entities.Inspection, error) {
	if err := billing.CheckPersistable(sheet); err != nil {
		u.securityAudit(ctx, actor,
			"Tentativa de registrar pagamento em ficha incompleta",
			fmt.Sprintf("Placa: %s", sheet.LicensePlate))
		return entities.Inspection{}, err
	}

	saved, err := u.repo.Save(ctx, sheet)
	if err != nil {
		if errors.Is(err, interfaces.ErrPeriodClosed) {
			u.securityAudit(ctx, actor,
				fmt.Sprintf("Tentativa de salvar ficha em mês fechado (%s)", sheet.ReferenceMonth),
				fmt.Sprintf("ID Ficha: %s", sheet.ID))
		}
		return entities.Inspection{}, err
	}
	return saved, nil
}

// guardMonth is the fast-path closure check. The repository re-asserts the
// same condition inside the write transaction, so a closure racing this read
// still cannot slip a write through.
func (u *InspectionUseCase) guardMonth(ctx context.Context, actor entities.User, month, sheetID string) error {
	if month == "" {
		return nil
	}
	closure, err := u.closures.GetByMonth(ctx, month)
	if err != nil {
		return err
	}
	if closure.Month != "" && closure.Closed {
		u.securityAudit(ctx, actor,
			fmt.Sprintf("Tentativa de salvar ficha em mês fechado (%s)", month),
			fmt.Sprintf("ID Ficha: %s", sheetID))
		return interfaces.ErrPeriodClosed
	}
	return nil
}

func (u *InspectionUseCase) resolvePartner(ctx context.Context, sheet *entities.Inspection) (*entities.Indication, error) {
	if strings.TrimSpace(sheet.IndicationID) == "" {
		sheet.IndicationID = ""
		sheet.IndicationName = ""
		return nil, nil
	}

	partner, err := u.indications.GetByID(ctx, sheet.IndicationID)
	if err != nil {
		return nil, err
	}
	if partner.ID == "" {
		return nil, ErrIndicationNotFound
	}
	sheet.IndicationName = partner.Name
	return &partner, nil
}

// priceLines snapshots line names from the catalog and seeds every line whose
// price was not set by the operator with the resolved unit price.
func (u *InspectionUseCase) priceLines(ctx context.Context, sheet *entities.Inspection, partner *entities.Indication) error {
	if len(sheet.Services) == 0 {
		return nil
	}

	items, err := u.services.List(ctx)
	if err != nil {
		return err
	}
	catalog := make(map[string]entities.ServiceItem, len(items))
	for _, item := range items {
		catalog[item.ID] = item
	}

	sheet.Services = pricing.SeedLines(sheet.Services, catalog, partner)
	return nil
}

func (u *InspectionUseCase) securityAudit(ctx context.Context, actor entities.User, description, details string) {
	u.appendAudit(ctx, actor, entities.AuditSeguranca, description, details)
}

func (u *InspectionUseCase) appendAudit(ctx context.Context, actor entities.User, category entities.AuditCategory, description, details string) {
	entry := entities.AuditLog{
		ID:          uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		Category:    category,
		Description: description,
		Details:     details,
	}
	if err := u.audit.Append(ctx, entry); err != nil {
		log.Printf("[inspection][usecase] audit append failed category=%s err=%v", category, err)
	}
}
