// Package billing holds the pure ticket state machine: the intake
// completeness gate, the cashier transitions and the save-time guards.
// Use cases call into it before any persistence; nothing here touches a store.
package billing

import (
	"errors"
	"strings"
	"time"

	"prevencar_vistorias/internal/domain/entities"
	"prevencar_vistorias/internal/domain/pricing"
)

var (
	ErrIncompleteIntake    = errors.New("intake sheet incomplete")
	ErrPaymentOnIncomplete = errors.New("payment recorded on incomplete sheet")
	ErrInvalidMethod       = errors.New("invalid payment method")
)

const DateLayout = "2006-01-02"

// NewSheet returns the baseline of a fresh inspection: technical intake in
// progress, nothing billed.
func NewSheet(date string) entities.Inspection {
	return entities.Inspection{
		Date:           date,
		ReferenceMonth: entities.ReferenceMonthOf(date),
		Status:         entities.InspectionStatusIniciada,
		SheetStatus:    entities.SheetStatusIncompleta,
		PaymentStatus:  entities.PaymentStatusAPagar,
	}
}

// ValidateIntake is the step-1 completeness gate. A sheet may only be sent to
// the cashier with a plate, a vehicle model, a client name and document, and
// at least one billable line (a selected service or a positive ad-hoc value).
func ValidateIntake(i entities.Inspection) error {
	switch {
	case strings.TrimSpace(i.LicensePlate) == "",
		strings.TrimSpace(i.VehicleModel) == "",
		strings.TrimSpace(i.Client.Name) == "",
		strings.TrimSpace(i.Client.Document) == "":
		return ErrIncompleteIntake
	}
	if len(i.Services) == 0 && i.OtherServicePrice <= 0 {
		return ErrIncompleteIntake
	}
	return nil
}

// ApplyIntakeSave runs the gate and moves the sheet to the cashier, sealing
// the derived fields (total, reference month, completeness). The payment side
// is untouched.
func ApplyIntakeSave(i entities.Inspection, now time.Time) (entities.Inspection, error) {
	if err := ValidateIntake(i); err != nil {
		return entities.Inspection{}, err
	}

	i.TotalValue = pricing.ComputeTotal(i.Services, i.OtherServicePrice)
	i.ReferenceMonth = entities.ReferenceMonthOf(i.Date)
	i.Status = entities.InspectionStatusNoCaixa
	i.SheetStatus = entities.SheetStatusCompleta
	if i.PaymentStatus == "" {
		i.PaymentStatus = entities.PaymentStatusAPagar
	}
	i.UpdatedAt = now.UTC()
	return i, nil
}

// ApplyBillingSave closes the cashier step. A deferred method ("A Pagar")
// keeps the sheet at the cashier unpaid; any concrete method settles it:
// status Concluída, payment marked Pago and the payment date stamped with the
// current date. The intake gate still applies: billing an incomplete sheet is
// impossible by construction.
func ApplyBillingSave(i entities.Inspection, method entities.PaymentMethod, now time.Time) (entities.Inspection, error) {
	if !method.Valid() {
		return entities.Inspection{}, ErrInvalidMethod
	}
	if err := ValidateIntake(i); err != nil {
		return entities.Inspection{}, err
	}

	i.PaymentMethod = method
	i.TotalValue = pricing.ComputeTotal(i.Services, i.OtherServicePrice)
	i.ReferenceMonth = entities.ReferenceMonthOf(i.Date)
	i.SheetStatus = entities.SheetStatusCompleta

	if method.Deferred() {
		i.Status = entities.InspectionStatusNoCaixa
		i.PaymentStatus = entities.PaymentStatusAPagar
		i.PaymentDate = ""
	} else {
		i.Status = entities.InspectionStatusConcluida
		i.PaymentStatus = entities.PaymentStatusPago
		i.PaymentDate = now.UTC().Format(DateLayout)
	}
	i.UpdatedAt = now.UTC()
	return i, nil
}

// BulkUpdates is the set of fields a multi-select update may touch.
type BulkUpdates struct {
	Status        *entities.InspectionStatus
	PaymentMethod *entities.PaymentMethod
}

// ApplyBulkUpdate applies a batch update to one sheet. A payment method drives
// the same transition as the cashier save: a concrete method ends the sheet at
// Concluída, the deferred method returns it to the cashier unpaid. A sheet
// ending at Concluída is marked paid with the payment date stamped.
func ApplyBulkUpdate(i entities.Inspection, u BulkUpdates, now time.Time) entities.Inspection {
	if u.Status != nil {
		i.Status = *u.Status
	}
	if u.PaymentMethod != nil {
		i.PaymentMethod = *u.PaymentMethod
		if u.PaymentMethod.Deferred() {
			i.Status = entities.InspectionStatusNoCaixa
			i.PaymentStatus = entities.PaymentStatusAPagar
			i.PaymentDate = ""
		} else {
			i.Status = entities.InspectionStatusConcluida
		}
	}

	if i.Status == entities.InspectionStatusConcluida {
		i.PaymentStatus = entities.PaymentStatusPago
		i.PaymentDate = now.UTC().Format(DateLayout)
	}
	i.UpdatedAt = now.UTC()
	return i
}

// CheckPersistable is the hard save-time guard: a paid-but-incomplete sheet
// must never reach the store, regardless of which screen issued the write.
// Callers treat a violation as a security event.
func CheckPersistable(i entities.Inspection) error {
	if i.PaymentStatus == entities.PaymentStatusPago && i.SheetStatus == entities.SheetStatusIncompleta {
		return ErrPaymentOnIncomplete
	}
	return nil
}
