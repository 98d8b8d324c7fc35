package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"prevencar_vistorias/internal/domain/entities"
	"prevencar_vistorias/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrChargeNotApproved    = errors.New("charge not approved by provider")
	ErrSheetNotChargeable   = errors.New("sheet not chargeable")
	ErrDeferredCharge       = errors.New("deferred method cannot be charged")
)

// IPaymentUseCase collects a sheet's total through the payment gateway and,
// on approval, runs the regular billing transition so the sheet ends
// Concluída/Pago with the payment date stamped.

type IPaymentUseCase interface {
	ChargeInspection(ctx context.Context, actor entities.User, cmd ChargeCommand) (entities.Inspection, error)
}

// ChargeCommand is the cashier charge input. Payload is forwarded to the
// provider (card token, payer data); the charged amount always comes from the
// stored sheet total, never from the caller.
type ChargeCommand struct {
	InspectionID  string
	PaymentMethod entities.PaymentMethod
	Payload       json.RawMessage
}

type PaymentUseCase struct {
	inspections IInspectionUseCase
	gateway     interfaces.IPaymentGateway
	audit       interfaces.IAuditLogRepository
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(inspections IInspectionUseCase, gateway interfaces.IPaymentGateway, audit interfaces.IAuditLogRepository) *PaymentUseCase {
	return &PaymentUseCase{inspections: inspections, gateway: gateway, audit: audit}
}

func (u *PaymentUseCase) ChargeInspection(ctx context.Context, actor entities.User, cmd ChargeCommand) (entities.Inspection, error) {
	id := strings.TrimSpace(cmd.InspectionID)
	if id == "" {
		return entities.Inspection{}, ErrInvalidInspectionID
	}
	if !cmd.PaymentMethod.Valid() || cmd.PaymentMethod.Deferred() {
		return entities.Inspection{}, ErrDeferredCharge
	}
	if u.gateway == nil {
		return entities.Inspection{}, ErrGatewayNotConfigured
	}

	sheet, err := u.inspections.GetByID(ctx, id)
	if err != nil {
		return entities.Inspection{}, err
	}
	if sheet.SheetStatus != entities.SheetStatusCompleta || sheet.PaymentStatus != entities.PaymentStatusAPagar {
		log.Printf("[payment][usecase] sheet not chargeable id=%s sheet_status=%s payment_status=%s", id, sheet.SheetStatus, sheet.PaymentStatus)
		return entities.Inspection{}, ErrSheetNotChargeable
	}

	payload := cmd.Payload
	if len(payload) == 0 || !json.Valid(payload) {
		payload = json.RawMessage("{}")
	}

	// The stored total is the source of truth for the charged amount.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return entities.Inspection{}, err
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = sheet.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Vistoria %s", sheet.LicensePlate)
	}
	reqMap["transaction_amount"] = sheet.TotalValue
	payload, err = json.Marshal(reqMap)
	if err != nil {
		return entities.Inspection{}, err
	}

	log.Printf("[payment][usecase] charge start inspection_id=%s amount=%.2f method=%s", sheet.ID, sheet.TotalValue, cmd.PaymentMethod)
	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed inspection_id=%s err=%v", sheet.ID, err)
		return entities.Inspection{}, err
	}
	if !strings.EqualFold(providerStatus, "approved") {
		log.Printf("[payment][usecase] charge not approved inspection_id=%s provider_status=%s", sheet.ID, providerStatus)
		return entities.Inspection{}, ErrChargeNotApproved
	}

	updated, err := u.inspections.SaveBilling(ctx, actor, BillingCommand{
		ID:            sheet.ID,
		PaymentMethod: cmd.PaymentMethod,
	})
	if err != nil {
		// Collected but not settled locally: surface loudly, operator retries the save.
		log.Printf("[payment][usecase] billing transition failed after charge inspection_id=%s provider_payment_id=%s err=%v", sheet.ID, providerPaymentID, err)
		return entities.Inspection{}, err
	}

	entry := entities.AuditLog{
		ID:          uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		Category:    entities.AuditFinanceiro,
		Description: fmt.Sprintf("Cobrança aprovada via gateway para a ficha %s.", sheet.ID),
		Details:     fmt.Sprintf("Pagamento provedor: %s", providerPaymentID),
	}
	if err := u.audit.Append(ctx, entry); err != nil {
		log.Printf("[payment][usecase] audit append failed inspection_id=%s err=%v", sheet.ID, err)
	}

	log.Printf("[payment][usecase] charge success inspection_id=%s provider_payment_id=%s", sheet.ID, providerPaymentID)
	return updated, nil
}
