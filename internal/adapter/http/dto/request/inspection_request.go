package request

import (
	"encoding/json"
	"strings"

	"prevencar_vistorias/internal/domain/billing"
	"prevencar_vistorias/internal/domain/entities"
)

type ClientRequest struct {
	Name         string `json:"name"`
	Document     string `json:"cpf"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	CEP          string `json:"cep"`
	Neighborhood string `json:"neighborhood"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
}

type ServiceLineRequest struct {
	ServiceID string  `json:"service_id" binding:"required"`
	Price     float64 `json:"price"`
}

// InspectionRequest is the technical-intake payload. An empty ID creates a
// new sheet; a present ID edits the existing one. Line names, line prices
// left at zero, totals and statuses are all resolved server-side.
type InspectionRequest struct {
	ID           string `json:"id"`
	Date         string `json:"date"` // AAAA-MM-DD
	LicensePlate string `json:"licensePlate"`
	VehicleModel string `json:"vehicleModel"`

	Services                []ServiceLineRequest `json:"services"`
	OtherServiceDescription string               `json:"otherServiceDescription"`
	OtherServicePrice       float64              `json:"otherServicePrice"`

	Client       ClientRequest `json:"client"`
	Inspector    string        `json:"inspector"`
	IndicationID string        `json:"indicationId"`
	Observations string        `json:"observations"`
}

func (r InspectionRequest) ToEntity() entities.Inspection {
	lines := make([]entities.InspectionService, 0, len(r.Services))
	for _, s := range r.Services {
		lines = append(lines, entities.InspectionService{
			ServiceID: strings.TrimSpace(s.ServiceID),
			Price:     s.Price,
		})
	}

	return entities.Inspection{
		ID:                      strings.TrimSpace(r.ID),
		Date:                    strings.TrimSpace(r.Date),
		LicensePlate:            strings.ToUpper(strings.TrimSpace(r.LicensePlate)),
		VehicleModel:            strings.TrimSpace(r.VehicleModel),
		Services:                lines,
		OtherServiceDescription: strings.TrimSpace(r.OtherServiceDescription),
		OtherServicePrice:       r.OtherServicePrice,
		Client: entities.Client{
			Name:         strings.TrimSpace(r.Client.Name),
			Document:     strings.TrimSpace(r.Client.Document),
			Phone:        strings.TrimSpace(r.Client.Phone),
			Address:      strings.TrimSpace(r.Client.Address),
			CEP:          strings.TrimSpace(r.Client.CEP),
			Neighborhood: strings.TrimSpace(r.Client.Neighborhood),
			Number:       strings.TrimSpace(r.Client.Number),
			Complement:   strings.TrimSpace(r.Client.Complement),
		},
		Inspector:    strings.TrimSpace(r.Inspector),
		IndicationID: strings.TrimSpace(r.IndicationID),
		Observations: strings.TrimSpace(r.Observations),
	}
}

// BillingRequest is the cashier payload finishing one sheet.
type BillingRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	NFe           string `json:"nfe"`
	Observations  string `json:"observations"`
}

func (r BillingRequest) ResolveMethod() (entities.PaymentMethod, bool) {
	m := entities.PaymentMethod(strings.TrimSpace(r.PaymentMethod))
	return m, m.Valid()
}

// BulkUpdateRequest applies one update to a multi-selection of sheets.
// Omitted fields are left untouched on every sheet.
type BulkUpdateRequest struct {
	IDs           []string `json:"ids" binding:"required"`
	Status        *string  `json:"status"`
	PaymentMethod *string  `json:"paymentMethod"`
}

func (r BulkUpdateRequest) ResolveIDs() []string {
	ids := make([]string, 0, len(r.IDs))
	for _, id := range r.IDs {
		if v := strings.TrimSpace(id); v != "" {
			ids = append(ids, v)
		}
	}
	return ids
}

func (r BulkUpdateRequest) ResolveUpdates() (billing.BulkUpdates, bool) {
	var u billing.BulkUpdates

	if r.Status != nil {
		s := entities.InspectionStatus(strings.TrimSpace(*r.Status))
		switch s {
		case entities.InspectionStatusIniciada, entities.InspectionStatusNoCaixa, entities.InspectionStatusConcluida:
			u.Status = &s
		default:
			return billing.BulkUpdates{}, false
		}
	}
	if r.PaymentMethod != nil {
		m := entities.PaymentMethod(strings.TrimSpace(*r.PaymentMethod))
		if !m.Valid() {
			return billing.BulkUpdates{}, false
		}
		u.PaymentMethod = &m
	}
	if u.Status == nil && u.PaymentMethod == nil {
		return billing.BulkUpdates{}, false
	}
	return u, true
}

// ChargeRequest collects a sheet total through the payment gateway. Payload
// is forwarded to the provider as-is (card token, payer data); the amount is
// always the stored sheet total.
type ChargeRequest struct {
	PaymentMethod string          `json:"paymentMethod" binding:"required"`
	Payload       json.RawMessage `json:"payload"`
}

func (r ChargeRequest) ResolveMethod() (entities.PaymentMethod, bool) {
	m := entities.PaymentMethod(strings.TrimSpace(r.PaymentMethod))
	return m, m.Valid() && !m.Deferred()
}
