package entities

import "time"

// InspectionStatus is the workflow position of an inspection sheet.
//
// Domain notes:
//   - "Iniciada" is the technical intake in progress.
//   - "No Caixa" means the sheet reached the cashier and awaits payment.
//   - "Concluída" is terminal: payment recorded.

type InspectionStatus string

const (
	InspectionStatusIniciada  InspectionStatus = "Iniciada"
	InspectionStatusNoCaixa   InspectionStatus = "No Caixa"
	InspectionStatusConcluida InspectionStatus = "Concluída"
)

// SheetStatus tells whether the technical intake passed the completeness gate.

type SheetStatus string

const (
	SheetStatusIncompleta SheetStatus = "Incompleta"
	SheetStatusCompleta   SheetStatus = "Completa"
)

// PaymentStatus is the billing situation of the sheet.

type PaymentStatus string

const (
	PaymentStatusAPagar PaymentStatus = "A pagar"
	PaymentStatusPago   PaymentStatus = "Pago"
)

// PaymentMethod is the settlement method chosen at the cashier.
// MethodAPagar ("A Pagar") defers payment: the sheet stays at the cashier.

type PaymentMethod string

const (
	MethodCredito  PaymentMethod = "Crédito"
	MethodDebito   PaymentMethod = "Débito"
	MethodDinheiro PaymentMethod = "Dinheiro"
	MethodPix      PaymentMethod = "Pix"
	MethodAPagar   PaymentMethod = "A Pagar"
)

// Deferred reports whether the method postpones settlement.
func (m PaymentMethod) Deferred() bool {
	return m == MethodAPagar
}

// Valid reports whether the method is one of the known settlement methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCredito, MethodDebito, MethodDinheiro, MethodPix, MethodAPagar:
		return true
	}
	return false
}

// Client is the customer snapshot embedded in an inspection at creation time.
// It is a copy, not a reference: later edits to a partner never rewrite the
// client data billed on past sheets.
type Client struct {
	Name         string `json:"name"`
	Document     string `json:"cpf"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	CEP          string `json:"cep"`
	Neighborhood string `json:"neighborhood,omitempty"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
}

// InspectionService is one charged service line on a sheet.
//
// Lines are keyed by the catalog service id; Name is a denormalized snapshot
// kept for display and exports, so renaming a catalog service never breaks
// price resolution on historical sheets. Price is the value actually charged,
// which may diverge from both the catalog and the partner rate.
type InspectionService struct {
	ServiceID string  `json:"service_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// Inspection is the central billing entity: one vehicle-inspection job.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Derived fields:
//   - TotalValue is always recomputed from the service lines plus the ad-hoc
//     line; it is never accepted from a client as-is.
//   - ReferenceMonth (mes_referencia, AAAA-MM) is derived from Date and decides
//     which monthly closure freezes the sheet.
type Inspection struct {
	ID           string `json:"id"`
	Date         string `json:"date"` // AAAA-MM-DD
	LicensePlate string `json:"licensePlate"`
	VehicleModel string `json:"vehicleModel"`

	Services                []InspectionService `json:"services"`
	OtherServiceDescription string              `json:"otherServiceDescription,omitempty"`
	OtherServicePrice       float64             `json:"otherServicePrice,omitempty"`

	Client         Client `json:"client"`
	Inspector      string `json:"inspector,omitempty"`
	IndicationID   string `json:"indicationId,omitempty"`
	IndicationName string `json:"indicationName,omitempty"`
	Observations   string `json:"observations,omitempty"`

	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
	NFe           string        `json:"nfe,omitempty"`

	TotalValue     float64          `json:"totalValue"`
	ReferenceMonth string           `json:"mes_referencia"` // AAAA-MM
	SheetStatus    SheetStatus      `json:"status_ficha"`
	PaymentStatus  PaymentStatus    `json:"status_pagamento"`
	PaymentDate    string           `json:"data_pagamento,omitempty"` // AAAA-MM-DD
	Status         InspectionStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReferenceMonthOf derives the AAAA-MM billing period from an AAAA-MM-DD date.
func ReferenceMonthOf(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}
