package response

import (
	"time"

	"prevencar_vistorias/internal/domain/entities"
)

type ClientResponse struct {
	Name         string `json:"name"`
	Document     string `json:"cpf"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	CEP          string `json:"cep"`
	Neighborhood string `json:"neighborhood,omitempty"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
}

type ServiceLineResponse struct {
	ServiceID string  `json:"service_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

type InspectionResponse struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	LicensePlate string `json:"licensePlate"`
	VehicleModel string `json:"vehicleModel"`

	Services                []ServiceLineResponse `json:"services"`
	OtherServiceDescription string                `json:"otherServiceDescription,omitempty"`
	OtherServicePrice       float64               `json:"otherServicePrice,omitempty"`

	Client         ClientResponse `json:"client"`
	Inspector      string         `json:"inspector,omitempty"`
	IndicationID   string         `json:"indicationId,omitempty"`
	IndicationName string         `json:"indicationName,omitempty"`
	Observations   string         `json:"observations,omitempty"`

	PaymentMethod string `json:"paymentMethod,omitempty"`
	NFe           string `json:"nfe,omitempty"`

	TotalValue     float64 `json:"totalValue"`
	ReferenceMonth string  `json:"mes_referencia"`
	SheetStatus    string  `json:"status_ficha"`
	PaymentStatus  string  `json:"status_pagamento"`
	PaymentDate    string  `json:"data_pagamento,omitempty"`
	Status         string  `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromInspection(i entities.Inspection) InspectionResponse {
	lines := make([]ServiceLineResponse, 0, len(i.Services))
	for _, s := range i.Services {
		lines = append(lines, ServiceLineResponse{ServiceID: s.ServiceID, Name: s.Name, Price: s.Price})
	}

	return InspectionResponse{
		ID:                      i.ID,
		Date:                    i.Date,
		LicensePlate:            i.LicensePlate,
		VehicleModel:            i.VehicleModel,
		Services:                lines,
		OtherServiceDescription: i.OtherServiceDescription,
		OtherServicePrice:       i.OtherServicePrice,
		Client: ClientResponse{
			Name:         i.Client.Name,
			Document:     i.Client.Document,
			Phone:        i.Client.Phone,
			Address:      i.Client.Address,
			CEP:          i.Client.CEP,
			Neighborhood: i.Client.Neighborhood,
			Number:       i.Client.Number,
			Complement:   i.Client.Complement,
		},
		Inspector:      i.Inspector,
		IndicationID:   i.IndicationID,
		IndicationName: i.IndicationName,
		Observations:   i.Observations,
		PaymentMethod:  string(i.PaymentMethod),
		NFe:            i.NFe,
		TotalValue:     i.TotalValue,
		ReferenceMonth: i.ReferenceMonth,
		SheetStatus:    string(i.SheetStatus),
		PaymentStatus:  string(i.PaymentStatus),
		PaymentDate:    i.PaymentDate,
		Status:         string(i.Status),
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

func FromInspections(list []entities.Inspection) []InspectionResponse {
	out := make([]InspectionResponse, 0, len(list))
	for _, i := range list {
		out = append(out, FromInspection(i))
	}
	return out
}
