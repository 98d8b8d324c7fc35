package request

import (
	"strings"

	"prevencar_vistorias/internal/domain/entities"
)

type ServiceItemRequest struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name" binding:"required"`
	Price                 float64 `json:"price"`
	Description           string  `json:"description"`
	AllowManualClientEdit bool    `json:"allowManualClientEdit"`
}

func (r ServiceItemRequest) ToEntity() entities.ServiceItem {
	return entities.ServiceItem{
		ID:                    strings.TrimSpace(r.ID),
		Name:                  strings.TrimSpace(r.Name),
		BasePrice:             r.Price,
		Description:           strings.TrimSpace(r.Description),
		AllowManualClientEdit: r.AllowManualClientEdit,
	}
}

// IndicationRequest creates or updates a referral partner. CustomPrices is
// keyed by catalog service id; keys referencing unknown services are rejected
// by the use case.
type IndicationRequest struct {
	ID           string             `json:"id"`
	Name         string             `json:"name" binding:"required"`
	Document     string             `json:"document" binding:"required"`
	Phone        string             `json:"phone"`
	Email        string             `json:"email"`
	Address      string             `json:"address"`
	CEP          string             `json:"cep"`
	Neighborhood string             `json:"neighborhood"`
	Number       string             `json:"number"`
	CustomPrices map[string]float64 `json:"customPrices"`
}

func (r IndicationRequest) ToEntity() entities.Indication {
	return entities.Indication{
		ID:           strings.TrimSpace(r.ID),
		Name:         strings.TrimSpace(r.Name),
		Document:     strings.TrimSpace(r.Document),
		Phone:        strings.TrimSpace(r.Phone),
		Email:        strings.TrimSpace(r.Email),
		Address:      strings.TrimSpace(r.Address),
		CEP:          strings.TrimSpace(r.CEP),
		Neighborhood: strings.TrimSpace(r.Neighborhood),
		Number:       strings.TrimSpace(r.Number),
		CustomPrices: r.CustomPrices,
	}
}

type UserRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

func (r UserRequest) ToEntity() entities.User {
	return entities.User{
		ID:    strings.TrimSpace(r.ID),
		Name:  strings.TrimSpace(r.Name),
		Email: strings.TrimSpace(r.Email),
		Role:  entities.Role(strings.TrimSpace(r.Role)),
	}
}

type ClosureRequest struct {
	Month string `json:"mes" binding:"required"` // AAAA-MM
}

func (r ClosureRequest) ResolveMonth() string {
	return strings.TrimSpace(r.Month)
}
