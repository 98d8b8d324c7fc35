package response

import (
	"prevencar_vistorias/internal/domain/entities"
)

type ServiceItemResponse struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	Price                 float64 `json:"price"`
	Description           string  `json:"description"`
	AllowManualClientEdit bool    `json:"allowManualClientEdit,omitempty"`
}

func FromServiceItem(s entities.ServiceItem) ServiceItemResponse {
	return ServiceItemResponse{
		ID:                    s.ID,
		Name:                  s.Name,
		Price:                 s.BasePrice,
		Description:           s.Description,
		AllowManualClientEdit: s.AllowManualClientEdit,
	}
}

func FromServiceItems(list []entities.ServiceItem) []ServiceItemResponse {
	out := make([]ServiceItemResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromServiceItem(s))
	}
	return out
}

type IndicationResponse struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Document     string             `json:"document"`
	Phone        string             `json:"phone"`
	Email        string             `json:"email"`
	Address      string             `json:"address,omitempty"`
	CEP          string             `json:"cep,omitempty"`
	Neighborhood string             `json:"neighborhood,omitempty"`
	Number       string             `json:"number,omitempty"`
	CustomPrices map[string]float64 `json:"customPrices,omitempty"`
}

func FromIndication(i entities.Indication) IndicationResponse {
	return IndicationResponse{
		ID:           i.ID,
		Name:         i.Name,
		Document:     i.Document,
		Phone:        i.Phone,
		Email:        i.Email,
		Address:      i.Address,
		CEP:          i.CEP,
		Neighborhood: i.Neighborhood,
		Number:       i.Number,
		CustomPrices: i.CustomPrices,
	}
}

func FromIndications(list []entities.Indication) []IndicationResponse {
	out := make([]IndicationResponse, 0, len(list))
	for _, i := range list {
		out = append(out, FromIndication(i))
	}
	return out
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role)}
}

func FromUsers(list []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, FromUser(u))
	}
	return out
}
