package entities

// Indication is a partner/referral organization that sends clients, optionally
// with negotiated per-service pricing.
//
// Storage model (DynamoDB):
//   - PK: id
//
// CustomPrices maps catalog service id to the negotiated unit price. Absence of
// a key means "charge the catalog price". Keys must reference existing catalog
// service ids; the catalog use case validates this on save.
type Indication struct {
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
