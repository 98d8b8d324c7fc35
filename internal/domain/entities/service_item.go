package entities

// ServiceItem is one catalog entry of the inspection price list.
//
// Storage model (DynamoDB):
//   - PK: id
//
// BasePrice is the list price; partners may carry a per-service override and
// the cashier may still adjust the charged value on the sheet itself when
// AllowManualClientEdit is set.
type ServiceItem struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	BasePrice             float64 `json:"price"`
	Description           string  `json:"description"`
	AllowManualClientEdit bool    `json:"allowManualClientEdit,omitempty"`
}
