package entities

// Role is the coarse permission level of a user.
//
// Authorization is enforced server-side in the use cases (closing a month
// requires admin or financeiro); the UI hiding a button is not a boundary.

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleFinanceiro  Role = "financeiro"
	RoleVistoriador Role = "vistoriador"
)

// CanCloseMonth reports whether the role may process a monthly closure.
func (r Role) CanCloseMonth() bool {
	return r == RoleAdmin || r == RoleFinanceiro
}

// User is an operator of the system.
//
// Storage model (DynamoDB):
//   - PK: id
//
// No credential material lives here: authentication and token issuance happen
// in an upstream identity service, which forwards the resolved user id.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
