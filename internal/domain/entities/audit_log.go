package entities

import "time"

// AuditCategory classifies an audit trail entry.

type AuditCategory string

const (
	AuditFinanceiro  AuditCategory = "financeiro"
	AuditSeguranca   AuditCategory = "seguranca"
	AuditGerencial   AuditCategory = "gerencial"
	AuditOperacional AuditCategory = "operacional"
)

// AuditLog is one audit trail entry.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The save-time guards (closed period, payment on an incomplete sheet) are
// required to emit "seguranca" entries on violation; bulk payment updates emit
// "financeiro" and monthly closures "gerencial".
type AuditLog struct {
	ID          string        `json:"id"`
	Timestamp   time.Time     `json:"timestamp"`
	ActorID     string        `json:"userId"`
	ActorName   string        `json:"userName"`
	Category    AuditCategory `json:"type"`
	Description string        `json:"description"`
	Details     string        `json:"details,omitempty"`
}
