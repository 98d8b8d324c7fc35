package entities

// MonthlyClosure freezes every inspection of one reference month.
//
// Storage model (DynamoDB):
//   - PK: mes (AAAA-MM)
//
// Keying the table by month makes the closure usable as a ConditionCheck
// target inside the same TransactWriteItems call that mutates inspections, and
// enforces at most one closure per month. Closing is a one-way ratchet: there
// is no reopen operation and closure records are never updated or deleted.
//
// TotalValueAtClosure is a snapshot of the month's billed total at the moment
// of closing, not a live aggregate.
type MonthlyClosure struct {
	Month               string  `json:"mes"` // AAAA-MM
	Closed              bool    `json:"fechado"`
	ClosedAt            string  `json:"data_fechamento"` // AAAA-MM-DD
	ClosedBy            string  `json:"usuario_fechou"`
	TotalValueAtClosure float64 `json:"total_valor"`
}
