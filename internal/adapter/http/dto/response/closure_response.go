package response

import (
	"time"

	"prevencar_vistorias/internal/domain/entities"
)

type ClosureResponse struct {
	Month               string  `json:"mes"`
	Closed              bool    `json:"fechado"`
	ClosedAt            string  `json:"data_fechamento"`
	ClosedBy            string  `json:"usuario_fechou"`
	TotalValueAtClosure float64 `json:"total_valor"`
}

func FromClosure(c entities.MonthlyClosure) ClosureResponse {
	return ClosureResponse{
		Month:               c.Month,
		Closed:              c.Closed,
		ClosedAt:            c.ClosedAt,
		ClosedBy:            c.ClosedBy,
		TotalValueAtClosure: c.TotalValueAtClosure,
	}
}

func FromClosures(list []entities.MonthlyClosure) []ClosureResponse {
	out := make([]ClosureResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromClosure(c))
	}
	return out
}

type AuditLogResponse struct {
	ID          string `json:"id"`
	Timestamp   string `json:"timestamp"`
	ActorID     string `json:"userId"`
	ActorName   string `json:"userName"`
	Category    string `json:"type"`
	Description string `json:"description"`
	Details     string `json:"details,omitempty"`
}

func FromAuditLog(e entities.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:          e.ID,
		Timestamp:   e.Timestamp.UTC().Format(time.RFC3339),
		ActorID:     e.ActorID,
		ActorName:   e.ActorName,
		Category:    string(e.Category),
		Description: e.Description,
		Details:     e.Details,
	}
}

func FromAuditLogs(list []entities.AuditLog) []AuditLogResponse {
	out := make([]AuditLogResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromAuditLog(e))
	}
	return out
}
