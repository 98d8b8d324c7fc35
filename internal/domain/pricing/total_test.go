package pricing

import (
	"testing"

	"prevencar_vistorias/internal/domain/entities"
)

func TestComputeTotal(t *testing.T) {
	t.Run("single service no partner", func(t *testing.T) {
		lines := []entities.InspectionService{{ServiceID: "svc1", Name: "Laudo de Transferência", Price: 100}}
		if got := ComputeTotal(lines, 0); got != 100 {
			t.Fatalf("expected 100.00, got %v", got)
		}
	})

	t.Run("only other service", func(t *testing.T) {
		if got := ComputeTotal(nil, 50); got != 50 {
			t.Fatalf("expected 50, got %v", got)
		}
	})

	t.Run("lines plus other", func(t *testing.T) {
		lines := []entities.InspectionService{
			{ServiceID: "svc1", Price: 80},
			{ServiceID: "svc2", Price: 50},
		}
		if got := ComputeTotal(lines, 25.5); got != 155.5 {
			t.Fatalf("expected 155.5, got %v", got)
		}
	})

	t.Run("negative other counts as zero", func(t *testing.T) {
		lines := []entities.InspectionService{{ServiceID: "svc1", Price: 100}}
		if got := ComputeTotal(lines, -10); got != 100 {
			t.Fatalf("expected 100, got %v", got)
		}
	})

	t.Run("empty inputs yield zero", func(t *testing.T) {
		if got := ComputeTotal(nil, 0); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})

	t.Run("idempotent for unchanged inputs", func(t *testing.T) {
		lines := []entities.InspectionService{{ServiceID: "svc1", Price: 42}}
		first := ComputeTotal(lines, 8)
		second := ComputeTotal(lines, 8)
		if first != second || first != 50 {
			t.Fatalf("expected stable 50, got %v then %v", first, second)
		}
	})
}
