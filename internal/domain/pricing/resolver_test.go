package pricing

import (
	"testing"

	"prevencar_vistorias/internal/domain/entities"
)

func TestResolvePrice(t *testing.T) {
	svc := entities.ServiceItem{ID: "svc1", Name: "Laudo de Transferência", BasePrice: 100}

	t.Run("no partner uses base price", func(t *testing.T) {
		if got := ResolvePrice(svc, nil); got != 100 {
			t.Fatalf("expected 100, got %v", got)
		}
	})

	t.Run("partner custom price wins", func(t *testing.T) {
		partner := &entities.Indication{ID: "p1", CustomPrices: map[string]float64{"svc1": 80}}
		if got := ResolvePrice(svc, partner); got != 80 {
			t.Fatalf("expected 80, got %v", got)
		}
	})

	t.Run("partner without entry falls back to base", func(t *testing.T) {
		partner := &entities.Indication{ID: "p1", CustomPrices: map[string]float64{"other": 999}}
		if got := ResolvePrice(svc, partner); got != 100 {
			t.Fatalf("expected 100, got %v", got)
		}
	})

	t.Run("zero custom price is ignored", func(t *testing.T) {
		partner := &entities.Indication{ID: "p1", CustomPrices: map[string]float64{"svc1": 0}}
		if got := ResolvePrice(svc, partner); got != 100 {
			t.Fatalf("expected 100, got %v", got)
		}
	})

	t.Run("unknown service prices at zero", func(t *testing.T) {
		if got := ResolvePrice(entities.ServiceItem{}, nil); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})
}

func TestSeedLines(t *testing.T) {
	catalog := map[string]entities.ServiceItem{
		"svc1": {ID: "svc1", Name: "Laudo Cautelar", BasePrice: 250},
		"svc2": {ID: "svc2", Name: "Pesquisa", BasePrice: 50},
	}
	lines := []entities.InspectionService{
		{ServiceID: "svc1"},
		{ServiceID: "svc2", Name: "Pesquisa", Price: 40},
		{ServiceID: "gone", Name: "Serviço Removido", Price: 30},
	}

	partner := &entities.Indication{ID: "p1", CustomPrices: map[string]float64{"svc1": 200}}
	out := SeedLines(lines, catalog, partner)

	if out[0].Price != 200 || out[0].Name != "Laudo Cautelar" {
		t.Fatalf("expected svc1 seeded with partner price and catalog name, got %+v", out[0])
	}
	if out[1].Price != 40 {
		t.Fatalf("expected operator-set price kept, got %v", out[1].Price)
	}
	if out[2].Price != 30 || out[2].Name != "Serviço Removido" {
		t.Fatalf("expected unknown line untouched, got %+v", out[2])
	}

	// Input slice must not be mutated.
	if lines[0].Price != 0 {
		t.Fatalf("input slice mutated: %v", lines[0].Price)
	}
}
