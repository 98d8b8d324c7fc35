package request

import (
	"testing"

	"prevencar_vistorias/internal/domain/entities"
)

func TestInspectionRequest_ToEntity(t *testing.T) {
	r := InspectionRequest{
		ID:           " insp-1 ",
		Date:         "2024-06-10",
		LicensePlate: " abc1d23 ",
		VehicleModel: " Gol 1.0 ",
		Services: []ServiceLineRequest{
			{ServiceID: " svc-1 ", Price: 120},
			{ServiceID: "svc-2"},
		},
		Client:       ClientRequest{Name: " Maria ", Document: " 123.456.789-00 "},
		IndicationID: " ind-1 ",
	}

	got := r.ToEntity()
	if got.ID != "insp-1" || got.LicensePlate != "ABC1D23" || got.VehicleModel != "Gol 1.0" {
		t.Fatalf("unexpected entity: %+v", got)
	}
	if len(got.Services) != 2 || got.Services[0].ServiceID != "svc-1" || got.Services[0].Price != 120 {
		t.Fatalf("unexpected services: %+v", got.Services)
	}
	if got.Services[1].Price != 0 {
		t.Fatalf("expected zero price left for server-side seeding, got %v", got.Services[1].Price)
	}
	if got.Client.Name != "Maria" || got.Client.Document != "123.456.789-00" {
		t.Fatalf("unexpected client: %+v", got.Client)
	}
	if got.IndicationID != "ind-1" {
		t.Fatalf("unexpected indication id: %q", got.IndicationID)
	}
}

func TestBillingRequest_ResolveMethod(t *testing.T) {
	r := BillingRequest{PaymentMethod: " Pix "}
	m, ok := r.ResolveMethod()
	if !ok || m != entities.MethodPix {
		t.Fatalf("expected Pix, got %q ok=%v", m, ok)
	}

	r2 := BillingRequest{PaymentMethod: "Cheque"}
	if _, ok := r2.ResolveMethod(); ok {
		t.Fatalf("expected unknown method to be rejected")
	}
}

func TestBulkUpdateRequest_ResolveUpdates(t *testing.T) {
	status := "Concluída"
	method := "Dinheiro"

	r := BulkUpdateRequest{IDs: []string{" a ", "", "b"}, Status: &status, PaymentMethod: &method}
	if got := r.ResolveIDs(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected ids: %v", got)
	}
	u, ok := r.ResolveUpdates()
	if !ok || u.Status == nil || *u.Status != entities.InspectionStatusConcluida {
		t.Fatalf("unexpected status update: %+v ok=%v", u, ok)
	}
	if u.PaymentMethod == nil || *u.PaymentMethod != entities.MethodDinheiro {
		t.Fatalf("unexpected method update: %+v", u)
	}

	bad := "Arquivada"
	if _, ok := (BulkUpdateRequest{IDs: []string{"a"}, Status: &bad}).ResolveUpdates(); ok {
		t.Fatalf("expected unknown status to be rejected")
	}

	if _, ok := (BulkUpdateRequest{IDs: []string{"a"}}).ResolveUpdates(); ok {
		t.Fatalf("expected empty update to be rejected")
	}
}

func TestChargeRequest_ResolveMethod(t *testing.T) {
	if _, ok := (ChargeRequest{PaymentMethod: "A Pagar"}).ResolveMethod(); ok {
		t.Fatalf("expected deferred method to be rejected")
	}
	m, ok := (ChargeRequest{PaymentMethod: "Crédito"}).ResolveMethod()
	if !ok || m != entities.MethodCredito {
		t.Fatalf("expected Crédito, got %q ok=%v", m, ok)
	}
}
