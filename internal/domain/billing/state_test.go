package billing

import (
	"errors"
	"testing"
	"time"

	"prevencar_vistorias/internal/domain/entities"
)

var testNow = time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

func completeSheet() entities.Inspection {
	i := NewSheet("2024-06-15")
	i.LicensePlate = "ABC1D23"
	i.VehicleModel = "Fiat Argo"
	i.Client = entities.Client{Name: "João da Silva", Document: "123.456.789-00"}
	i.Services = []entities.InspectionService{{ServiceID: "svc1", Name: "Laudo Cautelar", Price: 250}}
	return i
}

func TestValidateIntake(t *testing.T) {
	t.Run("complete sheet passes", func(t *testing.T) {
		if err := ValidateIntake(completeSheet()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty plate rejected regardless of other fields", func(t *testing.T) {
		i := completeSheet()
		i.LicensePlate = "   "
		if err := ValidateIntake(i); !errors.Is(err, ErrIncompleteIntake) {
			t.Fatalf("expected ErrIncompleteIntake, got %v", err)
		}
	})

	t.Run("missing vehicle model rejected", func(t *testing.T) {
		i := completeSheet()
		i.VehicleModel = ""
		if err := ValidateIntake(i); !errors.Is(err, ErrIncompleteIntake) {
			t.Fatalf("expected ErrIncompleteIntake, got %v", err)
		}
	})

	t.Run("missing client document rejected", func(t *testing.T) {
		i := completeSheet()
		i.Client.Document = ""
		if err := ValidateIntake(i); !errors.Is(err, ErrIncompleteIntake) {
			t.Fatalf("expected ErrIncompleteIntake, got %v", err)
		}
	})

	t.Run("no services and no other price rejected", func(t *testing.T) {
		i := completeSheet()
		i.Services = nil
		i.OtherServicePrice = 0
		if err := ValidateIntake(i); !errors.Is(err, ErrIncompleteIntake) {
			t.Fatalf("expected ErrIncompleteIntake, got %v", err)
		}
	})

	t.Run("positive other price alone satisfies the gate", func(t *testing.T) {
		i := completeSheet()
		i.Services = nil
		i.OtherServicePrice = 50
		if err := ValidateIntake(i); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestApplyIntakeSave(t *testing.T) {
	t.Run("moves sheet to cashier with derived fields", func(t *testing.T) {
		out, err := ApplyIntakeSave(completeSheet(), testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.InspectionStatusNoCaixa {
			t.Fatalf("expected No Caixa, got %s", out.Status)
		}
		if out.SheetStatus != entities.SheetStatusCompleta {
			t.Fatalf("expected Completa, got %s", out.SheetStatus)
		}
		if out.PaymentStatus != entities.PaymentStatusAPagar {
			t.Fatalf("expected A pagar, got %s", out.PaymentStatus)
		}
		if out.TotalValue != 250 {
			t.Fatalf("expected total 250, got %v", out.TotalValue)
		}
		if out.ReferenceMonth != "2024-06" {
			t.Fatalf("expected 2024-06, got %s", out.ReferenceMonth)
		}
	})

	t.Run("gate failure leaves nothing to persist", func(t *testing.T) {
		i := completeSheet()
		i.LicensePlate = ""
		if _, err := ApplyIntakeSave(i, testNow); !errors.Is(err, ErrIncompleteIntake) {
			t.Fatalf("expected ErrIncompleteIntake, got %v", err)
		}
	})

	t.Run("total includes other service line", func(t *testing.T) {
		i := completeSheet()
		i.OtherServiceDescription = "Cópia de documento"
		i.OtherServicePrice = 50
		out, err := ApplyIntakeSave(i, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TotalValue != 300 {
			t.Fatalf("expected total 300, got %v", out.TotalValue)
		}
	})
}

func TestApplyBillingSave(t *testing.T) {
	t.Run("concrete method settles the sheet", func(t *testing.T) {
		out, err := ApplyBillingSave(completeSheet(), entities.MethodPix, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.InspectionStatusConcluida {
			t.Fatalf("expected Concluída, got %s", out.Status)
		}
		if out.PaymentStatus != entities.PaymentStatusPago {
			t.Fatalf("expected Pago, got %s", out.PaymentStatus)
		}
		if out.PaymentDate != "2024-06-15" {
			t.Fatalf("expected payment date stamped, got %q", out.PaymentDate)
		}
	})

	t.Run("deferred method keeps sheet at cashier", func(t *testing.T) {
		out, err := ApplyBillingSave(completeSheet(), entities.MethodAPagar, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.InspectionStatusNoCaixa {
			t.Fatalf("expected No Caixa, got %s", out.Status)
		}
		if out.PaymentStatus != entities.PaymentStatusAPagar {
			t.Fatalf("expected A pagar, got %s", out.PaymentStatus)
		}
		if out.PaymentDate != "" {
			t.Fatalf("expected no payment date, got %q", out.PaymentDate)
		}
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		if _, err := ApplyBillingSave(completeSheet(), "Cheque", testNow); !errors.Is(err, ErrInvalidMethod) {
			t.Fatalf("expected ErrInvalidMethod, got %v", err)
		}
	})

	t.Run("incomplete sheet cannot be billed", func(t *testing.T) {
		i := completeSheet()
		i.Client.Name = ""
		if _, err := ApplyBillingSave(i, entities.MethodDinheiro, testNow); !errors.Is(err, ErrIncompleteIntake) {
			t.Fatalf("expected ErrIncompleteIntake, got %v", err)
		}
	})
}

func TestApplyBulkUpdate(t *testing.T) {
	t.Run("concrete method settles the sheet", func(t *testing.T) {
		method := entities.MethodPix
		sheet := completeSheet()
		sheet.Status = entities.InspectionStatusNoCaixa
		out := ApplyBulkUpdate(sheet, BulkUpdates{PaymentMethod: &method}, testNow)
		if out.Status != entities.InspectionStatusConcluida {
			t.Fatalf("expected Concluída, got %s", out.Status)
		}
		if out.PaymentStatus != entities.PaymentStatusPago {
			t.Fatalf("expected Pago, got %s", out.PaymentStatus)
		}
		if out.PaymentDate != "2024-06-15" {
			t.Fatalf("expected date stamp, got %q", out.PaymentDate)
		}
	})

	t.Run("status Concluída marks paid", func(t *testing.T) {
		status := entities.InspectionStatusConcluida
		out := ApplyBulkUpdate(completeSheet(), BulkUpdates{Status: &status}, testNow)
		if out.PaymentStatus != entities.PaymentStatusPago || out.Status != entities.InspectionStatusConcluida {
			t.Fatalf("unexpected state: %s/%s", out.Status, out.PaymentStatus)
		}
	})

	t.Run("deferred method returns the sheet to the cashier unpaid", func(t *testing.T) {
		method := entities.MethodAPagar
		sheet := completeSheet()
		sheet.Status = entities.InspectionStatusConcluida
		sheet.PaymentStatus = entities.PaymentStatusPago
		sheet.PaymentDate = "2024-06-10"
		out := ApplyBulkUpdate(sheet, BulkUpdates{PaymentMethod: &method}, testNow)
		if out.Status != entities.InspectionStatusNoCaixa {
			t.Fatalf("expected No Caixa, got %s", out.Status)
		}
		if out.PaymentStatus != entities.PaymentStatusAPagar {
			t.Fatalf("expected A pagar, got %s", out.PaymentStatus)
		}
		if out.PaymentDate != "" {
			t.Fatalf("expected no date stamp, got %q", out.PaymentDate)
		}
	})
}

func TestCheckPersistable(t *testing.T) {
	t.Run("paid incomplete combination rejected", func(t *testing.T) {
		i := completeSheet()
		i.PaymentStatus = entities.PaymentStatusPago
		i.SheetStatus = entities.SheetStatusIncompleta
		if err := CheckPersistable(i); !errors.Is(err, ErrPaymentOnIncomplete) {
			t.Fatalf("expected ErrPaymentOnIncomplete, got %v", err)
		}
	})

	t.Run("paid complete passes", func(t *testing.T) {
		i := completeSheet()
		i.PaymentStatus = entities.PaymentStatusPago
		i.SheetStatus = entities.SheetStatusCompleta
		if err := CheckPersistable(i); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
