package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"prevencar_vistorias/internal/adapter/http/handlers/mocks"
	"prevencar_vistorias/internal/domain/entities"
	"prevencar_vistorias/internal/usecase"
	mock_interfaces "prevencar_vistorias/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	inspections *mocks.MockIInspectionUseCase
	gateway     *mock_interfaces.MockIPaymentGateway
	audit       *mock_interfaces.MockIAuditLogRepository
}

func newPaymentUseCaseWithMocks(ctrl *gomock.Controller) (*usecase.PaymentUseCase, paymentMocks) {
	m := paymentMocks{
		inspections: mocks.NewMockIInspectionUseCase(ctrl),
		gateway:     mock_interfaces.NewMockIPaymentGateway(ctrl),
		audit:       mock_interfaces.NewMockIAuditLogRepository(ctrl),
	}
	return usecase.NewPaymentUseCase(m.inspections, m.gateway, m.audit), m
}

func chargeableSheet() entities.Inspection {
	return entities.Inspection{
		ID:             "insp-1",
		Date:           "2024-06-10",
		ReferenceMonth: "2024-06",
		LicensePlate:   "ABC1D23",
		TotalValue:     150,
		Status:         entities.InspectionStatusNoCaixa,
		SheetStatus:    entities.SheetStatusCompleta,
		PaymentStatus:  entities.PaymentStatusAPagar,
	}
}

func TestPaymentUseCase_ChargeInspection(t *testing.T) {
	actor := entities.User{ID: "u-1", Name: "Ana", Role: entities.RoleFinanceiro}

	t.Run("approved charge settles the sheet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCaseWithMocks(ctrl)

		settled := chargeableSheet()
		settled.Status = entities.InspectionStatusConcluida
		settled.PaymentStatus = entities.PaymentStatusPago
		settled.PaymentDate = "2024-06-10"

		m.inspections.EXPECT().GetByID(gomock.Any(), "insp-1").Return(chargeableSheet(), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("invalid payload: %v", err)
				}
				if req["transaction_amount"] != 150.0 {
					t.Fatalf("expected stored total as amount, got %v", req["transaction_amount"])
				}
				if req["external_reference"] != "insp-1" {
					t.Fatalf("expected sheet id reference, got %v", req["external_reference"])
				}
				return "mp-123", "approved", json.RawMessage(`{}`), nil
			})
		m.inspections.EXPECT().SaveBilling(gomock.Any(), actor, usecase.BillingCommand{ID: "insp-1", PaymentMethod: entities.MethodPix}).Return(settled, nil)
		m.audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		updated, err := uc.ChargeInspection(context.Background(), actor, usecase.ChargeCommand{InspectionID: "insp-1", PaymentMethod: entities.MethodPix})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.PaymentStatus != entities.PaymentStatusPago {
			t.Fatalf("expected settled sheet, got %+v", updated)
		}
	})

	t.Run("caller cannot override the charged amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCaseWithMocks(ctrl)

		m.inspections.EXPECT().GetByID(gomock.Any(), "insp-1").Return(chargeableSheet(), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("invalid payload: %v", err)
				}
				if req["transaction_amount"] != 150.0 {
					t.Fatalf("expected amount forced to stored total, got %v", req["transaction_amount"])
				}
				return "mp-124", "approved", nil, nil
			})
		m.inspections.EXPECT().SaveBilling(gomock.Any(), actor, gomock.Any()).Return(chargeableSheet(), nil)
		m.audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.ChargeInspection(context.Background(), actor, usecase.ChargeCommand{
			InspectionID:  "insp-1",
			PaymentMethod: entities.MethodCredito,
			Payload:       json.RawMessage(`{"transaction_amount": 1}`),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("provider rejection leaves the sheet untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCaseWithMocks(ctrl)

		m.inspections.EXPECT().GetByID(gomock.Any(), "insp-1").Return(chargeableSheet(), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-125", "rejected", nil, nil)

		_, err := uc.ChargeInspection(context.Background(), actor, usecase.ChargeCommand{InspectionID: "insp-1", PaymentMethod: entities.MethodPix})
		if !errors.Is(err, usecase.ErrChargeNotApproved) {
			t.Fatalf("expected ErrChargeNotApproved, got %v", err)
		}
	})

	t.Run("already paid sheet not chargeable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCaseWithMocks(ctrl)

		paid := chargeableSheet()
		paid.PaymentStatus = entities.PaymentStatusPago

		m.inspections.EXPECT().GetByID(gomock.Any(), "insp-1").Return(paid, nil)

		_, err := uc.ChargeInspection(context.Background(), actor, usecase.ChargeCommand{InspectionID: "insp-1", PaymentMethod: entities.MethodPix})
		if !errors.Is(err, usecase.ErrSheetNotChargeable) {
			t.Fatalf("expected ErrSheetNotChargeable, got %v", err)
		}
	})

	t.Run("deferred method rejected", func(t *testing.T) {
		uc, _ := newPaymentUseCaseWithMocks(gomock.NewController(t))

		_, err := uc.ChargeInspection(context.Background(), actor, usecase.ChargeCommand{InspectionID: "insp-1", PaymentMethod: entities.MethodAPagar})
		if !errors.Is(err, usecase.ErrDeferredCharge) {
			t.Fatalf("expected ErrDeferredCharge, got %v", err)
		}
	})

	t.Run("nil gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inspections := mocks.NewMockIInspectionUseCase(ctrl)
		audit := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := usecase.NewPaymentUseCase(inspections, nil, audit)

		_, err := uc.ChargeInspection(context.Background(), actor, usecase.ChargeCommand{InspectionID: "insp-1", PaymentMethod: entities.MethodPix})
		if !errors.Is(err, usecase.ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})
}
