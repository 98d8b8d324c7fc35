package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"prevencar_vistorias/internal/adapter/http/handlers/mocks"
	"prevencar_vistorias/internal/domain/billing"
	"prevencar_vistorias/internal/domain/entities"
	"prevencar_vistorias/internal/usecase"
	"prevencar_vistorias/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var handlerActor = entities.User{ID: "u-1", Name: "Ana", Role: entities.RoleVistoriador}

// withActor injects a resolved actor the way ActorResolver would.
func withActor(actor entities.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorContextKey, actor)
		c.Next()
	}
}

const intakeBody = `{"licensePlate":"abc1d23","vehicleModel":"Gol 1.0","client":{"name":"Maria","cpf":"123.456.789-00"},"services":[{"service_id":"svc-1"}]}`

func TestInspectionHandler_SaveIntake(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.POST("/v1/inspections", h.SaveIntake)

		req := httptest.NewRequest(http.MethodPost, "/v1/inspections", bytes.NewBufferString(intakeBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.POST("/v1/inspections", withActor(handlerActor), h.SaveIntake)

		req := httptest.NewRequest(http.MethodPost, "/v1/inspections", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.POST("/v1/inspections", withActor(handlerActor), h.SaveIntake)

		uc.EXPECT().SaveIntake(gomock.Any(), handlerActor, gomock.Any()).DoAndReturn(
			func(_ any, _ entities.User, sheet entities.Inspection) (entities.Inspection, error) {
				if sheet.LicensePlate != "ABC1D23" {
					t.Fatalf("expected uppercased plate, got %q", sheet.LicensePlate)
				}
				sheet.ID = "insp-1"
				sheet.Status = entities.InspectionStatusNoCaixa
				return sheet, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/inspections", bytes.NewBufferString(intakeBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "insp-1" || body["status"] != "No Caixa" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("edit returns 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.POST("/v1/inspections", withActor(handlerActor), h.SaveIntake)

		uc.EXPECT().SaveIntake(gomock.Any(), handlerActor, gomock.Any()).DoAndReturn(
			func(_ any, _ entities.User, sheet entities.Inspection) (entities.Inspection, error) { return sheet, nil })

		req := httptest.NewRequest(http.MethodPost, "/v1/inspections", bytes.NewBufferString(`{"id":"insp-1","licensePlate":"abc1d23","vehicleModel":"Gol","client":{"name":"Maria","cpf":"1"},"services":[{"service_id":"svc-1"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("closed month mapped to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.POST("/v1/inspections", withActor(handlerActor), h.SaveIntake)

		uc.EXPECT().SaveIntake(gomock.Any(), handlerActor, gomock.Any()).Return(entities.Inspection{}, interfaces.ErrPeriodClosed)

		req := httptest.NewRequest(http.MethodPost, "/v1/inspections", bytes.NewBufferString(intakeBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "PERIOD_CLOSED" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})
}

func TestInspectionHandler_SaveBilling(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/inspections/:id/billing", withActor(handlerActor), h.SaveBilling)

		uc.EXPECT().SaveBilling(gomock.Any(), handlerActor, usecase.BillingCommand{ID: "insp-1", PaymentMethod: entities.MethodPix, NFe: "nfe-9"}).
			Return(entities.Inspection{ID: "insp-1", Status: entities.InspectionStatusConcluida, PaymentStatus: entities.PaymentStatusPago}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/inspections/insp-1/billing", bytes.NewBufferString(`{"paymentMethod":"Pix","nfe":"nfe-9"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/inspections/:id/billing", withActor(handlerActor), h.SaveBilling)

		req := httptest.NewRequest(http.MethodPatch, "/v1/inspections/insp-1/billing", bytes.NewBufferString(`{"paymentMethod":"Cheque"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("incomplete sheet mapped to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/inspections/:id/billing", withActor(handlerActor), h.SaveBilling)

		uc.EXPECT().SaveBilling(gomock.Any(), handlerActor, gomock.Any()).Return(entities.Inspection{}, billing.ErrIncompleteIntake)

		req := httptest.NewRequest(http.MethodPatch, "/v1/inspections/insp-1/billing", bytes.NewBufferString(`{"paymentMethod":"Pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestInspectionHandler_BulkUpdate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/inspections/bulk", withActor(handlerActor), h.BulkUpdate)

		uc.EXPECT().BulkUpdate(gomock.Any(), handlerActor, []string{"a", "b"}, gomock.Any()).
			Return([]entities.Inspection{{ID: "a"}, {ID: "b"}}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/inspections/bulk", bytes.NewBufferString(`{"ids":["a","b"],"paymentMethod":"Dinheiro"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown status value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/inspections/bulk", withActor(handlerActor), h.BulkUpdate)

		req := httptest.NewRequest(http.MethodPatch, "/v1/inspections/bulk", bytes.NewBufferString(`{"ids":["a"],"status":"Arquivada"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestInspectionHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInspectionUseCase(ctrl)
	h := NewInspectionHandler(uc)

	r := gin.New()
	r.GET("/v1/inspections", h.Search)

	uc.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, q usecase.SearchQuery) ([]entities.Inspection, error) {
			if q.StartDate != "2024-06-01" || q.IndicationID != "ind-1" {
				t.Fatalf("unexpected filter: %+v", q.Filter)
			}
			if q.MinTotal == nil || *q.MinTotal != 100 {
				t.Fatalf("expected min total 100, got %+v", q.MinTotal)
			}
			return []entities.Inspection{}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/v1/inspections?startDate=2024-06-01&indicationId=ind-1&minTotal=100", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "[]" {
		t.Fatalf("expected empty array body, got %s", w.Body.String())
	}
}

func TestMapInspectionError(t *testing.T) {
	if got := mapInspectionError(usecase.ErrInvalidInspectionID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapInspectionError(billing.ErrIncompleteIntake); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapInspectionError(billing.ErrPaymentOnIncomplete); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapInspectionError(interfaces.ErrPeriodClosed); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapInspectionError(usecase.ErrInspectionNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapInspectionError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
