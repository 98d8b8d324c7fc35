package usecase

import (
	"context"
	"errors"
	"testing"

	"prevencar_vistorias/internal/domain/entities"
	mock_interfaces "prevencar_vistorias/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newCatalogUseCaseWithMocks(ctrl *gomock.Controller) (*CatalogUseCase, *mock_interfaces.MockIServiceRepository, *mock_interfaces.MockIIndicationRepository) {
	services := mock_interfaces.NewMockIServiceRepository(ctrl)
	indications := mock_interfaces.NewMockIIndicationRepository(ctrl)
	return NewCatalogUseCase(services, indications), services, indications
}

func TestCatalogUseCase_SaveService(t *testing.T) {
	t.Run("generates an id for a new service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, services, _ := newCatalogUseCaseWithMocks(ctrl)

		services.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.ServiceItem) (entities.ServiceItem, error) {
				if s.ID == "" {
					t.Fatalf("expected generated id")
				}
				return s, nil
			})

		saved, err := uc.SaveService(context.Background(), entities.ServiceItem{Name: "  Vistoria Cautelar  ", BasePrice: 150})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Name != "Vistoria Cautelar" {
			t.Fatalf("expected trimmed name, got %q", saved.Name)
		}
	})

	t.Run("rejects blank name and negative price", func(t *testing.T) {
		uc, _, _ := newCatalogUseCaseWithMocks(gomock.NewController(t))

		if _, err := uc.SaveService(context.Background(), entities.ServiceItem{Name: "   "}); !errors.Is(err, ErrInvalidServiceItem) {
			t.Fatalf("expected ErrInvalidServiceItem, got %v", err)
		}
		if _, err := uc.SaveService(context.Background(), entities.ServiceItem{Name: "Laudo", BasePrice: -1}); !errors.Is(err, ErrInvalidServiceItem) {
			t.Fatalf("expected ErrInvalidServiceItem, got %v", err)
		}
	})
}

func TestCatalogUseCase_SaveIndication(t *testing.T) {
	t.Run("accepts custom prices over known services", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, services, indications := newCatalogUseCaseWithMocks(ctrl)

		services.EXPECT().List(gomock.Any()).Return([]entities.ServiceItem{{ID: "svc-1", Name: "Cautelar", BasePrice: 150}}, nil)
		indications.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ind entities.Indication) (entities.Indication, error) { return ind, nil })

		saved, err := uc.SaveIndication(context.Background(), entities.Indication{
			Name:         "Despachante Silva",
			Document:     "12.345.678/0001-00",
			CustomPrices: map[string]float64{"svc-1": 80},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("custom price over unknown service rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, services, _ := newCatalogUseCaseWithMocks(ctrl)

		services.EXPECT().List(gomock.Any()).Return([]entities.ServiceItem{{ID: "svc-1"}}, nil)

		_, err := uc.SaveIndication(context.Background(), entities.Indication{
			Name:         "Despachante Silva",
			Document:     "12.345.678/0001-00",
			CustomPrices: map[string]float64{"ghost": 80},
		})
		if !errors.Is(err, ErrUnknownCustomPrice) {
			t.Fatalf("expected ErrUnknownCustomPrice, got %v", err)
		}
	})

	t.Run("negative custom price rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, services, _ := newCatalogUseCaseWithMocks(ctrl)

		services.EXPECT().List(gomock.Any()).Return([]entities.ServiceItem{{ID: "svc-1"}}, nil)

		_, err := uc.SaveIndication(context.Background(), entities.Indication{
			Name:         "Despachante Silva",
			Document:     "12.345.678/0001-00",
			CustomPrices: map[string]float64{"svc-1": -5},
		})
		if !errors.Is(err, ErrInvalidIndication) {
			t.Fatalf("expected ErrInvalidIndication, got %v", err)
		}
	})

	t.Run("missing document rejected", func(t *testing.T) {
		uc, _, _ := newCatalogUseCaseWithMocks(gomock.NewController(t))

		_, err := uc.SaveIndication(context.Background(), entities.Indication{Name: "Despachante Silva"})
		if !errors.Is(err, ErrInvalidIndication) {
			t.Fatalf("expected ErrInvalidIndication, got %v", err)
		}
	})
}

func TestCatalogUseCase_GetIndication(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, indications := newCatalogUseCaseWithMocks(ctrl)

	indications.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Indication{}, nil)

	if _, err := uc.GetIndication(context.Background(), "ghost"); !errors.Is(err, ErrIndicationNotFound) {
		t.Fatalf("expected ErrIndicationNotFound, got %v", err)
	}
	if _, err := uc.GetIndication(context.Background(), "  "); !errors.Is(err, ErrIndicationNotFound) {
		t.Fatalf("expected ErrIndicationNotFound for blank id, got %v", err)
	}
}
