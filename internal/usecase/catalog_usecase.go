package usecase

import (
	"context"
	"errors"
	"strings"

	"prevencar_vistorias/internal/domain/entities"
	"prevencar_vistorias/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidServiceItem = errors.New("invalid service item")
	ErrServiceNotFound    = errors.New("service not found")
	ErrInvalidIndication  = errors.New("invalid indication")
	ErrUnknownCustomPrice = errors.New("custom price references unknown service")
)

// ICatalogUseCase manages the service price list and the referral partners.

type ICatalogUseCase interface {
	SaveService(ctx context.Context, s entities.ServiceItem) (entities.ServiceItem, error)
	ListServices(ctx context.Context) ([]entities.ServiceItem, error)
	DeleteService(ctx context.Context, id string) error

	SaveIndication(ctx context.Context, ind entities.Indication) (entities.Indication, error)
	GetIndication(ctx context.Context, id string) (entities.Indication, error)
	ListIndications(ctx context.Context) ([]entities.Indication, error)
	DeleteIndication(ctx context.Context, id string) error
}

type CatalogUseCase struct {
	services    interfaces.IServiceRepository
	indications interfaces.IIndicationRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(services interfaces.IServiceRepository, indications interfaces.IIndicationRepository) *CatalogUseCase {
	return &CatalogUseCase{services: services, indications: indications}
}

func (u *CatalogUseCase) SaveService(ctx context.Context, s entities.ServiceItem) (entities.ServiceItem, error) {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" || s.BasePrice < 0 {
		return entities.ServiceItem{}, ErrInvalidServiceItem
	}
	if strings.TrimSpace(s.ID) == "" {
		s.ID = uuid.NewString()
	}
	return u.services.Save(ctx, s)
}

func (u *CatalogUseCase) ListServices(ctx context.Context) ([]entities.ServiceItem, error) {
	return u.services.List(ctx)
}

func (u *CatalogUseCase) DeleteService(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrServiceNotFound
	}
	return u.services.Delete(ctx, id)
}

// SaveIndication persists a partner. Custom price keys must reference existing
// catalog services so a sheet can always resolve the partner rate by id.
func (u *CatalogUseCase) SaveIndication(ctx context.Context, ind entities.Indication) (entities.Indication, error) {
	ind.Name = strings.TrimSpace(ind.Name)
	if ind.Name == "" || strings.TrimSpace(ind.Document) == "" {
		return entities.Indication{}, ErrInvalidIndication
	}

	if len(ind.CustomPrices) > 0 {
		items, err := u.services.List(ctx)
		if err != nil {
			return entities.Indication{}, err
		}
		known := make(map[string]struct{}, len(items))
		for _, item := range items {
			known[item.ID] = struct{}{}
		}
		for serviceID, price := range ind.CustomPrices {
			if _, ok := known[serviceID]; !ok {
				return entities.Indication{}, ErrUnknownCustomPrice
			}
			if price < 0 {
				return entities.Indication{}, ErrInvalidIndication
			}
		}
	}

	if strings.TrimSpace(ind.ID) == "" {
		ind.ID = uuid.NewString()
	}
	return u.indications.Save(ctx, ind)
}

func (u *CatalogUseCase) GetIndication(ctx context.Context, id string) (entities.Indication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Indication{}, ErrIndicationNotFound
	}
	ind, err := u.indications.GetByID(ctx, id)
	if err != nil {
		return entities.Indication{}, err
	}
	if ind.ID == "" {
		return entities.Indication{}, ErrIndicationNotFound
	}
	return ind, nil
}

func (u *CatalogUseCase) ListIndications(ctx context.Context) ([]entities.Indication, error) {
	return u.indications.List(ctx)
}

func (u *CatalogUseCase) DeleteIndication(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrIndicationNotFound
	}
	return u.indications.Delete(ctx, id)
}
