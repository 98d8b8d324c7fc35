package interfaces

import (
	"context"

	"prevencar_vistorias/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for the price catalog.

type IServiceRepository interface {
	Save(ctx context.Context, s entities.ServiceItem) (entities.ServiceItem, error)
	GetByID(ctx context.Context, id string) (entities.ServiceItem, error)
	List(ctx context.Context) ([]entities.ServiceItem, error)
	Delete(ctx context.Context, id string) error
}

// IIndicationRepository abstracts DynamoDB persistence for referral partners.

type IIndicationRepository interface {
	Save(ctx context.Context, ind entities.Indication) (entities.Indication, error)
	GetByID(ctx context.Context, id string) (entities.Indication, error)
	List(ctx context.Context) ([]entities.Indication, error)
	Delete(ctx context.Context, id string) error
}

// IUserRepository abstracts DynamoDB persistence for operators.

type IUserRepository interface {
	Save(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	Delete(ctx context.Context, id string) error
}
