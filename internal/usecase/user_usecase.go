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
	ErrInvalidUser  = errors.New("invalid user")
	ErrUserNotFound = errors.New("user not found")
)

// IUserUseCase manages operators. Only admins may create, update or remove
// users; credentials never pass through here (token issuance is upstream).

type IUserUseCase interface {
	Save(ctx context.Context, actor entities.User, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	Delete(ctx context.Context, actor entities.User, id string) error
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) Save(ctx context.Context, actor entities.User, user entities.User) (entities.User, error) {
	if actor.Role != entities.RoleAdmin {
		return entities.User{}, ErrNotAuthorized
	}

	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.TrimSpace(user.Email)
	if user.Name == "" || user.Email == "" {
		return entities.User{}, ErrInvalidUser
	}
	switch user.Role {
	case entities.RoleAdmin, entities.RoleFinanceiro, entities.RoleVistoriador:
	default:
		return entities.User{}, ErrInvalidUser
	}

	if strings.TrimSpace(user.ID) == "" {
		user.ID = uuid.NewString()
	}
	return u.repo.Save(ctx, user)
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrUserNotFound
	}
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) List(ctx context.Context) ([]entities.User, error) {
	return u.repo.List(ctx)
}

func (u *UserUseCase) Delete(ctx context.Context, actor entities.User, id string) error {
	if actor.Role != entities.RoleAdmin {
		return ErrNotAuthorized
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrUserNotFound
	}
	return u.repo.Delete(ctx, id)
}
