package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/users-api/internal/domain/entity"
	"github.com/marcos-nsantos/users-api/internal/usecase/user"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type UserService interface {
	List(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Create(ctx context.Context, input user.CreateInput) (*entity.User, error)
	Update(ctx context.Context, id uuid.UUID, input user.UpdateInput) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
