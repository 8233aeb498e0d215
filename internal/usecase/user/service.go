package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/users-api/internal/adapter/repository"
	"github.com/marcos-nsantos/users-api/internal/domain/entity"
)

type Service struct {
	userRepo repository.UserRepository
}

func NewService(userRepo repository.UserRepository) *Service {
	return &Service{userRepo: userRepo}
}

func (s *Service) List(ctx context.Context) ([]entity.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

type CreateInput struct {
	Name  string
	Email string
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*entity.User, error) {
	user := entity.NewUser(input.Name, input.Email)

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

// UpdateInput fields left nil keep their stored value.
type UpdateInput struct {
	Name  *string
	Email *string
}

// Update reads the row, merges input over it and writes it back. The read and the
// write are separate statements, so a concurrent update between them is lost and a
// concurrent delete surfaces as domain.ErrUserNotFound from the write.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Merge(input.Name, input.Email)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	return user, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}
