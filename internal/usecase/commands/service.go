package commands

import (
	"context"

	"salon-storefront/internal/domain/service"
)

//go:generate mockgen -source=service.go -destination=../../../tests/mock/commands/service.go -package=mock_commands

type ServiceRepository interface {
	Insert(ctx context.Context, s *service.Service) (string, error)
	FindByID(ctx context.Context, id string) (*service.Service, error)
	Replace(ctx context.Context, id string, s *service.Service) error
	Delete(ctx context.Context, id string) error
}

type ServiceCommands interface {
	Create(ctx context.Context, attrs service.Attributes) (*service.Service, error)
	Replace(ctx context.Context, id string, attrs service.Attributes) (*service.Service, error)
	Delete(ctx context.Context, id string) error
}

type serviceCommandsImpl struct {
	repo ServiceRepository
}

func NewServiceCommands(repo ServiceRepository) ServiceCommands {
	return &serviceCommandsImpl{repo: repo}
}

func (uc *serviceCommandsImpl) Create(ctx context.Context, attrs service.Attributes) (*service.Service, error) {
	s, err := service.New(attrs)
	if err != nil {
		return nil, err
	}
	id, err := uc.repo.Insert(ctx, s)
	if err != nil {
		return nil, err
	}
	s.ID = id
	return s, nil
}

func (uc *serviceCommandsImpl) Replace(ctx context.Context, id string, attrs service.Attributes) (*service.Service, error) {
	s, err := service.New(attrs)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Replace(ctx, id, s); err != nil {
		return nil, notFoundAs(err, service.ErrNotFound)
	}
	return reread(func() (*service.Service, error) { return uc.repo.FindByID(ctx, id) }, service.ErrNotFound)
}

func (uc *serviceCommandsImpl) Delete(ctx context.Context, id string) error {
	return notFoundAs(uc.repo.Delete(ctx, id), service.ErrNotFound)
}
