package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"installworks/internal/domain/entities"
	"installworks/internal/usecase/interfaces"
)

var (
	ErrInvalidClientInput   = errors.New("invalid client input")
	ErrInvalidEngineerInput = errors.New("invalid engineer input")
	ErrClientAlreadyExists  = errors.New("client already exists")
	ErrEngineerExists       = errors.New("engineer already exists")
)

// IDirectoryUseCase manages the clients and engineers that quotes and
// bookings refer to.

type IDirectoryUseCase interface {
	CreateClient(ctx context.Context, name, email, phone, address string) (entities.Client, error)
	GetClient(ctx context.Context, id string) (entities.Client, error)
	CreateEngineer(ctx context.Context, name, email string, available bool) (entities.Engineer, error)
	GetEngineer(ctx context.Context, id string) (entities.Engineer, error)
	SetEngineerAvailability(ctx context.Context, id string, available bool) (entities.Engineer, error)
}

type DirectoryUseCase struct {
	clientRepo   interfaces.IClientRepository
	engineerRepo interfaces.IEngineerRepository
}

var _ IDirectoryUseCase = (*DirectoryUseCase)(nil)

func NewDirectoryUseCase(clientRepo interfaces.IClientRepository, engineerRepo interfaces.IEngineerRepository) *DirectoryUseCase {
	return &DirectoryUseCase{clientRepo: clientRepo, engineerRepo: engineerRepo}
}

func (u *DirectoryUseCase) CreateClient(ctx context.Context, name, email, phone, address string) (entities.Client, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	if name == "" || address == "" {
		return entities.Client{}, ErrInvalidClientInput
	}

	c := entities.Client{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     strings.TrimSpace(email),
		Phone:     strings.TrimSpace(phone),
		Address:   address,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.clientRepo.Create(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	if created.ID == "" {
		return entities.Client{}, ErrClientAlreadyExists
	}
	log.Printf("[directory][usecase] client created client_id=%s", created.ID)
	return created, nil
}

func (u *DirectoryUseCase) GetClient(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientInput
	}
	c, err := u.clientRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *DirectoryUseCase) CreateEngineer(ctx context.Context, name, email string, available bool) (entities.Engineer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Engineer{}, ErrInvalidEngineerInput
	}

	e := entities.Engineer{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     strings.TrimSpace(email),
		Available: available,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.engineerRepo.Create(ctx, e)
	if err != nil {
		return entities.Engineer{}, err
	}
	if created.ID == "" {
		return entities.Engineer{}, ErrEngineerExists
	}
	log.Printf("[directory][usecase] engineer created engineer_id=%s available=%t", created.ID, created.Available)
	return created, nil
}

func (u *DirectoryUseCase) GetEngineer(ctx context.Context, id string) (entities.Engineer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Engineer{}, ErrInvalidEngineerInput
	}
	e, err := u.engineerRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Engineer{}, err
	}
	if e.ID == "" {
		return entities.Engineer{}, ErrEngineerNotFound
	}
	return e, nil
}

func (u *DirectoryUseCase) SetEngineerAvailability(ctx context.Context, id string, available bool) (entities.Engineer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Engineer{}, ErrInvalidEngineerInput
	}
	e, err := u.engineerRepo.SetAvailable(ctx, id, available)
	if err != nil {
		return entities.Engineer{}, err
	}
	if e.ID == "" {
		return entities.Engineer{}, ErrEngineerNotFound
	}
	log.Printf("[directory][usecase] engineer availability set engineer_id=%s available=%t", id, available)
	return e, nil
}
