package service

import (
	"context"
	"fmt"
	"time"

	"github.com/GTDGit/pharmacy_api/internal/cache"
	"github.com/GTDGit/pharmacy_api/internal/models"
	"github.com/GTDGit/pharmacy_api/internal/repository"
	"github.com/GTDGit/pharmacy_api/internal/utils"
)

// ClientRepository is the storage used by ClientService.
type ClientRepository interface {
	List(ctx context.Context) ([]*models.Client, error)
	GetByID(ctx context.Context, id int) (*models.Client, error)
	Create(ctx context.Context, client *models.Client) (bool, error)
}

// ClientService handles client use cases.
type ClientService struct {
	clientRepo ClientRepository
	cache      cache.EntityCache
	cacheTTL   time.Duration
}

// NewClientService constructs a ClientService. entityCache may be nil.
func NewClientService(clientRepo ClientRepository, entityCache cache.EntityCache, cacheTTL time.Duration) *ClientService {
	return &ClientService{clientRepo: clientRepo, cache: entityCache, cacheTTL: cacheTTL}
}

// ListClients retrieves all clients.
func (s *ClientService) ListClients(ctx context.Context) ([]*models.Client, error) {
	return s.clientRepo.List(ctx)
}

// GetClient retrieves a client by ID. Absent clients yield utils.ErrNotFound.
func (s *ClientService) GetClient(ctx context.Context, id int) (*models.Client, error) {
	return getCached(ctx, s.cache, cache.ClientKey(id), s.cacheTTL, func() (*models.Client, error) {
		return s.clientRepo.GetByID(ctx, id)
	})
}

// CreateClient stores a new client. It returns an error wrapping
// utils.ErrNotCreated when the database refused the data.
func (s *ClientService) CreateClient(ctx context.Context, req *models.CreateClientRequest) (*models.Client, error) {
	client := models.NewClient(req)

	created, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		if repository.IsConstraintViolation(err) {
			return nil, fmt.Errorf("%w: %w", utils.ErrNotCreated, err)
		}
		return nil, err
	}
	if !created {
		return nil, utils.ErrNotCreated
	}
	return client, nil
}
