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

// MedicationRepository is the storage used by MedicationService.
type MedicationRepository interface {
	List(ctx context.Context) ([]*models.Medication, error)
	GetByID(ctx context.Context, id int) (*models.Medication, error)
	Create(ctx context.Context, medication *models.Medication) (bool, error)
}

// MedicationService handles medication use cases.
type MedicationService struct {
	medicationRepo MedicationRepository
	cache          cache.EntityCache
	cacheTTL       time.Duration
}

// NewMedicationService constructs a MedicationService. entityCache may be nil.
func NewMedicationService(medicationRepo MedicationRepository, entityCache cache.EntityCache, cacheTTL time.Duration) *MedicationService {
	return &MedicationService{medicationRepo: medicationRepo, cache: entityCache, cacheTTL: cacheTTL}
}

// ListMedications retrieves all medications.
func (s *MedicationService) ListMedications(ctx context.Context) ([]*models.Medication, error) {
	return s.medicationRepo.List(ctx)
}

// GetMedication retrieves a medication by ID.
func (s *MedicationService) GetMedication(ctx context.Context, id int) (*models.Medication, error) {
	return getCached(ctx, s.cache, cache.MedicationKey(id), s.cacheTTL, func() (*models.Medication, error) {
		return s.medicationRepo.GetByID(ctx, id)
	})
}

// CreateMedication stores a new medication.
func (s *MedicationService) CreateMedication(ctx context.Context, req *models.CreateMedicationRequest) (*models.Medication, error) {
	medication := models.NewMedication(req)

	created, err := s.medicationRepo.Create(ctx, medication)
	if err != nil {
		if repository.IsConstraintViolation(err) {
			return nil, fmt.Errorf("%w: %w", utils.ErrNotCreated, err)
		}
		return nil, err
	}
	if !created {
		return nil, utils.ErrNotCreated
	}
	return medication, nil
}
