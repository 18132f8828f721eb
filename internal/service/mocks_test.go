package service

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/GTDGit/pharmacy_api/internal/models"
)

var (
	_ ClientRepository     = (*mockClientRepository)(nil)
	_ MedicationRepository = (*mockMedicationRepository)(nil)
)

type mockClientRepository struct {
	ListFunc    func(ctx context.Context) ([]*models.Client, error)
	GetByIDFunc func(ctx context.Context, id int) (*models.Client, error)
	CreateFunc  func(ctx context.Context, client *models.Client) (bool, error)

	GetByIDCallCount int32
}

func (m *mockClientRepository) List(ctx context.Context) ([]*models.Client, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errors.New("ListFunc not implemented in mock")
}

func (m *mockClientRepository) GetByID(ctx context.Context, id int) (*models.Client, error) {
	atomic.AddInt32(&m.GetByIDCallCount, 1)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *mockClientRepository) Create(ctx context.Context, client *models.Client) (bool, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, client)
	}
	return false, errors.New("CreateFunc not implemented in mock")
}

type mockMedicationRepository struct {
	ListFunc    func(ctx context.Context) ([]*models.Medication, error)
	GetByIDFunc func(ctx context.Context, id int) (*models.Medication, error)
	CreateFunc  func(ctx context.Context, medication *models.Medication) (bool, error)

	GetByIDCallCount int32
}

func (m *mockMedicationRepository) List(ctx context.Context) ([]*models.Medication, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errors.New("ListFunc not implemented in mock")
}

func (m *mockMedicationRepository) GetByID(ctx context.Context, id int) (*models.Medication, error) {
	atomic.AddInt32(&m.GetByIDCallCount, 1)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *mockMedicationRepository) Create(ctx context.Context, medication *models.Medication) (bool, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, medication)
	}
	return false, errors.New("CreateFunc not implemented in mock")
}
