package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/GTDGit/pharmacy_api/internal/models"
	"github.com/GTDGit/pharmacy_api/internal/utils"
)

const medicationColumns = `id_medicamento, nome_medicamento, fabricante, principio_ativo, data_validade, preco`

// MedicationRepository provides data access methods for the medicamento table.
type MedicationRepository struct {
	db *sqlx.DB
}

// NewMedicationRepository creates a new MedicationRepository.
func NewMedicationRepository(db *sqlx.DB) *MedicationRepository {
	return &MedicationRepository{db: db}
}

// List retrieves every medication in the order the database returns them.
func (r *MedicationRepository) List(ctx context.Context) ([]*models.Medication, error) {
	query := `SELECT ` + medicationColumns + ` FROM medicamento`

	medications := make([]*models.Medication, 0)
	if err := r.db.SelectContext(ctx, &medications, query); err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	return medications, nil
}

// GetByID finds a medication by numeric id.
func (r *MedicationRepository) GetByID(ctx context.Context, id int) (*models.Medication, error) {
	query := `SELECT ` + medicationColumns + ` FROM medicamento WHERE id_medicamento = $1`

	if !storableID(id) {
		return nil, utils.ErrNotFound
	}

	var m models.Medication
	if err := r.db.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("get medication %d: %w", id, err)
	}
	return &m, nil
}

// Create inserts a medication and stores the generated id on it. Name,
// manufacturer and active ingredient are uppercased; expiry and price are
// written untouched.
func (r *MedicationRepository) Create(ctx context.Context, medication *models.Medication) (bool, error) {
	query := `INSERT INTO medicamento (nome_medicamento, fabricante, principio_ativo, data_validade, preco)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id_medicamento`

	medication.Name = strings.ToUpper(medication.Name)
	medication.Manufacturer = strings.ToUpper(medication.Manufacturer)
	medication.ActiveIngredient = strings.ToUpper(medication.ActiveIngredient)

	return insertReturningID(ctx, r.db, query, &medication.ID,
		medication.Name,
		medication.Manufacturer,
		medication.ActiveIngredient,
		medication.Expiry,
		medication.Price,
	)
}
