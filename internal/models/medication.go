package models

import "github.com/shopspring/decimal"

func init() {
	// Prices go out as JSON numbers (9.5), not strings ("9.5").
	decimal.MarshalJSONWithoutQuotes = true
}

// Medication represents a product stored in the medicamento table.
type Medication struct {
	ID               int             `db:"id_medicamento" json:"id"`
	Name             string          `db:"nome_medicamento" json:"name"`
	Manufacturer     string          `db:"fabricante" json:"manufacturer"`
	ActiveIngredient string          `db:"principio_ativo" json:"activeIngredient"`
	Expiry           Date            `db:"data_validade" json:"expiry"`
	Price            decimal.Decimal `db:"preco" json:"price"`
}

// CreateMedicationRequest is the body accepted by POST /medications.
type CreateMedicationRequest struct {
	Name             string          `json:"name"`
	Manufacturer     string          `json:"manufacturer"`
	ActiveIngredient string          `json:"activeIngredient"`
	Expiry           Date            `json:"expiry"`
	Price            decimal.Decimal `json:"price"`
}

// NewMedication builds an unsaved Medication from a create request.
func NewMedication(req *CreateMedicationRequest) *Medication {
	return &Medication{
		Name:             req.Name,
		Manufacturer:     req.Manufacturer,
		ActiveIngredient: req.ActiveIngredient,
		Expiry:           req.Expiry,
		Price:            req.Price,
	}
}
