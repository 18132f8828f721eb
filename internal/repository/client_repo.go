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

const clientColumns = `id_cliente, nome_cliente, cpf, telefone, data_nacimento, email`

// ClientRepository provides data access methods for the cliente table.
type ClientRepository struct {
	db *sqlx.DB
}

// NewClientRepository creates a new ClientRepository.
func NewClientRepository(db *sqlx.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// List retrieves every client in the order the database returns them.
// An empty table yields an empty, non-nil slice.
func (r *ClientRepository) List(ctx context.Context) ([]*models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM cliente`

	clients := make([]*models.Client, 0)
	if err := r.db.SelectContext(ctx, &clients, query); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

// GetByID finds a client by numeric id. It returns utils.ErrNotFound when no
// row matches, including ids outside the key column's range.
func (r *ClientRepository) GetByID(ctx context.Context, id int) (*models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM cliente WHERE id_cliente = $1`

	if !storableID(id) {
		return nil, utils.ErrNotFound
	}

	var c models.Client
	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("get client %d: %w", id, err)
	}
	return &c, nil
}

// Create inserts a client and stores the generated id on it. Name and email
// are uppercased before writing; the other fields are stored as given.
// The boolean reports whether the insert returned a row.
func (r *ClientRepository) Create(ctx context.Context, client *models.Client) (bool, error) {
	query := `INSERT INTO cliente (nome_cliente, cpf, telefone, data_nacimento, email)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id_cliente`

	client.Name = strings.ToUpper(client.Name)
	client.Email = strings.ToUpper(client.Email)

	return insertReturningID(ctx, r.db, query, &client.ID,
		client.Name,
		client.CPF,
		client.Phone,
		client.BirthDate,
		client.Email,
	)
}

// insertReturningID runs an INSERT ... RETURNING statement and scans the
// first returned column into id.
func insertReturningID(ctx context.Context, db *sqlx.DB, query string, id *int, args ...any) (bool, error) {
	rows, err := db.QueryxContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("insert: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return false, fmt.Errorf("insert: %w", err)
		}
		return false, nil
	}
	if err := rows.Scan(id); err != nil {
		return false, fmt.Errorf("scan returned id: %w", err)
	}
	return true, rows.Err()
}
