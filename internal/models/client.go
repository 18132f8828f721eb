package models

// Client represents a pharmacy customer stored in the cliente table.
type Client struct {
	ID        int    `db:"id_cliente" json:"id"`
	Name      string `db:"nome_cliente" json:"name"`
	CPF       string `db:"cpf" json:"cpf"`
	Phone     string `db:"telefone" json:"phone"`
	BirthDate Date   `db:"data_nacimento" json:"birthDate"`
	Email     string `db:"email" json:"email"`
}

// CreateClientRequest is the body accepted by POST /clients.
type CreateClientRequest struct {
	Name      string `json:"name"`
	CPF       string `json:"cpf"`
	Phone     string `json:"phone"`
	BirthDate Date   `json:"birthDate"`
	Email     string `json:"email"`
}

// NewClient builds an unsaved Client from a create request. The ID stays
// zero until the row is inserted.
func NewClient(req *CreateClientRequest) *Client {
	return &Client{
		Name:      req.Name,
		CPF:       req.CPF,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
		Email:     req.Email,
	}
}
