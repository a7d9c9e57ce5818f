package repository

import (
	"database/sql"

	"accounts-api/model"
)

// ICustomerRepository defines the contract for customer database operations.
type ICustomerRepository interface {
	CreateCustomer(customer *model.Customer) error
	GetCustomerByEmail(email string) (*model.Customer, error)
}

type CustomerRepository struct {
	DB *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) CreateCustomer(customer *model.Customer) error {
	query := `INSERT INTO customers (name, email, password) VALUES ($1, $2, $3) RETURNING id, created_at`
	return r.DB.QueryRow(query, customer.Name, customer.Email, customer.Password).
		Scan(&customer.ID, &customer.CreatedAt)
}

func (r *CustomerRepository) GetCustomerByEmail(email string) (*model.Customer, error) {
	customer := &model.Customer{}
	query := `SELECT id, name, email, password, created_at FROM customers WHERE email = $1`
	err := r.DB.QueryRow(query, email).
		Scan(&customer.ID, &customer.Name, &customer.Email, &customer.Password, &customer.CreatedAt)
	if err != nil {
		return nil, err
	}
	return customer, nil
}
