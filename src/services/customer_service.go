package services

import (
	"context"
	"fmt"

	"github.com/rubybellylechon/admin-api/src/database"
	"github.com/rubybellylechon/admin-api/src/models"
)

// CustomerService handles customer records; removal is a physical delete
type CustomerService struct {
	db database.DBTX
}

// NewCustomerService creates a new customer service
func NewCustomerService(db database.DBTX) *CustomerService {
	return &CustomerService{db: db}
}

// List returns all customers
func (cs *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	rows, err := cs.db.QueryContext(ctx,
		`SELECT customerid, name, emailaddress, address, contact_number FROM acustomer ORDER BY customerid`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.EmailAddress, &c.Address, &c.ContactNumber); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// Create inserts a customer and returns it with its new id
func (cs *CustomerService) Create(ctx context.Context, c models.Customer) (*models.Customer, error) {
	err := cs.db.QueryRowContext(ctx,
		`INSERT INTO acustomer (name, emailaddress, address, contact_number) VALUES ($1, $2, $3, $4) RETURNING customerid`,
		c.Name, c.EmailAddress, c.Address, c.ContactNumber,
	).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &c, nil
}

// Update overwrites a customer
func (cs *CustomerService) Update(ctx context.Context, id string, c models.Customer) (*models.Customer, error) {
	customerID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	res, err := cs.db.ExecContext(ctx,
		`UPDATE acustomer SET name = $1, emailaddress = $2, address = $3, contact_number = $4 WHERE customerid = $5`,
		c.Name, c.EmailAddress, c.Address, c.ContactNumber, customerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	if err := expectAffected(res); err != nil {
		return nil, err
	}

	c.ID = customerID
	return &c, nil
}

// Delete physically removes a customer
func (cs *CustomerService) Delete(ctx context.Context, id string) error {
	customerID, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := cs.db.ExecContext(ctx, `DELETE FROM acustomer WHERE customerid = $1`, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return expectAffected(res)
}
