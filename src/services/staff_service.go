package services

import (
	"context"
	"fmt"

	"github.com/rubybellylechon/admin-api/src/database"
	"github.com/rubybellylechon/admin-api/src/models"
)

// StaffService handles staff records; removal is a physical delete
type StaffService struct {
	db database.DBTX
}

// NewStaffService creates a new staff service
func NewStaffService(db database.DBTX) *StaffService {
	return &StaffService{db: db}
}

// List returns all staff members
func (ss *StaffService) List(ctx context.Context) ([]models.Staff, error) {
	rows, err := ss.db.QueryContext(ctx, `SELECT staffid, name, position, contact FROM astaff ORDER BY staffid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	staff := []models.Staff{}
	for rows.Next() {
		var s models.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Position, &s.Contact); err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		staff = append(staff, s)
	}
	return staff, rows.Err()
}

// Create inserts a staff member and returns it with its new id
func (ss *StaffService) Create(ctx context.Context, s models.Staff) (*models.Staff, error) {
	err := ss.db.QueryRowContext(ctx,
		`INSERT INTO astaff (name, position, contact) VALUES ($1, $2, $3) RETURNING staffid`,
		s.Name, s.Position, s.Contact,
	).Scan(&s.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}
	return &s, nil
}

// Update overwrites a staff member
func (ss *StaffService) Update(ctx context.Context, id string, s models.Staff) (*models.Staff, error) {
	staffID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	res, err := ss.db.ExecContext(ctx,
		`UPDATE astaff SET name = $1, position = $2, contact = $3 WHERE staffid = $4`,
		s.Name, s.Position, s.Contact, staffID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update staff member: %w", err)
	}
	if err := expectAffected(res); err != nil {
		return nil, err
	}

	s.ID = staffID
	return &s, nil
}

// Delete physically removes a staff member
func (ss *StaffService) Delete(ctx context.Context, id string) error {
	staffID, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := ss.db.ExecContext(ctx, `DELETE FROM astaff WHERE staffid = $1`, staffID)
	if err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	return expectAffected(res)
}
