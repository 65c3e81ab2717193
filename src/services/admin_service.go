package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rubybellylechon/admin-api/src/database"
	"github.com/rubybellylechon/admin-api/src/models"
	"golang.org/x/crypto/bcrypt"
)

// AdminService checks admin credentials and the secondary PIN
type AdminService struct {
	db   database.DBTX
	cost int
}

// NewAdminService creates a new admin service
func NewAdminService(db database.DBTX) *AdminService {
	return &AdminService{db: db, cost: bcrypt.DefaultCost}
}

// NewAdminServiceWithCost overrides the bcrypt cost (tests use bcrypt.MinCost)
func NewAdminServiceWithCost(db database.DBTX, cost int) *AdminService {
	return &AdminService{db: db, cost: cost}
}

// CreateAdminUser creates a new admin user with hashed password and PIN
func (as *AdminService) CreateAdminUser(ctx context.Context, username, password, pin string) (*models.AdminUser, error) {
	if len(username) < 1 || len(username) > 255 {
		return nil, errors.New("username must be between 1 and 255 characters")
	}
	if len(password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}
	if !validPin(pin) {
		return nil, errors.New("pin must be 4 to 12 digits")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), as.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	pinHash, err := bcrypt.GenerateFromPassword([]byte(pin), as.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash pin: %w", err)
	}

	admin := &models.AdminUser{
		Username:     username,
		PasswordHash: string(passwordHash),
		PinHash:      string(pinHash),
	}

	err = as.db.QueryRowContext(ctx,
		`INSERT INTO admin (username, password_hash, pin_hash) VALUES ($1, $2, $3) RETURNING id`,
		admin.Username, admin.PasswordHash, admin.PinHash,
	).Scan(&admin.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	return admin, nil
}

// HasAdmins checks if any admin users exist in the database
func (as *AdminService) HasAdmins(ctx context.Context) (bool, error) {
	var count int
	err := as.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM admin").Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check admin users: %w", err)
	}
	return count > 0, nil
}

// Authenticate verifies username and password against the single matching record
func (as *AdminService) Authenticate(ctx context.Context, username, password string) (*models.AdminUser, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	admin := &models.AdminUser{}
	err := as.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, pin_hash FROM admin WHERE username = $1`,
		username,
	).Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.PinHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}

// ValidatePin checks the PIN against every stored admin PIN. It is not tied
// to the session and has no attempt limit of its own.
func (as *AdminService) ValidatePin(ctx context.Context, pin string) error {
	if pin == "" {
		return ErrInvalidPin
	}

	rows, err := as.db.QueryContext(ctx, `SELECT pin_hash FROM admin WHERE pin_hash <> ''`)
	if err != nil {
		return fmt.Errorf("failed to load pins: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var hash string
		if err := rows.Scan(&hash); err != nil {
			return fmt.Errorf("failed to scan pin: %w", err)
		}
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil {
			return nil
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read pins: %w", err)
	}

	return ErrInvalidPin
}

func validPin(pin string) bool {
	if len(pin) < 4 || len(pin) > 12 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
