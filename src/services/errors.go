package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for explicit error handling
// These errors allow callers to distinguish between different failure modes
// using errors.Is() instead of string matching

var (
	// ErrInvalidCredentials indicates username/password authentication failed
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidPin indicates the secondary PIN did not match any admin
	ErrInvalidPin = errors.New("invalid pin")

	// ErrNotFound indicates the addressed record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrNoUpdates indicates a partial update carried no fields
	ErrNoUpdates = errors.New("no updates provided")

	// ErrInvalidID indicates a path identifier is not a positive integer
	ErrInvalidID = errors.New("invalid identifier")
)

// parseID converts a path identifier to a primary key
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

// expectAffected maps a zero-row write to ErrNotFound
func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
