package models

// AdminUser represents a back-office account allowed to sign in
type AdminUser struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // never expose
	PinHash      string `json:"-"`
}
