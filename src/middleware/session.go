package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rubybellylechon/admin-api/src/models"
)

// SessionCookieName is the cookie carrying the session token
const SessionCookieName = "token"

// Context keys set on authenticated requests
const (
	AdminIDKey  = "admin_id"
	UsernameKey = "username"
)

// ErrWeakSecret is returned for signing secrets shorter than 32 characters
var ErrWeakSecret = errors.New("JWT secret must be at least 32 characters long")

// AdminClaims represents JWT claims for admin sessions
type AdminClaims struct {
	AdminID  string `json:"admin_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// SessionManager issues and verifies stateless admin sessions. The token
// is self-describing; nothing is stored server side.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// NewSessionManager creates a session manager signing with secret
func NewSessionManager(secret string, ttl time.Duration, secure bool) (*SessionManager, error) {
	if len(secret) < 32 {
		return nil, ErrWeakSecret
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SessionManager{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
		now:    time.Now,
	}, nil
}

// WithClock replaces the time source used for issuing and verifying tokens
func (sm *SessionManager) WithClock(now func() time.Time) *SessionManager {
	sm.now = now
	return sm
}

// TTL returns the session lifetime
func (sm *SessionManager) TTL() time.Duration {
	return sm.ttl
}

// GenerateToken creates a signed token for admin that expires after the TTL
func (sm *SessionManager) GenerateToken(admin *models.AdminUser) (string, time.Time, error) {
	issuedAt := sm.now()
	expiresAt := issuedAt.Add(sm.ttl)

	claims := AdminClaims{
		AdminID:  strconv.FormatInt(admin.ID, 10),
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(admin.ID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    "restaurant-admin",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(sm.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken verifies signature and expiry and returns the claims
func (sm *SessionManager) ValidateToken(tokenString string) (*AdminClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(sm.now),
		jwt.WithExpirationRequired(),
	)

	claims := &AdminClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return sm.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// Issue signs a session for admin and sets it as the session cookie
func (sm *SessionManager) Issue(c *gin.Context, admin *models.AdminUser) (time.Time, error) {
	token, expiresAt, err := sm.GenerateToken(admin)
	if err != nil {
		return time.Time{}, err
	}

	sm.setCookie(c, token, int(sm.ttl.Seconds()))
	return expiresAt, nil
}

// Authenticated reports whether the request carries a valid session cookie.
// Absent, malformed, forged and expired tokens all yield false.
func (sm *SessionManager) Authenticated(c *gin.Context) bool {
	token, err := c.Cookie(SessionCookieName)
	if err != nil || token == "" {
		return false
	}

	claims, err := sm.ValidateToken(token)
	if err != nil {
		return false
	}

	c.Set(AdminIDKey, claims.AdminID)
	c.Set(UsernameKey, claims.Username)
	return true
}

// Destroy overwrites the session cookie with an already expired empty value
func (sm *SessionManager) Destroy(c *gin.Context) {
	// A negative MaxAge is written as Max-Age=0
	sm.setCookie(c, "", -1)
}

func (sm *SessionManager) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, value, maxAge, "/", "", sm.secure, true)
}
