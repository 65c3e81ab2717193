package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubybellylechon/admin-api/src/logging"
	"github.com/rubybellylechon/admin-api/src/middleware"
	"github.com/rubybellylechon/admin-api/src/repositories"
	"github.com/rubybellylechon/admin-api/src/router"
	"github.com/rubybellylechon/admin-api/src/services"
)

// AuthHandler serves sign-in, PIN validation, logout and session checks
type AuthHandler struct {
	admins   repositories.AdminRepository
	sessions *middleware.SessionManager
	throttle *middleware.Throttle
}

// NewAuthHandler creates an auth handler. throttle may be nil.
func NewAuthHandler(admins repositories.AdminRepository, sessions *middleware.SessionManager, throttle *middleware.Throttle) *AuthHandler {
	return &AuthHandler{
		admins:   admins,
		sessions: sessions,
		throttle: throttle,
	}
}

// SigninRequest is the body of POST /api/signin
type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PinRequest is the body of POST /api/validate-pin
type PinRequest struct {
	Pin string `json:"pin"`
}

// HandleCheckAuth handles GET /api/check-auth
func (h *AuthHandler) HandleCheckAuth(c *gin.Context, _ router.Params) error {
	c.JSON(http.StatusOK, gin.H{"isAuthenticated": h.sessions.Authenticated(c)})
	return nil
}

// HandleSignin handles POST /api/signin
func (h *AuthHandler) HandleSignin(c *gin.Context, _ router.Params) error {
	if !h.throttle.Allow(c.ClientIP()) {
		return router.NewError(http.StatusTooManyRequests, "Too many attempts, try again later")
	}

	var req SigninRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	admin, err := h.admins.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return router.Wrap(http.StatusUnauthorized, "Invalid username or password", err)
		}
		return err
	}

	if _, err := h.sessions.Issue(c, admin); err != nil {
		return err
	}

	logger := logging.ComponentLogger("auth", middleware.GetRequestID(c))
	logger.Info().Str("username", admin.Username).Msg("admin signed in")

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Signin successful",
		"username": admin.Username,
	})
	return nil
}

// HandleValidatePin handles POST /api/validate-pin
func (h *AuthHandler) HandleValidatePin(c *gin.Context, _ router.Params) error {
	if !h.throttle.Allow(c.ClientIP()) {
		return router.NewError(http.StatusTooManyRequests, "Too many attempts, try again later")
	}

	var req PinRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	if err := h.admins.ValidatePin(c.Request.Context(), req.Pin); err != nil {
		if errors.Is(err, services.ErrInvalidPin) {
			return router.Wrap(http.StatusUnauthorized, "Invalid pin", err)
		}
		return err
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Pin validated successfully"})
	return nil
}

// HandleLogout handles POST /api/logout
func (h *AuthHandler) HandleLogout(c *gin.Context, _ router.Params) error {
	h.sessions.Destroy(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logout successful"})
	return nil
}
