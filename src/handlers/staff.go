package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubybellylechon/admin-api/src/models"
	"github.com/rubybellylechon/admin-api/src/repositories"
	"github.com/rubybellylechon/admin-api/src/router"
)

// StaffHandler serves /api/astaff
type StaffHandler struct {
	staff repositories.StaffRepository
}

// NewStaffHandler creates a staff handler
func NewStaffHandler(staff repositories.StaffRepository) *StaffHandler {
	return &StaffHandler{staff: staff}
}

// HandleList handles GET /api/astaff
func (h *StaffHandler) HandleList(c *gin.Context, _ router.Params) error {
	staff, err := h.staff.List(c.Request.Context())
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, staff)
	return nil
}

// HandleCreate handles POST /api/astaff
func (h *StaffHandler) HandleCreate(c *gin.Context, _ router.Params) error {
	var req models.Staff
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	member, err := h.staff.Create(c.Request.Context(), req)
	if err != nil {
		return err
	}
	c.JSON(http.StatusCreated, member)
	return nil
}

// HandleUpdate handles PUT /api/astaff/{id}
func (h *StaffHandler) HandleUpdate(c *gin.Context, params router.Params) error {
	var req models.Staff
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	member, err := h.staff.Update(c.Request.Context(), params.Get("id"), req)
	if err != nil {
		return resourceError(err, "Staff member not found")
	}
	c.JSON(http.StatusOK, member)
	return nil
}

// HandleDelete physically removes a staff member
func (h *StaffHandler) HandleDelete(c *gin.Context, params router.Params) error {
	if err := h.staff.Delete(c.Request.Context(), params.Get("id")); err != nil {
		return resourceError(err, "Staff member not found")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted successfully"})
	return nil
}
