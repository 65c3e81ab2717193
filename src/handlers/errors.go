package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubybellylechon/admin-api/src/router"
	"github.com/rubybellylechon/admin-api/src/services"
)

// resourceError maps service sentinels to client errors. Anything else is
// returned unchanged and becomes a generic 500 at the dispatcher.
func resourceError(err error, notFound string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return router.Wrap(http.StatusNotFound, notFound, err)
	case errors.Is(err, services.ErrInvalidID):
		return router.Wrap(http.StatusBadRequest, "Invalid id", err)
	case errors.Is(err, services.ErrNoUpdates):
		return router.Wrap(http.StatusBadRequest, "No updates provided", err)
	}
	return err
}

// bindJSON decodes the request body into dst
func bindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return &router.HTTPError{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
			Details: err.Error(),
			Err:     err,
		}
	}
	return nil
}
