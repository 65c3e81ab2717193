package router

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rubybellylechon/admin-api/src/logging"
	"github.com/rubybellylechon/admin-api/src/middleware"
)

// Authenticator decides whether a request carries a valid session. It
// must not fail: any problem with the credential means false.
type Authenticator interface {
	Authenticated(c *gin.Context) bool
}

// Dispatcher is the single catch-all handler in front of every API route
type Dispatcher struct {
	table *Table
	auth  Authenticator
}

// NewDispatcher creates a dispatcher over table, checking sessions with auth
func NewDispatcher(table *Table, auth Authenticator) *Dispatcher {
	return &Dispatcher{table: table, auth: auth}
}

// Handle resolves the request, enforces authentication and invokes the
// handler. Handler errors and panics end here as JSON error bodies.
func (d *Dispatcher) Handle(c *gin.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			d.fail(c, fmt.Errorf("panic: %v", rec))
		}
	}()

	res := d.table.Resolve(c.Request.Method, c.Request.URL.Path)
	switch res.Outcome {
	case NoRoute:
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	case MethodNotAllowed:
		c.Header("Allow", strings.Join(res.Allowed, ", "))
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error": fmt.Sprintf("Method %s Not Allowed", c.Request.Method),
		})
		return
	}

	route := res.Route
	if route.Auth && !d.auth.Authenticated(c) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := route.Handler(c, res.Params); err != nil {
		d.fail(c, err)
	}
}

func (d *Dispatcher) fail(c *gin.Context, err error) {
	_ = c.Error(err)

	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Status < http.StatusInternalServerError {
		if !c.Writer.Written() {
			c.JSON(httpErr.Status, httpErr.body())
		}
		return
	}

	logger := logging.ComponentLogger("dispatcher", middleware.GetRequestID(c))
	logger.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("request failed")

	if c.Writer.Written() {
		return
	}
	if httpErr != nil {
		c.JSON(httpErr.Status, httpErr.body())
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": GenericErrorMessage})
}
