package handlers

import (
	"net/http"

	"github.com/rubybellylechon/admin-api/src/middleware"
	"github.com/rubybellylechon/admin-api/src/repositories"
	"github.com/rubybellylechon/admin-api/src/router"
)

// Repositories bundles the data access the API is served from
type Repositories struct {
	Admins        repositories.AdminRepository
	Products      repositories.ProductRepository
	ProductPrices repositories.ProductPriceRepository
	Staff         repositories.StaffRepository
	Customers     repositories.CustomerRepository
	Orders        repositories.OrderRepository
	Inventory     repositories.InventoryRepository
}

// Routes builds the /api route table. Only the session endpoints are
// public; every resource route requires a signed-in admin.
func Routes(repos Repositories, sessions *middleware.SessionManager, throttle *middleware.Throttle) *router.Table {
	auth := NewAuthHandler(repos.Admins, sessions, throttle)
	products := NewProductHandler(repos.Products)
	prices := NewProductPriceHandler(repos.ProductPrices)
	staff := NewStaffHandler(repos.Staff)
	customers := NewCustomerHandler(repos.Customers)
	orders := NewOrderHandler(repos.Orders)
	inventory := NewInventoryHandler(repos.Inventory)

	t := router.NewTable()

	// Session
	t.Public(http.MethodGet, "/api/check-auth", auth.HandleCheckAuth)
	t.Public(http.MethodPost, "/api/signin", auth.HandleSignin)
	t.Public(http.MethodPost, "/api/validate-pin", auth.HandleValidatePin)
	t.Public(http.MethodPost, "/api/logout", auth.HandleLogout)

	// Products
	t.Private(http.MethodGet, "/api/aproducts", products.HandleList)
	t.Private(http.MethodPost, "/api/aproducts", products.HandleCreate)
	t.Private(http.MethodPut, "/api/aproducts/{id}", products.HandleUpdate)
	t.Private(http.MethodPut, "/api/aproducts/{id:int}/soft-delete", products.HandleSoftDelete)
	t.Private(http.MethodDelete, "/api/aproducts/{id:int}/soft-delete", products.HandleSoftDelete)

	// Product prices
	t.Private(http.MethodGet, "/api/aproduct-prices/{productId}", prices.HandleListByProduct)
	t.Private(http.MethodPost, "/api/aproduct-prices", prices.HandleCreate)
	t.Private(http.MethodPut, "/api/aproduct-prices/{id}", prices.HandleUpdate)
	t.Private(http.MethodDelete, "/api/aproduct-prices/{id}", prices.HandleDelete)

	// Staff
	t.Private(http.MethodGet, "/api/astaff", staff.HandleList)
	t.Private(http.MethodPost, "/api/astaff", staff.HandleCreate)
	t.Private(http.MethodPut, "/api/astaff/{id}", staff.HandleUpdate)
	t.Private(http.MethodDelete, "/api/astaff/{id}", staff.HandleDelete)

	// Customers
	t.Private(http.MethodGet, "/api/acustomer", customers.HandleList)
	t.Private(http.MethodPost, "/api/acustomer", customers.HandleCreate)
	t.Private(http.MethodPut, "/api/acustomer/{id}", customers.HandleUpdate)
	t.Private(http.MethodDelete, "/api/acustomer/{id}", customers.HandleDelete)

	// Orders
	t.Private(http.MethodGet, "/api/aorders", orders.HandleList)
	t.Private(http.MethodPut, "/api/aorders/{id}", orders.HandleUpdate)
	t.Private(http.MethodPut, "/api/aorders/{id:int}/soft-delete", orders.HandleSoftDelete)

	// Inventory
	t.Private(http.MethodGet, "/api/ainventory", inventory.HandleList)
	t.Private(http.MethodPost, "/api/ainventory", inventory.HandleCreate)
	t.Private(http.MethodPut, "/api/ainventory/{id}", inventory.HandleUpdate)
	t.Private(http.MethodDelete, "/api/ainventory/{id}", inventory.HandleDelete)

	return t
}
