package repositories

import "github.com/rubybellylechon/admin-api/src/services"

// Ensure the SQL services implement the interfaces
var (
	_ AdminRepository        = (*services.AdminService)(nil)
	_ ProductRepository      = (*services.ProductService)(nil)
	_ ProductPriceRepository = (*services.ProductPriceService)(nil)
	_ StaffRepository        = (*services.StaffService)(nil)
	_ CustomerRepository     = (*services.CustomerService)(nil)
	_ OrderRepository        = (*services.OrderService)(nil)
	_ InventoryRepository    = (*services.InventoryService)(nil)
)
