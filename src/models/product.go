package models

// Product is a menu item; Deleted marks it soft-deleted
type Product struct {
	ID          int64  `json:"productid"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	Deleted     bool   `json:"deleted"`
}

// ProductPrice is one weight/price option of a product
type ProductPrice struct {
	ID          int64   `json:"priceid"`
	ProductID   int64   `json:"productid"`
	Weight      string  `json:"weight"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}
