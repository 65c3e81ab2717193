package models

type Customer struct {
	ID            int64  `json:"customerid"`
	Name          string `json:"name"`
	EmailAddress  string `json:"emailaddress"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactNumber"`
}
