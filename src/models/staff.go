package models

type Staff struct {
	ID       int64  `json:"staffid"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Contact  string `json:"contact"`
}
