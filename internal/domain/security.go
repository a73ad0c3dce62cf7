package domain

// Security is a tradable instrument with a whole-unit price
type Security struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}
