package domain

type Money struct {
	Currency string
	Amount   int64
}

type Product struct {
	Code        string
	Name        string
	Price       Money
	Image       string
	Description string
}
