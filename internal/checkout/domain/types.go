package domain

type Money struct {
	Currency string
	Amount   int64
}

type QuoteLine struct {
	Code      string
	Name      string
	Quantity  int64
	UnitPrice Money
	LineTotal Money
}

// Quote is the priced view of a cart at one point in time. It is derived
// on demand and never stored. DeliveryFee is a flat process-wide amount
// and is part of every quote, including an empty-looking one; refusing to
// check out an empty cart happens before a quote is ever shown as final.
type Quote struct {
	Lines       []QuoteLine
	Subtotal    Money
	DeliveryFee Money
	Total       Money
}
