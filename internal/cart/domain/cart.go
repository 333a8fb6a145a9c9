package domain

type CartItem struct {
	Code     string
	Quantity int64
}

// Cart is one user's current selection. Items hold positive quantities
// only; an item decremented to zero is removed, never stored as zero.
type Cart struct {
	UserID int64
	Items  []CartItem
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) Quantity(code string) int64 {
	for _, it := range c.Items {
		if it.Code == code {
			return it.Quantity
		}
	}
	return 0
}
