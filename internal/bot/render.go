package bot

import (
	"fmt"
	"strings"

	catalogdomain "github.com/dwikikusuma/shopbot/internal/catalog/domain"
	checkoutdomain "github.com/dwikikusuma/shopbot/internal/checkout/domain"
)

const (
	msgWelcome = "Welcome to the shop! Use /menu to browse, /cart to see your cart, /checkout when you are ready."

	msgRestricted = "Sorry, this shop is invitation only."

	msgNotFound = "Product not found."

	msgEmptyCart = "Your cart is empty."

	msgCleared = "Cart cleared."

	msgPaymentPending = "Payment pending. We will send payment instructions shortly."
)

func formatMoney(m checkoutdomain.Money) string {
	return formatAmount(m.Currency, m.Amount)
}

func formatAmount(currency string, amount int64) string {
	symbol := currency
	if currency == "BRL" {
		symbol = "R$"
	}
	return fmt.Sprintf("%s %d.%02d", symbol, amount/100, amount%100)
}

func menuButtons(products []catalogdomain.Product) [][]Button {
	buttons := make([][]Button, 0, len(products)+1)
	for _, p := range products {
		buttons = append(buttons, []Button{{
			Label: fmt.Sprintf("%s — %s", p.Name, formatAmount(p.Price.Currency, p.Price.Amount)),
			Data:  "prod:" + p.Code,
		}})
	}
	buttons = append(buttons, []Button{{Label: "🛒 View cart", Data: "cart"}})
	return buttons
}

func productButtons(code string) [][]Button {
	return [][]Button{
		{{Label: "➕ Add to cart", Data: "add:" + code}},
		{{Label: "🛒 View cart", Data: "cart"}, {Label: "⬅️ Back", Data: "back_menu"}},
	}
}

func cartButtons() [][]Button {
	return [][]Button{
		{{Label: "✅ Checkout", Data: "checkout"}},
		{{Label: "🗑 Clear", Data: "clear"}, {Label: "⬅️ Back", Data: "back_menu"}},
	}
}

func backButtons() [][]Button {
	return [][]Button{{{Label: "⬅️ Back to menu", Data: "back_menu"}}}
}

func renderProduct(p catalogdomain.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", p.Name, formatAmount(p.Price.Currency, p.Price.Amount))
	if p.Description != "" {
		b.WriteString(p.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderQuote(title string, q checkoutdomain.Quote) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	for _, line := range q.Lines {
		fmt.Fprintf(&b, "%dx %s — %s\n", line.Quantity, line.Name, formatMoney(line.LineTotal))
	}
	fmt.Fprintf(&b, "\nSubtotal: %s\n", formatMoney(q.Subtotal))
	fmt.Fprintf(&b, "Delivery: %s\n", formatMoney(q.DeliveryFee))
	fmt.Fprintf(&b, "Total: %s", formatMoney(q.Total))
	return b.String()
}
