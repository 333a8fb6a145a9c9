package bot

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	cartapp "github.com/dwikikusuma/shopbot/internal/cart/app"
	catalogapp "github.com/dwikikusuma/shopbot/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/shopbot/internal/checkout/app"
	orderapp "github.com/dwikikusuma/shopbot/internal/order/app"
	orderdomain "github.com/dwikikusuma/shopbot/internal/order/domain"
)

type Handlers struct {
	catalog  *catalogapp.Service
	cart     *cartapp.Service
	checkout *checkoutapp.Service
	orders   *orderapp.Service
	log      *slog.Logger
}

// NewHandlers builds the conversation handlers. orders may be nil when no
// order storage is wired; checkout then only renders the summary.
func NewHandlers(catalog *catalogapp.Service, cart *cartapp.Service, checkout *checkoutapp.Service, orders *orderapp.Service, log *slog.Logger) *Handlers {
	return &Handlers{
		catalog:  catalog,
		cart:     cart,
		checkout: checkout,
		orders:   orders,
		log:      log,
	}
}

// Register binds every user-visible action to its routes.
func (h *Handlers) Register(r *Router) {
	r.Command("start", h.Start)
	r.Command("menu", h.Menu)
	r.Command("cart", h.ViewCart)
	r.Command("clear", h.ClearCart)
	r.Command("checkout", h.Checkout)

	r.Callback("cart", h.ViewCart)
	r.Callback("clear", h.ClearCart)
	r.Callback("checkout", h.Checkout)
	r.Callback("back_menu", h.Menu)
	r.CallbackPrefix("prod:", h.ShowProduct)
	r.CallbackPrefix("add:", h.AddToCart)
}

func (h *Handlers) Start(ctx context.Context, ev Event) (*Response, error) {
	return &Response{
		Text:    msgWelcome,
		Buttons: [][]Button{{{Label: "🛍 Open menu", Data: "back_menu"}}},
	}, nil
}

func (h *Handlers) Menu(ctx context.Context, ev Event) (*Response, error) {
	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return &Response{Text: "The shop is empty right now, come back later."}, nil
	}
	return &Response{
		Text:    "Pick a product:",
		Buttons: menuButtons(products),
	}, nil
}

func (h *Handlers) ShowProduct(ctx context.Context, ev Event) (*Response, error) {
	code := strings.TrimSpace(ev.Arg("prod:"))
	p, err := h.catalog.GetProduct(ctx, code)
	if err != nil {
		if errors.Is(err, catalogapp.ErrNotFound) || errors.Is(err, catalogapp.ErrInvalidInput) {
			return &Response{Text: msgNotFound, Buttons: backButtons()}, nil
		}
		return nil, err
	}

	return &Response{
		Text:    renderProduct(p),
		Photo:   p.Image,
		Buttons: productButtons(p.Code),
	}, nil
}

func (h *Handlers) AddToCart(ctx context.Context, ev Event) (*Response, error) {
	code := strings.TrimSpace(ev.Arg("add:"))
	if _, err := h.cart.AddItem(ctx, ev.UserID, code, 1); err != nil {
		if errors.Is(err, cartapp.ErrUnknownItem) {
			return &Response{Text: msgNotFound, Buttons: backButtons()}, nil
		}
		return nil, err
	}

	quote, err := h.checkout.Quote(ctx, ev.UserID)
	if err != nil {
		return nil, err
	}
	return &Response{
		Text:    renderQuote("Added! Your cart:", quote),
		Buttons: cartButtons(),
	}, nil
}

func (h *Handlers) ViewCart(ctx context.Context, ev Event) (*Response, error) {
	quote, err := h.checkout.Quote(ctx, ev.UserID)
	if err != nil {
		return nil, err
	}
	if len(quote.Lines) == 0 {
		return &Response{Text: msgEmptyCart, Buttons: backButtons()}, nil
	}
	return &Response{
		Text:    renderQuote("Your cart:", quote),
		Buttons: cartButtons(),
	}, nil
}

func (h *Handlers) ClearCart(ctx context.Context, ev Event) (*Response, error) {
	if err := h.cart.Clear(ctx, ev.UserID); err != nil {
		return nil, err
	}
	return &Response{Text: msgCleared, Buttons: backButtons()}, nil
}

// Checkout refuses empty carts before anything is rendered as final.
// Recording the pending order is best-effort: storage trouble is logged
// and the user still gets the summary, since payment is collected later.
func (h *Handlers) Checkout(ctx context.Context, ev Event) (*Response, error) {
	quote, err := h.checkout.Quote(ctx, ev.UserID)
	if err != nil {
		return nil, err
	}
	if len(quote.Lines) == 0 {
		return &Response{Text: msgEmptyCart, Buttons: backButtons()}, nil
	}

	if h.orders != nil {
		req := orderdomain.CreateOrderRequest{
			UserID:         ev.UserID,
			Currency:       quote.Total.Currency,
			ShippingAmount: quote.DeliveryFee.Amount,
		}
		for _, line := range quote.Lines {
			req.Items = append(req.Items, orderdomain.OrderItemRequest{
				Code:       line.Code,
				Name:       line.Name,
				UnitAmount: line.UnitPrice.Amount,
				Quantity:   line.Quantity,
			})
		}
		if _, err := h.orders.CreateOrder(ctx, req); err != nil {
			h.log.Error("record order failed", slog.Int64("user_id", ev.UserID), slog.Any("err", err))
		}
	}

	text := renderQuote("Order summary:", quote) + "\n\n" + msgPaymentPending
	return &Response{Text: text, Buttons: backButtons()}, nil
}
