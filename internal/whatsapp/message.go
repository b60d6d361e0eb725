package whatsapp

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"dalarosa-be/internal/order"

	"github.com/shopspring/decimal"
)

const baseURL = "https://wa.me/"

var ErrMissingNumber = errors.New("whatsapp number is not configured")

// Composer renders the storefront's outbound WhatsApp messages.
type Composer struct {
	storeName string
	number    string
}

// NewComposer keeps only the digits of number, which is the form wa.me accepts.
func NewComposer(storeName, number string) (*Composer, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	if digits == "" {
		return nil, ErrMissingNumber
	}
	return &Composer{storeName: storeName, number: digits}, nil
}

func money(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}

// OrderMessage lists the customer, every line with its quantity and line
// total, and the grand total.
func (c *Composer) OrderMessage(o order.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*Novo Pedido - %s*\n\n", c.storeName)
	fmt.Fprintf(&b, "*Cliente:* %s\n", o.CustomerName)
	fmt.Fprintf(&b, "*Telefone:* %s\n", o.CustomerPhone)
	fmt.Fprintf(&b, "*Endereço:* %s\n\n", o.DeliveryAddress)
	b.WriteString("*Itens do Pedido:*\n")

	for i, item := range o.Items {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "- %s\n  Quantidade: %d\n  Preço: %s", item.Name, item.Quantity, money(item.LineTotal()))
	}

	fmt.Fprintf(&b, "\n\n*Total do Pedido:* %s", money(o.TotalAmount))
	return b.String()
}

func (c *Composer) ContactMessage(name, message string) string {
	return fmt.Sprintf("*Contato via Site - %s*\n\n*Nome:* %s\n\n*Mensagem:*\n%s", c.storeName, name, message)
}

// Link builds the deep-link that opens a chat with message prefilled.
func (c *Composer) Link(message string) string {
	return baseURL + c.number + "?text=" + Encode(message)
}

// Encode percent-encodes s the way a browser encodes a URI component,
// spaces included.
func Encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func (c *Composer) Number() string {
	return c.number
}
