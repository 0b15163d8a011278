package catalog

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp"
)

// QuoteItem is a line of a quote request.
type QuoteItem struct {
	SKU   string  `json:"sku" validate:"required"`
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
	Qty   int     `json:"qty" validate:"min=1"`
	Image string  `json:"image,omitempty"`
}

// QuoteRequest is sent to the catalog backend when the customer checks out.
type QuoteRequest struct {
	CustomerName  string      `json:"customerName" validate:"required"`
	CustomerEmail string      `json:"customerEmail" validate:"required,email"`
	CustomerPhone string      `json:"customerPhone,omitempty"`
	Company       string      `json:"company,omitempty"`
	Variant       Variant     `json:"variant" validate:"oneof=imported ready"`
	Items         []QuoteItem `json:"items" validate:"min=1,dive"`
	Notes         string      `json:"notes,omitempty"`
}

// NewQuoteRequest builds the quote lines from the cart.
func NewQuoteRequest(cart *Cart) QuoteRequest {
	q := QuoteRequest{Items: make([]QuoteItem, 0, len(cart.Items))}

	for _, item := range cart.Items {
		q.Items = append(q.Items, QuoteItem{
			SKU:   item.SKU,
			Name:  item.Name,
			Price: item.Price,
			Qty:   item.Qty,
			Image: item.Image,
		})
	}

	return q
}

// Validate returns a *shttperr.ValidationError when the request is invalid.
func (q QuoteRequest) Validate() error {
	return shttp.Validate(q)
}

// Subtotal is the sum of the line totals.
func (q QuoteRequest) Subtotal() float64 {
	total := 0.0

	for _, item := range q.Items {
		total += item.Price * float64(item.Qty)
	}

	return total
}

// Draft is an email ready to be opened in the customer's mail client.
type Draft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// EmailDraft builds the email sent to the sales team.
func EmailDraft(q QuoteRequest) Draft {
	name := q.CustomerName

	if name == "" {
		name = "Cliente"
	}

	subject := "Solicitação de orçamento - " + name

	if q.Variant == VariantReady {
		subject = "Pedido - " + name
	}

	lines := []string{
		"🔔 NOVO PEDIDO / SOLICITAÇÃO DE ORÇAMENTO",
		"",
		"— Dados do cliente",
		"Nome: " + orDash(q.CustomerName),
		"E-mail: " + orDash(q.CustomerEmail),
		"Telefone: " + orDash(q.CustomerPhone),
	}

	if q.Company != "" {
		lines = append(lines, "Empresa: "+q.Company)
	}

	switch q.Variant {
	case VariantReady:
		lines = append(lines, "Categoria: Pronta entrega")
	case VariantImported:
		lines = append(lines, "Categoria: Importados")
	}

	if q.Notes != "" {
		lines = append(lines, "", "Observações:", q.Notes)
	}

	lines = append(lines, "", "— Itens do pedido")

	for i, item := range q.Items {
		lines = append(lines, fmt.Sprintf(
			"%d. %s | SKU: %s | Qtd: %d | Unit: %s | Total: %s",
			i+1, item.Name, item.SKU, item.Qty, FormatBRL(item.Price), FormatBRL(item.Price*float64(item.Qty)),
		))
	}

	lines = append(lines,
		"",
		"Subtotal: "+FormatBRL(q.Subtotal()),
		"",
		"Por favor, responder a este e-mail com a confirmação e próximos passos.",
	)

	return Draft{
		Subject: subject,
		Body:    strings.Join(lines, "\n"),
	}
}

// MailtoURL returns the mailto link for the draft.
func MailtoURL(to string, d Draft) string {
	return "mailto:" + encodeComponent(to) +
		"?subject=" + encodeComponent(d.Subject) +
		"&body=" + encodeComponent(d.Body)
}

// encodeComponent percent-encodes s, spaces included, so that mail
// clients do not show plus signs.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
