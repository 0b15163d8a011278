package cataloghandlers

import (
	"net/http"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/api/catalog"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/config"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp"
)

type checkoutRequest struct {
	CustomerName  string             `json:"customerName"`
	CustomerEmail string             `json:"customerEmail"`
	CustomerPhone string             `json:"customerPhone"`
	Company       string             `json:"company"`
	Variant       catalog.Variant    `json:"variant"`
	Items         []catalog.CartItem `json:"items" validate:"dive"`
	Notes         string             `json:"notes"`
}

// handlerCheckout forwards the cart to the sales team and returns the
// email draft the customer can send as a copy.
func handlerCheckout(req *shttp.RequestContext) *shttp.Response {
	data := checkoutRequest{}

	if err := req.Post(&data); err != nil {
		return shttp.Error(err)
	}

	// Unknown variants are left as they are and rejected by the validation.
	if variant, ok := catalog.ParseVariant(string(data.Variant)); ok {
		data.Variant = variant
	}

	cart := &catalog.Cart{}
	cart.Merge(data.Items)

	quote := catalog.NewQuoteRequest(cart)
	quote.CustomerName = data.CustomerName
	quote.CustomerEmail = data.CustomerEmail
	quote.CustomerPhone = data.CustomerPhone
	quote.Company = data.Company
	quote.Variant = data.Variant
	quote.Notes = data.Notes

	if err := quote.Validate(); err != nil {
		return shttp.Error(err)
	}

	receipt, err := backend().SubmitQuote(req.Context(), quote)

	if err != nil {
		return backendError(err)
	}

	draft := catalog.EmailDraft(quote)

	return &shttp.Response{
		Status: http.StatusCreated,
		Data: map[string]any{
			"id":                receipt.ID,
			"subtotal":          cart.Subtotal(),
			"formattedSubtotal": catalog.FormatBRL(cart.Subtotal()),
			"subject":           draft.Subject,
			"body":              draft.Body,
			"mailto":            catalog.MailtoURL(config.Get().Catalog.SalesEmail, draft),
		},
	}
}
