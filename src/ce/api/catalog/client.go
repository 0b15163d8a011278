package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/config"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/shttp"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/slog"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrBackend is returned when the catalog backend answers with a
// non-success status.
var ErrBackend = errors.New("catalog backend request failed")

const (
	pathProducts      = "/api/public/products"
	pathProductBySlug = "/api/public/products/by-slug"
	pathQuotes        = "/api/public/quotes"
)

// ListOptions filters the product list.
type ListOptions struct {
	Variant Variant
	Q       string
	Take    int
	Skip    int
}

// ProductList is a page of products.
type ProductList struct {
	Items []*Product `json:"items"`
	Total int        `json:"total"`
}

// UnmarshalJSON accepts both a bare list and an {items, total} object.
func (l *ProductList) UnmarshalJSON(data []byte) error {
	var items []*Product

	if err := json.Unmarshal(data, &items); err == nil {
		l.Items = items
		l.Total = len(items)
		return nil
	}

	var obj struct {
		Items []*Product `json:"items"`
		Total *int       `json:"total"`
	}

	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.Wrap(err, "unexpected product list payload")
	}

	l.Items = obj.Items
	l.Total = len(obj.Items)

	if obj.Total != nil {
		l.Total = *obj.Total
	}

	return nil
}

// QuoteReceipt is the backend answer to a quote request.
type QuoteReceipt struct {
	OK bool      `json:"ok"`
	ID ProductID `json:"id"`
}

// Client talks with the catalog backend.
type Client struct {
	BaseURL string
}

// NewClient returns a client configured from the environment.
func NewClient() *Client {
	return &Client{BaseURL: config.Get().Catalog.APIBaseURL}
}

func (c *Client) url(path string, query url.Values) (string, error) {
	base, err := url.Parse(c.BaseURL)

	if err != nil {
		return "", errors.Wrap(err, "invalid catalog base url")
	}

	u := base.ResolveReference(&url.URL{Path: path})

	if query != nil {
		u.RawQuery = query.Encode()
	}

	return u.String(), nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) (*shttp.HTTPResponse, error) {
	target, err := c.url(path, query)

	if err != nil {
		return nil, err
	}

	slog.Debug(slog.LogOpts{
		Msg:   "catalog backend request",
		Level: slog.DL2,
		Payload: []zap.Field{
			zap.String("method", method),
			zap.String("url", target),
		},
	})

	headers := shttp.HeadersFromMap(map[string]string{"Accept": "application/json"})

	if payload != nil {
		headers.Set("Content-Type", "application/json")
	}

	res, err := shttp.NewRequest().
		WithContext(ctx).
		URL(target).
		Method(method).
		Headers(headers).
		Payload(payload).
		Do()

	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}

	return res, nil
}

func statusError(res *shttp.HTTPResponse, message string) error {
	res.Close()
	return errors.Wrapf(ErrBackend, "%s: status %d", message, res.StatusCode)
}

// ListProducts returns the products of the catalog.
func (c *Client) ListProducts(ctx context.Context, opts ListOptions) (*ProductList, error) {
	query := url.Values{}

	if opts.Variant != "" {
		query.Set("variant", string(opts.Variant))
	}

	if opts.Q != "" {
		query.Set("q", opts.Q)
	}

	if opts.Take <= 0 {
		opts.Take = config.DefaultPageSize
	}

	query.Set("take", strconv.Itoa(opts.Take))
	query.Set("skip", strconv.Itoa(max(opts.Skip, 0)))

	res, err := c.do(ctx, http.MethodGet, pathProducts, query, nil)

	if err != nil {
		return nil, err
	}

	if !res.IsSuccess() {
		return nil, statusError(res, "cannot list products")
	}

	list := &ProductList{}

	if err := res.JSON(list); err != nil {
		return nil, errors.Wrap(err, "cannot decode products")
	}

	return list, nil
}

// ProductBySlug returns the product with the given slug or nil when it
// does not exist.
func (c *Client) ProductBySlug(ctx context.Context, slug string) (*Product, error) {
	res, err := c.do(ctx, http.MethodGet, pathProductBySlug, url.Values{"slug": {slug}}, nil)

	if err != nil {
		return nil, err
	}

	if res.StatusCode == http.StatusNotFound {
		res.Close()
		return nil, nil
	}

	if !res.IsSuccess() {
		return nil, statusError(res, "cannot fetch product")
	}

	product := &Product{}

	if err := res.JSON(product); err != nil {
		return nil, errors.Wrap(err, "cannot decode product")
	}

	return product, nil
}

// SubmitQuote sends the quote request to the sales team.
func (c *Client) SubmitQuote(ctx context.Context, q QuoteRequest) (*QuoteReceipt, error) {
	res, err := c.do(ctx, http.MethodPost, pathQuotes, nil, q)

	if err != nil {
		return nil, err
	}

	if !res.IsSuccess() {
		return nil, statusError(res, "cannot submit quote")
	}

	receipt := &QuoteReceipt{}

	if err := res.JSON(receipt); err != nil {
		return nil, errors.Wrap(err, "cannot decode quote receipt")
	}

	return receipt, nil
}
