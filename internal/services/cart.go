package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/headless-commerce/storefront-gateway/internal/errors"
	"github.com/headless-commerce/storefront-gateway/internal/models"
	"github.com/headless-commerce/storefront-gateway/internal/woocommerce"
)

// CartService owns the session-token state machine. Every method takes the
// current token (empty when no cart exists) and returns the rotated token the
// upstream issued, or "" when the stored token should be kept as is.
type CartService interface {
	GetCart(ctx context.Context, token string) (*models.Cart, string, error)
	AddItem(ctx context.Context, token string, req *models.AddItemRequest) (*models.Cart, string, error)
	UpdateItem(ctx context.Context, token string, req *models.UpdateItemRequest) (*models.Cart, string, error)
	Checkout(ctx context.Context, token string, req *models.CheckoutRequest) (*models.OrderConfirmation, error)
}

type cartService struct {
	wc *woocommerce.Client
}

func NewCartService(wc *woocommerce.Client) CartService {
	return &cartService{wc: wc}
}

// GetCart returns a synthetic empty cart without an upstream call when no
// token exists; there is nothing to fetch.
func (s *cartService) GetCart(ctx context.Context, token string) (*models.Cart, string, error) {

	if token == "" {
		return models.EmptyCart(), "", nil
	}

	res, err := s.wc.Cart(ctx, token, http.MethodGet, "/cart", nil)
	if err != nil {
		return nil, "", err
	}

	return decodeCart(res)
}

// AddItem is the only cart mutation valid without a token: the upstream
// creates a cart and issues the first token in response.
func (s *cartService) AddItem(ctx context.Context, token string, req *models.AddItemRequest) (*models.Cart, string, error) {

	id := req.ProductID
	if req.VariationID > 0 {
		id = req.VariationID
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	body := map[string]any{
		"id":       id,
		"quantity": quantity,
	}

	if len(req.Variation) > 0 {
		body["variation"] = req.Variation
	}

	res, err := s.wc.Cart(ctx, token, http.MethodPost, "/cart/add-item", body)
	if err != nil {
		return nil, "", err
	}

	return decodeCart(res)
}

// UpdateItem requires an existing cart. Quantity zero maps to the upstream
// remove-item call, so the resulting cart omits the item key entirely.
func (s *cartService) UpdateItem(ctx context.Context, token string, req *models.UpdateItemRequest) (*models.Cart, string, error) {

	if token == "" {
		return nil, "", errors.BadRequestError("No active cart")
	}

	var (
		res *woocommerce.CartResponse
		err error
	)

	if req.Quantity == 0 {
		res, err = s.wc.Cart(ctx, token, http.MethodPost, "/cart/remove-item?key="+url.QueryEscape(req.Key), nil)
	} else {
		res, err = s.wc.Cart(ctx, token, http.MethodPost, "/cart/update-item", map[string]any{
			"key":      req.Key,
			"quantity": req.Quantity,
		})
	}

	if err != nil {
		return nil, "", err
	}

	return decodeCart(res)
}

// Checkout submits the order against the current cart session. On success
// the caller clears the persisted token so the next visit starts fresh.
func (s *cartService) Checkout(ctx context.Context, token string, req *models.CheckoutRequest) (*models.OrderConfirmation, error) {

	if token == "" {
		return nil, errors.BadRequestError("No active cart session")
	}

	res, err := s.wc.Cart(ctx, token, http.MethodPost, "/checkout", req)
	if err != nil {
		return nil, err
	}

	var confirmation models.OrderConfirmation
	if err := json.Unmarshal(res.Body, &confirmation); err != nil {
		return nil, errors.InternalError("Unexpected upstream checkout payload").WithError(err)
	}

	return &confirmation, nil
}

func decodeCart(res *woocommerce.CartResponse) (*models.Cart, string, error) {

	var cart models.Cart
	if err := json.Unmarshal(res.Body, &cart); err != nil {
		return nil, "", errors.InternalError("Unexpected upstream cart payload").WithError(err)
	}

	return &cart, res.RotatedToken, nil
}
