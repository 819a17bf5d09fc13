package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/headless-commerce/storefront-gateway/internal/api/middleware"
	"github.com/headless-commerce/storefront-gateway/internal/errors"
	"github.com/headless-commerce/storefront-gateway/internal/models"
	service "github.com/headless-commerce/storefront-gateway/internal/services"
	"github.com/headless-commerce/storefront-gateway/internal/utils"
	"github.com/headless-commerce/storefront-gateway/internal/utils/response"
)

// CartTokenCookie persists the upstream cart session token between visits.
const CartTokenCookie = "woo-cart-token"

const cartTokenMaxAge = 7 * 24 * 60 * 60

type CartHandler struct {
	cartService   service.CartService
	validator     *validator.Validate
	secureCookies bool
}

func NewCartHandler(cartService service.CartService, secureCookies bool) *CartHandler {
	return &CartHandler{
		cartService:   cartService,
		validator:     validator.New(),
		secureCookies: secureCookies,
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		cart, rotated, err := h.cartService.GetCart(r.Context(), h.token(r))
		if err != nil {
			response.Error(w, err)
			return
		}

		h.persistToken(w, rotated)
		response.WriteJson(w, http.StatusOK, cart)

	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.AddItemRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError("Invalid JSON"))
			return
		}

		if req.Quantity == 0 {
			req.Quantity = 1
		}

		if errs, ok := utils.ValidateStruct(h.validator, req); !ok {
			response.ValidationError(w, errs)
			return
		}

		cart, rotated, err := h.cartService.AddItem(r.Context(), h.token(r), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		h.persistToken(w, rotated)
		response.WriteJson(w, http.StatusOK, cart)

	}
}

func (h *CartHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.UpdateItemRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError("Invalid JSON"))
			return
		}

		if errs, ok := utils.ValidateStruct(h.validator, req); !ok {
			response.ValidationError(w, errs)
			return
		}

		cart, rotated, err := h.cartService.UpdateItem(r.Context(), h.token(r), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		h.persistToken(w, rotated)
		response.WriteJson(w, http.StatusOK, cart)

	}
}

func (h *CartHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CheckoutRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError("Invalid JSON"))
			return
		}

		if errs, ok := utils.ValidateStruct(h.validator, req); !ok {
			response.ValidationError(w, errs)
			return
		}

		confirmation, err := h.cartService.Checkout(r.Context(), h.token(r), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		// The session is spent; the next visit starts a fresh cart.
		h.clearToken(w)

		logger.Info("Checkout completed", "order_id", confirmation.OrderID)
		response.WriteJson(w, http.StatusOK, confirmation)

	}
}

func (h *CartHandler) token(r *http.Request) string {

	cookie, err := r.Cookie(CartTokenCookie)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// persistToken overwrites the stored token only when the upstream rotated
// it; an empty rotation leaves the cookie untouched.
func (h *CartHandler) persistToken(w http.ResponseWriter, token string) {

	if token == "" {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CartTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   cartTokenMaxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *CartHandler) clearToken(w http.ResponseWriter) {

	http.SetCookie(w, &http.Cookie{
		Name:     CartTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}
