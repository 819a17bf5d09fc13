package handlers

import (
	"net/http"
	"strconv"

	"github.com/headless-commerce/storefront-gateway/internal/api/middleware"
	"github.com/headless-commerce/storefront-gateway/internal/errors"
	"github.com/headless-commerce/storefront-gateway/internal/models"
	service "github.com/headless-commerce/storefront-gateway/internal/services"
	"github.com/headless-commerce/storefront-gateway/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProducts passes the catalog query through to the upstream and echoes
// its pagination headers back to the caller.
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		query := r.URL.Query()

		perPage, _ := strconv.Atoi(query.Get("per_page"))
		page, _ := strconv.Atoi(query.Get("page"))

		params := models.ProductQueryParams{
			Include:  query.Get("include"),
			Search:   query.Get("search"),
			Category: query.Get("category"),
			PerPage:  perPage,
			Page:     page,
			OrderBy:  query.Get("orderby"),
			Order:    query.Get("order"),
		}

		list, err := h.catalogService.ListProducts(r.Context(), params)
		if err != nil {
			response.Error(w, err)
			return
		}

		w.Header().Set("X-WP-Total", strconv.Itoa(list.Total))
		w.Header().Set("X-WP-TotalPages", strconv.Itoa(list.TotalPages))

		response.WriteJson(w, http.StatusOK, list.Products)

	}
}

func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		slug := r.PathValue("slug")

		if slug == "" {
			response.Error(w, errors.BadRequestError("Product slug is required"))
			return
		}

		detail, err := h.catalogService.GetProduct(r.Context(), slug)
		if err != nil {
			response.Error(w, err)
			return
		}

		if detail.Product == nil {
			logger := middleware.LoggerFromContext(r.Context())
			logger.Info("Product not found", "slug", slug)

			response.Error(w, errors.NotFoundError("Product not found"))

			return
		}

		response.WriteJson(w, http.StatusOK, detail)

	}
}

func (h *CatalogHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		list, err := h.catalogService.ListCategories(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, list)

	}
}
