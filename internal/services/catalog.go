package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/headless-commerce/storefront-gateway/internal/cache"
	"github.com/headless-commerce/storefront-gateway/internal/config"
	"github.com/headless-commerce/storefront-gateway/internal/errors"
	"github.com/headless-commerce/storefront-gateway/internal/models"
	"github.com/headless-commerce/storefront-gateway/internal/sanitize"
	"github.com/headless-commerce/storefront-gateway/internal/woocommerce"
)

type CatalogService interface {
	ListProducts(ctx context.Context, params models.ProductQueryParams) (*models.ProductList, error)
	GetProduct(ctx context.Context, slug string) (*models.ProductDetail, error)
	ListCategories(ctx context.Context) (*models.CategoryList, error)
}

type catalogService struct {
	wc    *woocommerce.Client
	cache cache.Cache
	cfg   *config.CacheConfig
}

func NewCatalogService(wc *woocommerce.Client, c cache.Cache, cfg *config.CacheConfig) CatalogService {
	return &catalogService{wc: wc, cache: c, cfg: cfg}
}

// ListProducts is a read-through over the public catalog surface. The cache
// key is the canonical JSON of the query, so two equivalent queries share an
// entry.
func (s *catalogService) ListProducts(ctx context.Context, params models.ProductQueryParams) (*models.ProductList, error) {

	if params.PerPage <= 0 {
		params.PerPage = 20
	}

	if params.Page <= 0 {
		params.Page = 1
	}

	cacheKey := listCacheKey(params)

	var cached models.ProductList
	if s.cache.Get(ctx, cacheKey, &cached) == cache.Hit {
		return &cached, nil
	}

	res, err := s.wc.Store(ctx, http.MethodGet, "/products?"+listQuery(params), nil)
	if err != nil {
		return nil, err
	}

	var products []models.StoreProduct
	if err := json.Unmarshal(res.Body, &products); err != nil {
		return nil, errors.InternalError("Unexpected upstream catalog payload").WithError(err)
	}

	result := &models.ProductList{
		Products:   products,
		Total:      res.Total,
		TotalPages: res.TotalPages,
	}

	s.cache.Set(ctx, cacheKey, result, s.cfg.ProductListTTL)

	return result, nil
}

// GetProduct fetches a single product by slug from the administrative
// surface, which exposes the full variation list the public surface lacks.
// An unknown slug yields a nil Product and is never cached.
func (s *catalogService) GetProduct(ctx context.Context, slug string) (*models.ProductDetail, error) {

	cacheKey := cache.Key(cache.ProductKeyPrefix, slug)

	var cached models.ProductDetail
	if s.cache.Get(ctx, cacheKey, &cached) == cache.Hit {
		return &cached, nil
	}

	body, err := s.wc.Rest(ctx, http.MethodGet, "/products?slug="+url.QueryEscape(slug), nil)
	if err != nil {
		return nil, err
	}

	var products []models.RestProduct
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, errors.InternalError("Unexpected upstream catalog payload").WithError(err)
	}

	if len(products) == 0 {
		return &models.ProductDetail{Product: nil, Variations: []models.RestVariation{}}, nil
	}

	product := products[0]
	excerpt := sanitize.PlainText(product.ShortDescription, 160)
	product.Description = sanitize.ProductHTML(product.Description)
	product.ShortDescription = sanitize.ProductHTML(product.ShortDescription)

	variations := []models.RestVariation{}

	if len(product.Variations) > 0 {
		// A failed variation fetch degrades to an empty list rather than
		// failing the whole detail lookup.
		path := fmt.Sprintf("/products/%d/variations?per_page=100", product.ID)
		if varBody, err := s.wc.Rest(ctx, http.MethodGet, path, nil); err == nil {
			if err := json.Unmarshal(varBody, &variations); err != nil {
				variations = []models.RestVariation{}
			}
		}
	}

	result := &models.ProductDetail{Product: &product, Variations: variations, Excerpt: excerpt}

	s.cache.Set(ctx, cacheKey, result, s.cfg.ProductDetailTTL)

	return result, nil
}

func (s *catalogService) ListCategories(ctx context.Context) (*models.CategoryList, error) {

	var cached models.CategoryList
	if s.cache.Get(ctx, cache.CategoriesKey, &cached) == cache.Hit {
		return &cached, nil
	}

	res, err := s.wc.Store(ctx, http.MethodGet, "/products/categories?per_page=100&hide_empty=true&orderby=count&order=desc", nil)
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	if err := json.Unmarshal(res.Body, &categories); err != nil {
		return nil, errors.InternalError("Unexpected upstream category payload").WithError(err)
	}

	filtered := make([]models.Category, 0, len(categories))

	for _, c := range categories {
		if c.Slug == "uncategorized" {
			continue
		}

		filtered = append(filtered, c)
	}

	result := &models.CategoryList{Categories: filtered}

	s.cache.Set(ctx, cache.CategoriesKey, result, s.cfg.CategoriesTTL)

	return result, nil
}

func listCacheKey(params models.ProductQueryParams) string {

	canonical, _ := json.Marshal(params)

	return cache.Key(cache.ProductListKeyPrefix, string(canonical))
}

func listQuery(params models.ProductQueryParams) string {

	qs := url.Values{}
	qs.Set("per_page", strconv.Itoa(params.PerPage))
	qs.Set("page", strconv.Itoa(params.Page))

	if params.Include != "" {
		qs.Set("include", params.Include)
	}

	if params.Search != "" {
		qs.Set("search", params.Search)
	}

	if params.Category != "" {
		qs.Set("category", params.Category)
	}

	if params.OrderBy != "" {
		qs.Set("orderby", params.OrderBy)
	}

	if params.Order != "" {
		qs.Set("order", params.Order)
	}

	return qs.Encode()
}
