package mocks

import (
	"context"

	"github.com/headless-commerce/storefront-gateway/internal/models"
	"github.com/stretchr/testify/mock"
)

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) ListProducts(ctx context.Context, params models.ProductQueryParams) (*models.ProductList, error) {
	args := m.Called(ctx, params)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.ProductList), args.Error(1)
}

func (m *CatalogService) GetProduct(ctx context.Context, slug string) (*models.ProductDetail, error) {
	args := m.Called(ctx, slug)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.ProductDetail), args.Error(1)
}

func (m *CatalogService) ListCategories(ctx context.Context) (*models.CategoryList, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CategoryList), args.Error(1)
}
