package mocks

import (
	"context"

	"github.com/headless-commerce/storefront-gateway/internal/models"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func (m *CartService) GetCart(ctx context.Context, token string) (*models.Cart, string, error) {
	args := m.Called(ctx, token)

	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}

	return args.Get(0).(*models.Cart), args.String(1), args.Error(2)
}

func (m *CartService) AddItem(ctx context.Context, token string, req *models.AddItemRequest) (*models.Cart, string, error) {
	args := m.Called(ctx, token, req)

	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}

	return args.Get(0).(*models.Cart), args.String(1), args.Error(2)
}

func (m *CartService) UpdateItem(ctx context.Context, token string, req *models.UpdateItemRequest) (*models.Cart, string, error) {
	args := m.Called(ctx, token, req)

	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}

	return args.Get(0).(*models.Cart), args.String(1), args.Error(2)
}

func (m *CartService) Checkout(ctx context.Context, token string, req *models.CheckoutRequest) (*models.OrderConfirmation, error) {
	args := m.Called(ctx, token, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.OrderConfirmation), args.Error(1)
}
