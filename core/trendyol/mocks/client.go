package mocks

import (
	"context"

	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/trendyol"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of trendyol.Client
type Client struct {
	mock.Mock
}

func (m *Client) ListOrders(ctx context.Context, page, size int, since int64) (*trendyol.OrderPage, error) {
	args := m.Called(ctx, page, size, since)
	if p, ok := args.Get(0).(*trendyol.OrderPage); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
