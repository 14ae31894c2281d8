package mocks

import (
	"context"

	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/airtable"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of airtable.Client
type Client struct {
	mock.Mock
}

func (m *Client) Search(ctx context.Context, table, formula string) ([]airtable.Record, error) {
	args := m.Called(ctx, table, formula)
	if recs, ok := args.Get(0).([]airtable.Record); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Create(ctx context.Context, table string, fields airtable.Fields) (*airtable.Record, error) {
	args := m.Called(ctx, table, fields)
	if rec, ok := args.Get(0).(*airtable.Record); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}
