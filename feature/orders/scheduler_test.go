package orders_test

import (
	"context"
	"testing"
	"time"

	airtablemocks "github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/airtable/mocks"
	statemocks "github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/state/mocks"
	trendyolmocks "github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/trendyol/mocks"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/feature/orders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestSchedulerWaitsForFirstInterval(t *testing.T) {
	feed := new(trendyolmocks.Client)
	svc := newTestService(new(airtablemocks.Client), feed, new(statemocks.Store))
	scheduler := orders.NewScheduler(svc, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- scheduler.Run(ctx)
	}()

	// No pass may fire at startup; the first tick is a full interval away.
	time.Sleep(300 * time.Millisecond)
	feed.AssertNotCalled(t, "ListOrders", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}
}

func TestSchedulerStopsOnContextCancel(t *testing.T) {
	svc := newTestService(new(airtablemocks.Client), new(trendyolmocks.Client), new(statemocks.Store))
	scheduler := orders.NewScheduler(svc, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- scheduler.Run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}
}
