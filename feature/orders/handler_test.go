package orders_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/airtable"
	airtablemocks "github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/airtable/mocks"
	statemocks "github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/state/mocks"
	trendyolmocks "github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/trendyol/mocks"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/feature/orders"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestApp(store *airtablemocks.Client, feed *trendyolmocks.Client, st *statemocks.Store) (*fiber.App, *orders.Service) {
	svc := newTestService(store, feed, st)
	app := fiber.New()
	orders.NewHandler(svc).RegisterRoutes(app)
	return app, svc
}

func TestHandleTriggerSyncWait(t *testing.T) {
	store := new(airtablemocks.Client)
	feed := new(trendyolmocks.Client)
	st := new(statemocks.Store)

	st.On("Load", mock.Anything).Return(dateA, nil)
	feed.On("ListOrders", mock.Anything, 0, 50, dateA).Return(page(), nil)

	app, _ := newTestApp(store, feed, st)

	resp, err := app.Test(httptest.NewRequest("POST", "/sync?wait=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report orders.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 0, report.Processed)
	assert.Equal(t, dateA, report.Watermark)
}

func TestHandleTriggerSyncWaitFeedFailure(t *testing.T) {
	store := new(airtablemocks.Client)
	feed := new(trendyolmocks.Client)
	st := new(statemocks.Store)

	st.On("Load", mock.Anything).Return(dateA, nil)
	feed.On("ListOrders", mock.Anything, 0, 50, dateA).
		Return(nil, fmt.Errorf("connection refused"))

	app, _ := newTestApp(store, feed, st)

	resp, err := app.Test(httptest.NewRequest("GET", "/sync?wait=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}

func TestHandleTriggerSyncAsync(t *testing.T) {
	store := new(airtablemocks.Client)
	feed := new(trendyolmocks.Client)
	st := new(statemocks.Store)

	release := make(chan struct{})
	entered := make(chan struct{})
	st.On("Load", mock.Anything).Return(dateA, nil)
	feed.On("ListOrders", mock.Anything, 0, 50, dateA).Run(func(args mock.Arguments) {
		close(entered)
		<-release
	}).Return(page(), nil)

	app, svc := newTestApp(store, feed, st)

	resp, err := app.Test(httptest.NewRequest("POST", "/sync", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"status":"sync started"}`, string(body))

	// While the first pass holds the slot, another trigger is a no-op.
	<-entered
	resp, err = app.Test(httptest.NewRequest("POST", "/sync", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ = io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"status":"already running"}`, string(body))

	close(release)
	require.Eventually(t, func() bool { return !svc.Busy() }, time.Second, 10*time.Millisecond)
}

func TestHandleSyncStatus(t *testing.T) {
	app, _ := newTestApp(new(airtablemocks.Client), new(trendyolmocks.Client), new(statemocks.Store))

	resp, err := app.Test(httptest.NewRequest("GET", "/sync/status", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"running":false}`, string(body))
}

func TestHandleSyncRunsDisabled(t *testing.T) {
	app, _ := newTestApp(new(airtablemocks.Client), new(trendyolmocks.Client), new(statemocks.Store))

	resp, err := app.Test(httptest.NewRequest("GET", "/sync/runs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleOrderWebhook(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		store := new(airtablemocks.Client)
		store.On("Search", mock.Anything, "Orders", mock.Anything).Return([]airtable.Record{}, nil)
		store.On("Search", mock.Anything, "Customers", mock.Anything).Return([]airtable.Record{}, nil)
		store.On("Create", mock.Anything, "Customers", mock.Anything).
			Return(&airtable.Record{ID: "recCust"}, nil)
		store.On("Search", mock.Anything, "French Inventories", mock.Anything).
			Return([]airtable.Record{{ID: "recInv1"}}, nil)
		store.On("Create", mock.Anything, "Orders", mock.Anything).
			Return(&airtable.Record{ID: "recOrd"}, nil)

		app, _ := newTestApp(store, new(trendyolmocks.Client), new(statemocks.Store))

		payload, _ := json.Marshal(orderA())
		req := httptest.NewRequest("POST", "/orders", strings.NewReader(string(payload)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("AlreadyExists", func(t *testing.T) {
		store := new(airtablemocks.Client)
		store.On("Search", mock.Anything, "Orders", mock.Anything).
			Return([]airtable.Record{{ID: "recOrd"}}, nil)

		app, _ := newTestApp(store, new(trendyolmocks.Client), new(statemocks.Store))

		payload, _ := json.Marshal(orderA())
		req := httptest.NewRequest("POST", "/orders", strings.NewReader(string(payload)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("InvalidPayload", func(t *testing.T) {
		app, _ := newTestApp(new(airtablemocks.Client), new(trendyolmocks.Client), new(statemocks.Store))

		req := httptest.NewRequest("POST", "/orders", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("MissingID", func(t *testing.T) {
		app, _ := newTestApp(new(airtablemocks.Client), new(trendyolmocks.Client), new(statemocks.Store))

		req := httptest.NewRequest("POST", "/orders", strings.NewReader(`{"orderNumber":"TY-1"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})
}
