package orders

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/airtable"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/config"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/state"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/trendyol"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service runs reconciliation passes between the marketplace feed and the
// destination store. At most one pass runs at a time.
type Service struct {
	store  airtable.Client
	feed   trendyol.Client
	state  state.Store
	runs   *RunRecorder
	tables airtable.Config
	sync   config.SyncConfig
	logger *zap.Logger

	busy      atomic.Bool
	customers singleflight.Group
}

// NewService creates the sync service.
func NewService(
	store airtable.Client,
	feed trendyol.Client,
	st state.Store,
	runs *RunRecorder,
	tables airtable.Config,
	syncCfg config.SyncConfig,
	logger *zap.Logger,
) *Service {
	return &Service{
		store:  store,
		feed:   feed,
		state:  st,
		runs:   runs,
		tables: tables,
		sync:   syncCfg,
		logger: logger,
	}
}

// Busy reports whether a pass is currently running.
func (s *Service) Busy() bool {
	return s.busy.Load()
}

// Runs exposes the run-history recorder.
func (s *Service) Runs() *RunRecorder {
	return s.runs
}

// TryRunPass runs one reconciliation pass if none is in flight, blocking until
// it completes. Returns ErrSyncInProgress without doing any work when another
// pass holds the slot.
func (s *Service) TryRunPass(ctx context.Context) (*Report, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer s.busy.Store(false)

	return s.runPass(ctx)
}

// TryRunAsync claims the run slot synchronously and runs the pass in the
// background, so a caller that gets a nil error knows a pass really started.
func (s *Service) TryRunAsync() error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrSyncInProgress
	}

	go func() {
		defer s.busy.Store(false)

		if _, err := s.runPass(context.Background()); err != nil {
			s.logger.Error("Background sync pass failed", zap.Error(err))
		}
	}()

	return nil
}

func (s *Service) runPass(ctx context.Context) (*Report, error) {
	started := time.Now()
	report := &Report{}

	watermark, err := s.state.Load(ctx)
	if err != nil {
		report.Duration = time.Since(started).Round(time.Millisecond).String()
		s.recordRun(started, report, err)
		return nil, fmt.Errorf("load watermark: %w", err)
	}
	if watermark == 0 {
		watermark = time.Now().Add(-time.Duration(s.sync.LookbackHours) * time.Hour).UnixMilli()
		s.logger.Info("No watermark found, using lookback window", zap.Int64("start_ms", watermark))
	}
	maxSeen := watermark

	s.logger.Info("Starting sync pass", zap.Int64("watermark_ms", watermark))

	for page := 0; page < s.sync.MaxPages; page++ {
		orders, err := s.feed.ListOrders(ctx, page, s.sync.PageSize, watermark)
		if err != nil {
			// Keep the failed-run row informative: record how far the pass
			// got before the feed broke.
			report.Watermark = maxSeen
			report.Duration = time.Since(started).Round(time.Millisecond).String()
			s.recordRun(started, report, err)
			return nil, fmt.Errorf("list orders page %d: %w", page, err)
		}
		if len(orders.Content) == 0 {
			break
		}

		for i := range orders.Content {
			order := &orders.Content[i]
			report.Processed++
			if order.OrderDate > maxSeen {
				maxSeen = order.OrderDate
			}
			s.processOrder(ctx, order, report)
		}

		if !orders.HasMore() {
			break
		}
	}

	report.Watermark = maxSeen
	report.Duration = time.Since(started).Round(time.Millisecond).String()

	if maxSeen > watermark {
		if err := s.state.Save(ctx, maxSeen); err != nil {
			// Orders are already synced and the next pass re-skips them via
			// the dedup search, so report the pass rather than failing it.
			s.logger.Error("Failed to persist watermark", zap.Int64("watermark_ms", maxSeen), zap.Error(err))
			s.recordRun(started, report, err)
			return report, nil
		}
	}

	s.recordRun(started, report, nil)
	s.logger.Info("Sync pass finished",
		zap.Int("processed", report.Processed),
		zap.Int("created", report.Created),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
		zap.Int64("watermark_ms", report.Watermark),
	)
	return report, nil
}

// ProcessSingle syncs one pushed order outside a pass, for the webhook path.
// It does not touch the watermark. Returns whether a row was created (false
// means the order already existed).
func (s *Service) ProcessSingle(ctx context.Context, order *trendyol.Order) (bool, error) {
	if order.ID == 0 || order.OrderDate <= 0 {
		return false, ErrInvalidOrder
	}

	exists, err := s.orderExists(ctx, order.ID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	customer, err := s.resolveCustomer(ctx, order)
	if err != nil {
		return false, err
	}

	links, missing := s.resolveInventory(ctx, order)
	if missing > 0 {
		s.logger.Warn("Order lines without inventory match",
			zap.Int64("order_id", order.ID), zap.Int("lines", missing))
	}

	if _, err := s.store.Create(ctx, s.tables.OrdersTable, s.orderFields(order, customer.id, links)); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) processOrder(ctx context.Context, order *trendyol.Order, report *Report) {
	if order.ID == 0 || order.OrderDate <= 0 {
		report.Invalid++
		s.logger.Warn("Dropping invalid order",
			zap.Int64("order_id", order.ID), zap.String("order_number", order.OrderNumber))
		return
	}

	exists, err := s.orderExists(ctx, order.ID)
	if err != nil {
		report.Failed++
		s.logger.Error("Order lookup failed", zap.Int64("order_id", order.ID), zap.Error(err))
		return
	}
	if exists {
		report.Skipped++
		return
	}

	customer, err := s.resolveCustomer(ctx, order)
	if err != nil {
		report.Failed++
		s.logger.Error("Customer resolution failed",
			zap.Int64("order_id", order.ID), zap.Int64("customer_id", order.CustomerID), zap.Error(err))
		return
	}
	if customer.created {
		report.CustomersCreated++
	}

	links, missing := s.resolveInventory(ctx, order)
	if missing > 0 {
		report.MissingSKUs += missing
		s.logger.Warn("Order lines without inventory match",
			zap.Int64("order_id", order.ID), zap.Int("lines", missing))
	}

	if _, err := s.store.Create(ctx, s.tables.OrdersTable, s.orderFields(order, customer.id, links)); err != nil {
		report.Failed++
		s.logger.Error("Order row creation failed", zap.Int64("order_id", order.ID), zap.Error(err))
		return
	}
	report.Created++
}

func (s *Service) orderExists(ctx context.Context, orderID int64) (bool, error) {
	records, err := s.store.Search(ctx, s.tables.OrdersTable,
		airtable.Eq(FieldOrderID, strconv.FormatInt(orderID, 10)))
	if err != nil {
		return false, err
	}
	return len(records) > 0, nil
}

type resolvedCustomer struct {
	id      string
	created bool
}

// resolveCustomer finds or creates the customer record for an order. Lookups
// for the same marketplace customer id are coalesced, so an order batch from
// one customer creates at most one record.
func (s *Service) resolveCustomer(ctx context.Context, order *trendyol.Order) (resolvedCustomer, error) {
	key := strconv.FormatInt(order.CustomerID, 10)

	v, err, shared := s.customers.Do(key, func() (interface{}, error) {
		records, err := s.store.Search(ctx, s.tables.CustomersTable, airtable.Eq(FieldCustomerID, key))
		if err != nil {
			return nil, err
		}
		if len(records) > 0 {
			return resolvedCustomer{id: records[0].ID}, nil
		}

		record, err := s.store.Create(ctx, s.tables.CustomersTable, s.customerFields(order))
		if err != nil {
			return nil, err
		}
		return resolvedCustomer{id: record.ID, created: true}, nil
	})
	if err != nil {
		return resolvedCustomer{}, err
	}

	customer := v.(resolvedCustomer)
	if shared {
		// A coalesced caller did not create the record itself.
		customer.created = false
	}
	return customer, nil
}

// resolveInventory maps line SKUs to inventory record ids. Missing SKUs and
// lookup failures are tolerated: the order still syncs, just without the link.
func (s *Service) resolveInventory(ctx context.Context, order *trendyol.Order) (links []string, missing int) {
	seen := make(map[string]bool)

	for _, line := range order.Lines {
		sku := strings.TrimSpace(line.MerchantSKU)
		if sku == "" {
			missing++
			continue
		}
		if seen[sku] {
			continue
		}
		seen[sku] = true

		records, err := s.store.Search(ctx, s.tables.InventoryTable, airtable.Eq(FieldSKU, sku))
		if err != nil || len(records) == 0 {
			missing++
			continue
		}
		links = append(links, records[0].ID)
	}
	return links, missing
}

func (s *Service) orderFields(order *trendyol.Order, customerID string, inventory []string) airtable.Fields {
	shipping, payment := MapStatus(order.Status)

	products := make([]string, 0, len(order.Lines))
	quantities := make([]string, 0, len(order.Lines))
	prices := make([]string, 0, len(order.Lines))
	for _, line := range order.Lines {
		products = append(products, line.ProductName)
		quantities = append(quantities, strconv.Itoa(line.Quantity))
		prices = append(prices, line.Price.StringFixed(2))
	}

	fields := airtable.Fields{
		FieldOrderID:        strconv.FormatInt(order.ID, 10),
		FieldOrderNumber:    order.OrderNumber,
		FieldCustomerLink:   []string{customerID},
		FieldOrderDate:      time.UnixMilli(order.OrderDate).UTC().Format("2006-01-02"),
		FieldShippingStatus: shipping,
		FieldPaymentStatus:  payment,
		FieldSalesChannel:   SalesChannel,
		FieldProducts:       strings.Join(products, "\n"),
		FieldQuantities:     strings.Join(quantities, "\n"),
		FieldPrices:         strings.Join(prices, "\n"),
	}
	if len(inventory) > 0 {
		fields[FieldInventoryLink] = inventory
	}
	return fields
}

func (s *Service) customerFields(order *trendyol.Order) airtable.Fields {
	name := strings.TrimSpace(order.ShipmentAddress.FullName)
	if name == "" {
		name = strings.TrimSpace(order.CustomerFirstName + " " + order.CustomerLastName)
	}

	var parts []string
	for _, part := range []string{
		order.ShipmentAddress.Address1,
		order.ShipmentAddress.District,
		order.ShipmentAddress.City,
	} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, strings.TrimSpace(part))
		}
	}

	return airtable.Fields{
		FieldCustomerID: strconv.FormatInt(order.CustomerID, 10),
		FieldName:       name,
		FieldPhone:      order.ShipmentAddress.Phone,
		FieldAddress:    strings.Join(parts, ", "),
		FieldChannel:    SalesChannel,
	}
}

func (s *Service) recordRun(started time.Time, report *Report, runErr error) {
	run := &SyncRun{
		StartedAt:  started,
		FinishedAt: time.Now(),
		Status:     RunStatusSuccess,
		Processed:  report.Processed,
		Created:    report.Created,
		Skipped:    report.Skipped,
		Failed:     report.Failed,
		Watermark:  report.Watermark,
	}
	if runErr != nil {
		run.Status = RunStatusFailed
		run.Error = runErr.Error()
	}
	s.runs.Record(run)
}
