package orders

import (
	"context"
	"errors"

	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/airtable"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/trendyol"

	"github.com/gofiber/fiber/v2"
)

// ConnectionStatus is the outcome of probing one upstream dependency.
type ConnectionStatus struct {
	// Target names the checked system (trendyol or a destination table).
	Target string `json:"target"`
	// StatusCode is the HTTP status the upstream answered with, when it
	// answered at all.
	StatusCode int `json:"status_code,omitempty"`
	// OK reports whether the check succeeded.
	OK bool `json:"ok"`
	// Error carries the failure detail for transport-level errors.
	Error string `json:"error,omitempty"`
}

// ConnectivityReport is the result of probing every upstream the sync touches.
type ConnectivityReport struct {
	Healthy     bool               `json:"healthy"`
	Connections []ConnectionStatus `json:"connections"`
}

// CheckConnections calls the marketplace feed and each destination table with
// a real authenticated request and reports the per-upstream outcome. Used by
// the diagnostic endpoint to verify credentials and reachability before any
// sync runs.
func (s *Service) CheckConnections(ctx context.Context) *ConnectivityReport {
	report := &ConnectivityReport{Healthy: true}

	_, err := s.feed.ListOrders(ctx, 0, 1, 0)
	report.append(connectionStatus("trendyol", err))

	for _, table := range []string{s.tables.OrdersTable, s.tables.CustomersTable, s.tables.InventoryTable} {
		_, err := s.store.Search(ctx, table, "")
		report.append(connectionStatus(table, err))
	}

	return report
}

func (r *ConnectivityReport) append(st ConnectionStatus) {
	if !st.OK {
		r.Healthy = false
	}
	r.Connections = append(r.Connections, st)
}

func connectionStatus(target string, err error) ConnectionStatus {
	st := ConnectionStatus{Target: target}
	if err == nil {
		st.OK = true
		st.StatusCode = fiber.StatusOK
		return st
	}

	st.Error = err.Error()

	var storeErr *airtable.StoreError
	var sourceErr *trendyol.SourceError
	switch {
	case errors.As(err, &storeErr):
		st.StatusCode = storeErr.StatusCode
	case errors.As(err, &sourceErr):
		st.StatusCode = sourceErr.StatusCode
	}
	return st
}
