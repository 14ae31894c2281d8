package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrMissingToken indicates the API token was not configured.
	ErrMissingToken = errors.New("airtable: missing api token")
	// ErrMissingBaseID indicates the base id was not configured.
	ErrMissingBaseID = errors.New("airtable: missing base id")
)

// StoreError is returned when the Airtable API answers with a non-2xx status.
type StoreError struct {
	// Operation is the failed operation (search or create).
	Operation string
	// Table is the table the operation targeted.
	Table string
	// StatusCode is the HTTP status returned by the API.
	StatusCode int
	// Body is the (truncated) response body, useful for error type diagnosis.
	Body string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("airtable: %s on table %q failed with status %d: %s",
		e.Operation, e.Table, e.StatusCode, e.Body)
}

// Record is a single row in an Airtable table.
type Record struct {
	// ID is the Airtable-assigned record id, used for linked-record fields.
	ID string `json:"id"`
	// Fields maps field names to their values.
	Fields map[string]any `json:"fields"`
}

// Fields is the payload of a record creation.
type Fields map[string]any

// Client defines the interface for destination store operations.
type Client interface {
	// Search returns the records of a table matching the given filter formula.
	// An empty result is not an error.
	Search(ctx context.Context, table, formula string) ([]Record, error)
	// Create inserts a single record and returns it with its assigned id.
	Create(ctx context.Context, table string, fields Fields) (*Record, error)
}

type httpClient struct {
	cfg  Config
	http *http.Client
}

// NewClient creates an Airtable client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Strict transport timeouts so a stuck store call cannot hold a sync
	// pass indefinitely.
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Timeout:   timeoutDuration,
			Transport: transport,
		},
	}, nil
}

type recordList struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

func (c *httpClient) tableURL(table string) string {
	return fmt.Sprintf("%s/%s/%s", c.cfg.Endpoint, c.cfg.BaseID, url.PathEscape(table))
}

func (c *httpClient) Search(ctx context.Context, table, formula string) ([]Record, error) {
	q := url.Values{}
	if formula != "" {
		q.Set("filterByFormula", formula)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.tableURL(table)+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("airtable: build search request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("airtable: search on table %q: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStoreError("search", table, resp)
	}

	var list recordList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("airtable: decode search response: %w", err)
	}

	return list.Records, nil
}

func (c *httpClient) Create(ctx context.Context, table string, fields Fields) (*Record, error) {
	payload, err := json.Marshal(map[string]any{"fields": fields})
	if err != nil {
		return nil, fmt.Errorf("airtable: encode record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tableURL(table), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("airtable: build create request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("airtable: create on table %q: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStoreError("create", table, resp)
	}

	var rec Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("airtable: decode create response: %w", err)
	}

	return &rec, nil
}

func (c *httpClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
}

func newStoreError(op, table string, resp *http.Response) *StoreError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StoreError{
		Operation:  op,
		Table:      table,
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
}
