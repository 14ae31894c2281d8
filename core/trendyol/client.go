package trendyol

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

var (
	// ErrMissingSellerID indicates the seller id was not configured.
	ErrMissingSellerID = errors.New("trendyol: missing seller id")
	// ErrMissingCredentials indicates the api key/secret pair was not configured.
	ErrMissingCredentials = errors.New("trendyol: missing api credentials")
)

// SourceError is returned when the seller API answers with a non-2xx status.
// Callers treat it as abort-this-pass, never as a process failure.
type SourceError struct {
	// StatusCode is the HTTP status returned by the API.
	StatusCode int
	// Body is the (truncated) response body.
	Body string
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("trendyol: feed returned status %d: %s", e.StatusCode, e.Body)
}

// Client defines the interface for source feed operations.
type Client interface {
	// ListOrders retrieves one page of orders. A positive since narrows the
	// listing to orders at/after that epoch-ms timestamp.
	ListOrders(ctx context.Context, page, size int, since int64) (*OrderPage, error)
}

type httpClient struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a Trendyol seller API client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Listing == "" {
		cfg.Listing = ListingOrders
	}
	if cfg.AuthScheme == "" {
		cfg.AuthScheme = AuthBasic
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}
	timeoutDuration := time.Duration(timeout) * time.Second

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

func (c *httpClient) ListOrders(ctx context.Context, page, size int, since int64) (*OrderPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	if since > 0 {
		q.Set("startDate", strconv.FormatInt(since, 10))
	}

	endpoint := fmt.Sprintf("%s/suppliers/%s/%s?%s",
		c.cfg.Endpoint, c.cfg.SellerID, c.cfg.Listing, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("trendyol: build list request: %w", err)
	}
	c.setAuth(req)
	// The seller API requires a seller-identifying user agent.
	req.Header.Set("User-Agent", c.cfg.SellerID+" - SelfIntegration")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trendyol: list orders: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &SourceError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var pageResp OrderPage
	if err := json.NewDecoder(resp.Body).Decode(&pageResp); err != nil {
		return nil, fmt.Errorf("trendyol: decode orders page: %w", err)
	}

	return &pageResp, nil
}

func (c *httpClient) setAuth(req *http.Request) {
	switch c.cfg.AuthScheme {
	case AuthHeaders:
		req.Header.Set("api-key", c.cfg.APIKey)
		req.Header.Set("api-secret", c.cfg.APISecret)
	default:
		token := base64.StdEncoding.EncodeToString([]byte(c.cfg.APIKey + ":" + c.cfg.APISecret))
		req.Header.Set("Authorization", "Basic "+token)
	}
}
