// Package logiless talks to the Logiless order-management API: the OAuth2
// token endpoints and the merchant sales-order listing.
package logiless

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// TokenSource supplies the bearer credential for API requests.
type TokenSource interface {
	ValidAccessToken(ctx context.Context) (string, error)
}

type Client struct {
	host       string
	httpClient *http.Client
	tokens     TokenSource
	merchantID int
	pageLimit  int
	window     time.Duration
}

func NewClient(httpClient *http.Client, tokens TokenSource, host string, merchantID, pageLimit int, window time.Duration) *Client {
	if host == "" {
		host = "https://app2.logiless.com"
	}
	if pageLimit <= 0 {
		pageLimit = 50
	}
	if window <= 0 {
		window = 24 * time.Hour
	}
	return &Client{
		host:       trimHost(host),
		httpClient: httpClient,
		tokens:     tokens,
		merchantID: merchantID,
		pageLimit:  pageLimit,
		window:     window,
	}
}

// GetSalesOrders fetches one page of orders updated within the fixed window
// [since, since+window). The window deliberately never extends to "now";
// pagination inside the window is how a run catches up.
func (c *Client) GetSalesOrders(ctx context.Context, since time.Time, page int) (*SalesOrderPage, error) {
	query := url.Values{}
	query.Set("updated_at_from", formatQueryTime(since))
	query.Set("updated_at_to", formatQueryTime(since.Add(c.window)))
	query.Set("limit", strconv.Itoa(c.pageLimit))
	query.Set("page", strconv.Itoa(page))

	path := fmt.Sprintf("/api/v1/merchant/%d/sales_orders", c.merchantID)
	body, err := c.doRequest(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var result SalesOrderPage
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("logiless: decode sales orders: %w", err)
	}
	result.HasNext = result.TotalCount > result.CurrentPage*result.Limit
	return &result, nil
}

func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	token, err := c.tokens.ValidAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	fullURL := c.host + path
	if len(query) > 0 {
		fullURL = fullURL + "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

func trimHost(host string) string {
	return strings.TrimRight(host, "/")
}
