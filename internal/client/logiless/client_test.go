package logiless

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type staticTokens struct {
	token string
	err   error
}

func (s *staticTokens) ValidAccessToken(ctx context.Context) (string, error) {
	return s.token, s.err
}

func TestGetSalesOrders_QueryAndAuth(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[],"current_page":1,"limit":50,"total_count":0}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), &staticTokens{token: "tok-1"}, srv.URL, 1394, 50, 24*time.Hour)
	since, _ := ParseTokyoDate("2024-05-01")
	if _, err := c.GetSalesOrders(context.Background(), since, 3); err != nil {
		t.Fatalf("err=%v", err)
	}

	if gotPath != "/api/v1/merchant/1394/sales_orders" {
		t.Fatalf("path=%q", gotPath)
	}
	if gotAuth != "Bearer tok-1" {
		t.Fatalf("auth=%q", gotAuth)
	}
	if gotQuery["updated_at_from"] != "2024-05-01 00:00:00" {
		t.Fatalf("updated_at_from=%q", gotQuery["updated_at_from"])
	}
	if gotQuery["updated_at_to"] != "2024-05-02 00:00:00" {
		t.Fatalf("updated_at_to=%q", gotQuery["updated_at_to"])
	}
	if gotQuery["limit"] != "50" || gotQuery["page"] != "3" {
		t.Fatalf("limit=%q page=%q", gotQuery["limit"], gotQuery["page"])
	}
}

func TestGetSalesOrders_HasNext(t *testing.T) {
	tests := []struct {
		totalCount  int
		currentPage int
		limit       int
		want        bool
	}{
		{150, 1, 50, true},
		{150, 2, 50, true},
		{150, 3, 50, false}, // boundary: total == page*limit
		{149, 3, 50, false},
		{151, 3, 50, true},
		{0, 1, 50, false},
	}
	for _, tt := range tests {
		body := fmt.Sprintf(`{"data":[],"current_page":%d,"limit":%d,"total_count":%d}`,
			tt.currentPage, tt.limit, tt.totalCount)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		c := NewClient(srv.Client(), &staticTokens{token: "tok"}, srv.URL, 1, tt.limit, 24*time.Hour)
		got, err := c.GetSalesOrders(context.Background(), time.Now(), tt.currentPage)
		srv.Close()
		if err != nil {
			t.Fatalf("err=%v", err)
		}
		if got.HasNext != tt.want {
			t.Fatalf("total=%d page=%d limit=%d: HasNext=%v want=%v",
				tt.totalCount, tt.currentPage, tt.limit, got.HasNext, tt.want)
		}
	}
}

func TestGetSalesOrders_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), &staticTokens{token: "tok"}, srv.URL, 1, 50, 24*time.Hour)
	_, err := c.GetSalesOrders(context.Background(), time.Now(), 1)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err=%v, want *APIError", err)
	}
	if apiErr.Status != http.StatusTooManyRequests {
		t.Fatalf("status=%d", apiErr.Status)
	}
}

func TestGetSalesOrders_TokenError(t *testing.T) {
	reached := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), &staticTokens{err: ErrNotLoggedIn}, srv.URL, 1, 50, 24*time.Hour)
	if _, err := c.GetSalesOrders(context.Background(), time.Now(), 1); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("err=%v, want ErrNotLoggedIn", err)
	}
	if reached {
		t.Fatalf("request must not reach upstream without a token")
	}
}
