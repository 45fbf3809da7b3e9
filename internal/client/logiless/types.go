package logiless

import (
	"fmt"
)

type DocumentStatus string

const (
	DocumentProcessing           DocumentStatus = "Processing"
	DocumentWaitingForPayment    DocumentStatus = "WaitingForPayment"
	DocumentWaitingForAllocation DocumentStatus = "WaitingForAllocation"
	DocumentWaitingForShipment   DocumentStatus = "WaitingForShipment"
	DocumentShipped              DocumentStatus = "Shipped"
	DocumentCancel               DocumentStatus = "Cancel"
)

type AllocationStatus string

const (
	AllocationWaiting   AllocationStatus = "WaitingForAllocation"
	AllocationAllocated AllocationStatus = "Allocated"
)

type DeliveryStatus string

const (
	DeliveryWaitingForShipment DeliveryStatus = "WaitingForShipment"
	DeliveryWorking            DeliveryStatus = "Working"
	DeliveryPartlyShipped      DeliveryStatus = "PartlyShipped"
	DeliveryShipped            DeliveryStatus = "Shipped"
	DeliveryPending            DeliveryStatus = "Pending"
	DeliveryCancel             DeliveryStatus = "Cancel"
)

type IncomingPaymentStatus string

const (
	PaymentNotPaid    IncomingPaymentStatus = "NotPaid"
	PaymentPartlyPaid IncomingPaymentStatus = "PartlyPaid"
	PaymentPaid       IncomingPaymentStatus = "Paid"
)

type AuthorizationStatus string

const (
	AuthorizationNotRequired  AuthorizationStatus = "NotRequired"
	AuthorizationUnauthorized AuthorizationStatus = "Unauthorized"
	AuthorizationAuthorizing  AuthorizationStatus = "Authorizing"
	AuthorizationAuthorized   AuthorizationStatus = "Authorized"
	AuthorizationCaptured     AuthorizationStatus = "Captured"
	AuthorizationFailure      AuthorizationStatus = "AuthorizationFailure"
)

type LineStatus string

const (
	LineWaitingForTransfer   LineStatus = "WaitingForTransfer"
	LineWaitingForAllocation LineStatus = "WaitingForAllocation"
	LineAllocated            LineStatus = "Allocated"
	LineShipped              LineStatus = "Shipped"
	LineCancel               LineStatus = "Cancel"
)

type Store struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type SalesOrderLine struct {
	ID          int64      `json:"id"`
	Status      LineStatus `json:"status"`
	ArticleCode string     `json:"article_code"`
	ArticleName string     `json:"article_name"`
	Quantity    int        `json:"quantity"`
}

// SalesOrder is one raw order record as returned by the upstream API.
// Timestamp fields stay strings here; they carry Tokyo local time without an
// offset and are parsed by the sync engine via ParseTokyo.
type SalesOrder struct {
	ID                    int64                 `json:"id"`
	Code                  string                `json:"code"`
	DocumentStatus        DocumentStatus        `json:"document_status"`
	AllocationStatus      AllocationStatus      `json:"allocation_status"`
	DeliveryStatus        DeliveryStatus        `json:"delivery_status"`
	IncomingPaymentStatus IncomingPaymentStatus `json:"incoming_payment_status"`
	AuthorizationStatus   AuthorizationStatus   `json:"authorization_status"`
	CustomerCode          *string               `json:"customer_code"`
	PaymentMethod         string                `json:"payment_method"`
	DeliveryMethod        string                `json:"delivery_method"`
	BuyerCountry          string                `json:"buyer_country"`
	RecipientCountry      string                `json:"recipient_country"`
	Store                 Store                 `json:"store"`
	DocumentDate          string                `json:"document_date"`
	OrderedAt             string                `json:"ordered_at"`
	FinishedAt            *string               `json:"finished_at"`
	CreatedAt             string                `json:"created_at"`
	UpdatedAt             string                `json:"updated_at"`
	Lines                 []SalesOrderLine      `json:"lines"`
}

// SalesOrderPage is one bounded batch of orders plus pagination metadata.
// HasNext is derived from the raw counters, not sent by upstream.
type SalesOrderPage struct {
	Data        []SalesOrder `json:"data"`
	CurrentPage int          `json:"current_page"`
	Limit       int          `json:"limit"`
	TotalCount  int          `json:"total_count"`
	HasNext     bool         `json:"-"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope"`
}

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("logiless API error (%d): %s", e.Status, e.Body)
}
