// Package shippinglabel holds purchased shipping labels and their refunds.
package shippinglabel

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the purchase status of a label.
type Status string

// Label statuses.
const (
	StatusPurchased      Status = "PURCHASED"
	StatusPurchaseError  Status = "PURCHASE_ERROR"
	StatusPurchaseInProg Status = "PURCHASE_IN_PROGRESS"
)

// RefundStatus is the status of a label refund request.
type RefundStatus string

// Label refund statuses.
const (
	RefundPending  RefundStatus = "pending"
	RefundComplete RefundStatus = "complete"
	RefundRejected RefundStatus = "rejected"
)

// Label is a shipping label purchased for some of an order's products.
type Label struct {
	SiteID          int64
	OrderID         int64
	ShippingLabelID int64
	TrackingNumber  string
	CarrierID       string
	ServiceName     string
	Status          Status
	PackageName     string
	Rate            decimal.Decimal
	Currency        string
	ProductIDs      []int64
	ProductNames    []string
	DateCreated     time.Time
	Refund          *Refund
}

// Refund is the refund requested for a label.
type Refund struct {
	DateRequested time.Time
	Status        RefundStatus
}

// IsRefunded reports whether a refund was requested and not rejected. A
// refunded label no longer claims the products it listed.
func (l *Label) IsRefunded() bool {
	return l.Refund != nil && l.Refund.Status != RefundRejected
}
