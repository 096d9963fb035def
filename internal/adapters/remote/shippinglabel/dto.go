// Package shippinglabel maps the shipping label extension's payloads to
// domain values.
package shippinglabel

import "github.com/jsamuelsen11/storesync/internal/adapters/remote/wire"

// LabelsResponseDTO is the label list for one order.
type LabelsResponseDTO struct {
	OrderID    int64      `json:"orderId"`
	PaperSize  string     `json:"paperSize"`
	LabelsData []LabelDTO `json:"labelsData"`
}

// LabelDTO matches one purchased label. Timestamps are epoch milliseconds.
type LabelDTO struct {
	LabelID      int64        `json:"label_id"`
	Tracking     string       `json:"tracking"`
	Created      wire.Millis  `json:"created"`
	CarrierID    string       `json:"carrier_id"`
	ServiceName  string       `json:"service_name"`
	Status       string       `json:"status"`
	PackageName  string       `json:"package_name"`
	ProductNames []string     `json:"product_names"`
	ProductIDs   []int64      `json:"product_ids"`
	Rate         wire.Decimal `json:"rate"`
	Currency     string       `json:"currency"`
	Refund       *RefundDTO   `json:"refund"`
}

// RefundDTO is a label refund request.
type RefundDTO struct {
	RequestDate wire.Millis `json:"request_date"`
	Status      string      `json:"status"`
}

// RefundResponseDTO is the body returned when requesting a label refund.
type RefundResponseDTO struct {
	Refund *RefundDTO `json:"refund"`
}
