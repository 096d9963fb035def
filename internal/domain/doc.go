// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/shipment, domain/order,
// domain/refund, domain/shippinglabel, domain/product, domain/settings).
// This root package holds sentinel errors and the typed errors that the
// transport, mappers, remotes and stores report.
package domain
