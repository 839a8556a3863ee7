// Package cart models a customer's pending selection before checkout.
//
// Every Line keeps line_total == quantity * unit_price. The unit price is
// captured when the line is first created and never follows later catalog
// repricing.
package cart
