// Package services provides the cart, pricing, variant resolution and
// order export logic for the portal.
package services

// CustomerPrice applies a customer's tier discount to a base rate.
// The discount is a fraction in [0,1); display rounding happens at the
// presentation layer, not here.
func CustomerPrice(baseRate, discount float64) float64 {
	return baseRate * (1 - discount)
}

// LineTotal is the extended price of one cart line.
func LineTotal(qty, unitPrice float64) float64 {
	return qty * unitPrice
}
