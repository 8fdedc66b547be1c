// Package services contains domain services implementing business logic that
// doesn't naturally belong to a single aggregate. The price list maps the
// allowed delivery quantity tiers to their base prices and polices the bounds
// a customer's opening bid must fall within.
package services
