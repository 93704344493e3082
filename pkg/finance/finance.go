// Package finance holds the discounting helpers shared by the technology
// cost models.
package finance

import "math"

// CRF is the capital recovery factor: the share of a capital cost paid each
// year to repay it over n years at discount rate r.
// r(1+r)^n / ((1+r)^n - 1), and 1/n at a zero rate.
func CRF(r float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	if r == 0 {
		return 1 / float64(n)
	}
	factor := math.Pow(1+r, float64(n))
	return r * factor / (factor - 1)
}

// Annualize spreads capital over n years and adds a fixed O&M share.
func Annualize(capital, r float64, n int, omRate float64) float64 {
	return capital * (CRF(r, n) + omRate)
}

// DiscountFactor is 1/(1+r)^year.
func DiscountFactor(r float64, year int) float64 {
	return 1 / math.Pow(1+r, float64(year))
}

// ReplacementYears lists the years an asset with the given lifetime is
// replaced within a project: every multiple of lifetime strictly before
// projectYears.
func ReplacementYears(lifetime, projectYears int) []int {
	if lifetime <= 0 {
		return nil
	}
	var years []int
	for y := lifetime; y < projectYears; y += lifetime {
		years = append(years, y)
	}
	return years
}

// ReplacementNPV is the present value of replacing an asset costing cost at
// each of its replacement years.
func ReplacementNPV(cost, r float64, lifetime, projectYears int) float64 {
	npv := 0.0
	for _, y := range ReplacementYears(lifetime, projectYears) {
		npv += cost * DiscountFactor(r, y)
	}
	return npv
}
