package constants

import (
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// =======================
// ROLES
// =======================
const (
	RoleAdmin  = "admin"
	RoleCSR    = "csr"
	RoleFueler = "fueler"
)

var AdminRoles = []string{RoleAdmin}
var StaffRoles = []string{RoleAdmin, RoleCSR, RoleFueler}

// =======================
// BILLING DEFAULTS
// =======================

// DefaultTaxRatePercent is the flat receipt tax rate applied to the taxable
// base (fuel + taxable fees). Override via RECEIPT_TAX_RATE_PERCENT.
var DefaultTaxRatePercent = decimal.NewFromInt(8)

// DefaultFuelPricePerGallon is the fallback unit price used when no fuel
// price record exists for the FBO + fuel type at draft-creation time.
var DefaultFuelPricePerGallon = decimal.NewFromFloat(5.00)

// DefaultCurrency for all fee rules and receipts.
const DefaultCurrency = "USD"

// PlaceholderEmailDomain is intentionally unroutable; placeholder customers
// are auto-created for fuel orders with no linked customer.
const PlaceholderEmailDomain = "placeholder.invalid"

// TaxRatePercent reads the configured tax rate once per call site; falls back
// to DefaultTaxRatePercent when the env value is missing or unparseable.
func TaxRatePercent() decimal.Decimal {
	raw := strings.TrimSpace(os.Getenv("RECEIPT_TAX_RATE_PERCENT"))
	if raw == "" {
		return DefaultTaxRatePercent
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return DefaultTaxRatePercent
	}
	return d
}
